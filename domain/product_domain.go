package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessAddProduct     = "product added successfully"
	MessageSuccessBulkAddProduct = "products added successfully"
	MessageSuccessSuggestMeals   = "meal suggestion generated"
	MessageSuccessUploadImage    = "product image uploaded successfully"
	MessageSuccessGetProducts    = "products retrieved successfully"

	MessageFailedAddProduct     = "failed to add product"
	MessageFailedBulkAddProduct = "failed to add products"
	MessageFailedSuggestMeals   = "failed to suggest meals"
	MessageFailedUploadImage    = "failed to upload product image"
	MessageFailedGetProducts    = "failed to retrieve products"

	ErrProductAlreadyExists = errors.New("product with this name and dietary preference already exists")
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidCalories      = errors.New("calories must be positive")
	ErrEmptyDietaryTags     = errors.New("dietary preference is required")
	// ErrInvalidFilter rejects unknown dietary, allergy, or slot tokens before
	// any catalog query runs.
	ErrInvalidFilter        = errors.New("invalid filter token")
	ErrMissingCalorieTarget = errors.New("total calories required: pass total_calories or calculate the user's recommendation first")
)

type (
	AddProductRequest struct {
		Name              string   `json:"name" validate:"required"`
		MealTypes         []string `json:"type" validate:"omitempty,dive,oneof=breakfast lunch dinner"`
		Measurement       string   `json:"measurement" validate:"omitempty,oneof=plate bowl piece pieces serving slice cup"`
		Quantity          string   `json:"quantity"`
		Calories          int      `json:"calories" validate:"required,gt=0"`
		Price             float64  `json:"price" validate:"omitempty,gte=0"`
		DietaryPreference []string `json:"dietary_preference" validate:"required,min=1,dive,oneof=veg non-veg vegan"`
		Allergies         []string `json:"allergies" validate:"omitempty,dive,oneof=nuts gluten dairy eggs other"`
	}

	BulkAddProductRequest struct {
		Products []AddProductRequest `json:"products" validate:"required,min=1,dive"`
	}

	ProductResponse struct {
		ID                string   `json:"id"`
		Name              string   `json:"name"`
		MealTypes         []string `json:"type"`
		Calories          int      `json:"calories"`
		Price             float64  `json:"price,omitempty"`
		DietaryPreference []string `json:"dietary_preference"`
		Allergies         []string `json:"allergies"`
		ImageURL          string   `json:"image_url,omitempty"`
	}

	UploadProductImageRequest struct {
		ProductID string                `json:"product_id" form:"product_id" validate:"required,uuid"`
		Image     *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	// SuggestMealsRequest drives the meal selection engine. TotalCalories may
	// be zero, in which case the caller's stored recommended calories are
	// used. UserID is optional; when present the selection is persisted onto
	// that user.
	SuggestMealsRequest struct {
		DietaryPreference []string `json:"dietary_preference" validate:"required,min=1"`
		Allergies         []string `json:"allergies"`
		MealTypes         []string `json:"type"`
		TotalCalories     int      `json:"total_calories" validate:"omitempty,gt=0"`
		UserID            string   `json:"user_id" validate:"omitempty,uuid"`
	}

	SlotSuggestion struct {
		Target   int               `json:"target_calories"`
		Total    int               `json:"selected_calories"`
		Products []ProductResponse `json:"products"`
	}

	SuggestMealsResponse struct {
		Breakfast *SlotSuggestion `json:"breakfast,omitempty"`
		Lunch     *SlotSuggestion `json:"lunch,omitempty"`
		Dinner    *SlotSuggestion `json:"dinner,omitempty"`
		Persisted bool            `json:"persisted"`
	}
)
