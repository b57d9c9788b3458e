package domain

import (
	"errors"
	"time"
)

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusExpired   = "expired"
	SubscriptionStatusCancelled = "cancelled"
)

var (
	MessageSuccessAddSamplePlan    = "sample subscription added"
	MessageSuccessGetSamplePlan    = "sample subscription found"
	MessageSuccessPurchase         = "subscription created and user updated successfully"
	MessageSuccessGetSubscription  = "subscription found"

	MessageFailedAddSamplePlan   = "error in sample subscription"
	MessageFailedGetSamplePlan   = "failed to fetch sample subscription"
	MessageFailedPurchase        = "failed to create subscription"
	MessageFailedGetSubscription = "error while fetching subscription"

	ErrSamplePlanAlreadyExists = errors.New("sample subscription already exists")
	ErrSamplePlanNotFound      = errors.New("sample subscription not found")
	ErrSubscriptionNotFound    = errors.New("subscription does not exist")
	// ErrActiveSubscriptionExists enforces the one-active-subscription-per-user
	// invariant.
	ErrActiveSubscriptionExists = errors.New("user already has an active subscription")
	ErrInvalidStartDate         = errors.New("invalid start date")
)

type (
	AddSamplePlanRequest struct {
		PlanDuration      string   `json:"plan_duration" validate:"required,oneof=weekly monthly"`
		NumberOfDays      int      `json:"number_of_days" validate:"required,oneof=5 7"`
		MealsPerDay       int      `json:"meals_per_day" validate:"required,min=1,max=3"`
		MealTypes         []string `json:"meal_types" validate:"required,min=1,dive,oneof=breakfast lunch dinner"`
		DietaryPreference []string `json:"dietary_preference" validate:"required,min=1,dive,oneof=veg non-veg vegan"`
		Price             float64  `json:"price" validate:"required,gt=0"`
	}

	SamplePlanResponse struct {
		ID                string   `json:"id"`
		PlanDuration      string   `json:"plan_duration"`
		NumberOfDays      int      `json:"number_of_days"`
		MealsPerDay       int      `json:"meals_per_day"`
		MealTypes         []string `json:"meal_types"`
		DietaryPreference []string `json:"dietary_preference"`
		Price             float64  `json:"price"`
	}

	PurchaseRequest struct {
		UserID       string `json:"user_id" validate:"required,uuid"`
		SamplePlanID string `json:"sample_sub_id" validate:"required,uuid"`
		StartDate    string `json:"start_date" validate:"required"` // YYYY-MM-DD
	}

	PurchaseResponse struct {
		SubscriptionID string    `json:"subscription_id"`
		SamplePlanID   string    `json:"sample_plan_id"`
		StartDate      time.Time `json:"start_date"`
		EndDate        time.Time `json:"end_date"`
		PlanDuration   string    `json:"plan_duration"`
		Status         string    `json:"status"`
		PaymentURL     string    `json:"payment_url,omitempty"`
	}

	SubscriptionResponse struct {
		ID           string    `json:"id"`
		UserID       string    `json:"user_id"`
		SamplePlanID string    `json:"sample_plan_id"`
		StartDate    time.Time `json:"start_date"`
		EndDate      time.Time `json:"end_date"`
		PlanDuration string    `json:"plan_duration"`
		Status       string    `json:"status"`
	}
)
