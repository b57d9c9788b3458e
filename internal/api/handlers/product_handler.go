package handlers

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/internal/api/presenters"
	"NutriPlan-Backend/pkg/mealplan"
	"NutriPlan-Backend/pkg/product"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		AddProduct(c *fiber.Ctx) error
		BulkAddProducts(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		UploadProductImage(c *fiber.Ctx) error
		SuggestMeals(c *fiber.Ctx) error
	}

	productHandler struct {
		productService  product.ProductService
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewProductHandler(
	productService product.ProductService,
	mealPlanService mealplan.MealPlanService,
	validator *validator.Validate,
) ProductHandler {
	return &productHandler{
		productService:  productService,
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *productHandler) AddProduct(c *fiber.Ctx) error {
	req := new(domain.AddProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProduct, err)
	}

	res, err := h.productService.AddProduct(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddProduct)
}

func (h *productHandler) BulkAddProducts(c *fiber.Ctx) error {
	req := new(domain.BulkAddProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBulkAddProduct, err)
	}

	res, err := h.productService.BulkAddProducts(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedBulkAddProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessBulkAddProduct)
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	res, err := h.productService.GetProducts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) UploadProductImage(c *fiber.Ctx) error {
	req := new(domain.UploadProductImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	res, err := h.productService.UploadProductImage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}

// SuggestMeals serves both anonymous and authenticated selection. When a
// valid token is present the caller's id is attached so the selection gets
// persisted.
func (h *productHandler) SuggestMeals(c *fiber.Ctx) error {
	req := new(domain.SuggestMealsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if userID, ok := c.Locals("user_id").(string); ok {
		req.UserID = userID
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSuggestMeals, err)
	}

	res, err := h.mealPlanService.SuggestMeals(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSuggestMeals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSuggestMeals)
}
