package handlers

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/internal/api/presenters"
	"NutriPlan-Backend/pkg/nutrition"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NutritionHandler interface {
		CalculateCalories(c *fiber.Ctx) error
	}

	nutritionHandler struct {
		nutritionService nutrition.NutritionService
		validator        *validator.Validate
	}
)

func NewNutritionHandler(nutritionService nutrition.NutritionService, validator *validator.Validate) NutritionHandler {
	return &nutritionHandler{
		nutritionService: nutritionService,
		validator:        validator,
	}
}

// CalculateCalories computes and stores the caller's nutrition snapshot. The
// user id always comes from the token, never the body.
func (h *nutritionHandler) CalculateCalories(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CalculateCaloriesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalculateCalories, err)
	}

	res, err := h.nutritionService.CalculateCalories(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCalculateCalories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCalculateCalories)
}
