package handlers

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/internal/api/presenters"
	"NutriPlan-Backend/pkg/subscription"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SubscriptionHandler interface {
		AddSamplePlan(c *fiber.Ctx) error
		GetSamplePlan(c *fiber.Ctx) error
		Purchase(c *fiber.Ctx) error
		GetSubscription(c *fiber.Ctx) error
	}

	subscriptionHandler struct {
		subscriptionService subscription.SubscriptionService
		validator           *validator.Validate
	}
)

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService, validator *validator.Validate) SubscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: subscriptionService,
		validator:           validator,
	}
}

func (h *subscriptionHandler) AddSamplePlan(c *fiber.Ctx) error {
	req := new(domain.AddSamplePlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddSamplePlan, err)
	}

	res, err := h.subscriptionService.AddSamplePlan(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddSamplePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddSamplePlan)
}

func (h *subscriptionHandler) GetSamplePlan(c *fiber.Ctx) error {
	planID := c.Params("id")

	res, err := h.subscriptionService.GetSamplePlan(c.Context(), planID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetSamplePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSamplePlan)
}

func (h *subscriptionHandler) Purchase(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.PurchaseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPurchase, err)
	}

	res, err := h.subscriptionService.Purchase(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedPurchase, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessPurchase)
}

func (h *subscriptionHandler) GetSubscription(c *fiber.Ctx) error {
	subID := c.Params("id")

	res, err := h.subscriptionService.GetSubscription(c.Context(), subID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetSubscription, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSubscription)
}
