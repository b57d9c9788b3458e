package handlers

import (
	"errors"

	"NutriPlan-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps service errors onto HTTP status codes. Invalid input maps to
// 400, missing resources to 404, uniqueness violations to 409, retriable
// store failures to 503. Anything unrecognized is a server fault, not a
// client error, and reports 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidGender),
		errors.Is(err, domain.ErrInvalidBiometrics),
		errors.Is(err, domain.ErrInvalidFilter),
		errors.Is(err, domain.ErrInvalidStartDate),
		errors.Is(err, domain.ErrInvalidCalories),
		errors.Is(err, domain.ErrEmptyDietaryTags),
		errors.Is(err, domain.ErrNoFieldsToUpdate),
		errors.Is(err, domain.ErrInvalidDeliveryDate),
		errors.Is(err, domain.ErrMissingCalorieTarget):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAdminNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrSamplePlanNotFound),
		errors.Is(err, domain.ErrSubscriptionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserAlreadyExists),
		errors.Is(err, domain.ErrAdminAlreadyExists),
		errors.Is(err, domain.ErrProductAlreadyExists),
		errors.Is(err, domain.ErrSamplePlanAlreadyExists),
		errors.Is(err, domain.ErrActiveSubscriptionExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
