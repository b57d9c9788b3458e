package handlers

import (
	"errors"
	"fmt"
	"testing"

	"NutriPlan-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid uuid", err: domain.ErrParseUUID, want: fiber.StatusBadRequest},
		{name: "invalid gender", err: domain.ErrInvalidGender, want: fiber.StatusBadRequest},
		{name: "invalid biometrics", err: domain.ErrInvalidBiometrics, want: fiber.StatusBadRequest},
		{name: "invalid filter", err: domain.ErrInvalidFilter, want: fiber.StatusBadRequest},
		{name: "invalid start date", err: domain.ErrInvalidStartDate, want: fiber.StatusBadRequest},
		{name: "invalid calories", err: domain.ErrInvalidCalories, want: fiber.StatusBadRequest},
		{name: "empty dietary tags", err: domain.ErrEmptyDietaryTags, want: fiber.StatusBadRequest},
		{name: "no fields to update", err: domain.ErrNoFieldsToUpdate, want: fiber.StatusBadRequest},
		{name: "invalid delivery date", err: domain.ErrInvalidDeliveryDate, want: fiber.StatusBadRequest},
		{name: "missing calorie target", err: domain.ErrMissingCalorieTarget, want: fiber.StatusBadRequest},
		{name: "bad credentials", err: domain.ErrInvalidCredentials, want: fiber.StatusUnauthorized},
		{name: "user missing", err: domain.ErrUserNotFound, want: fiber.StatusNotFound},
		{name: "plan missing", err: domain.ErrSamplePlanNotFound, want: fiber.StatusNotFound},
		{name: "duplicate user", err: domain.ErrUserAlreadyExists, want: fiber.StatusConflict},
		{name: "active subscription conflict", err: domain.ErrActiveSubscriptionExists, want: fiber.StatusConflict},
		{name: "store unavailable", err: domain.ErrStoreUnavailable, want: fiber.StatusServiceUnavailable},
		{name: "wrapped sentinel", err: fmt.Errorf("entry 1: %w", domain.ErrInvalidCalories), want: fiber.StatusBadRequest},
		// A driver or logic error nobody anticipated is a server fault.
		{name: "unexpected error", err: errors.New("connection refused"), want: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(tt.err); got != tt.want {
				t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
