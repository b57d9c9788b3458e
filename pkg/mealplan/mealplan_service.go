package mealplan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/entities"
	"NutriPlan-Backend/pkg/nutrition"
	"NutriPlan-Backend/pkg/product"
	"NutriPlan-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxSelectionsPerSlot caps how many chosen items are stored on the user per
// meal slot.
const maxSelectionsPerSlot = 3

type (
	// MealPlanService drives the meal selection engine: allocate a calorie
	// target per slot, filter the catalog, pick an approximating subset, and
	// optionally persist the result onto a user.
	MealPlanService interface {
		SuggestMeals(ctx context.Context, req domain.SuggestMealsRequest) (domain.SuggestMealsResponse, error)
	}

	mealPlanService struct {
		productRepository product.ProductRepository
		userRepository    user.UserRepository
	}
)

func NewMealPlanService(productRepository product.ProductRepository, userRepository user.UserRepository) MealPlanService {
	return &mealPlanService{
		productRepository: productRepository,
		userRepository:    userRepository,
	}
}

func (s *mealPlanService) SuggestMeals(ctx context.Context, req domain.SuggestMealsRequest) (domain.SuggestMealsResponse, error) {
	dietary := normalizeTags(req.DietaryPreference)
	allergies := normalizeTags(req.Allergies)
	slots := normalizeTags(req.MealTypes)

	// Unknown tokens fail the whole request before any catalog query.
	if token, ok := domain.ValidDietaryTags(dietary); !ok {
		return domain.SuggestMealsResponse{}, fmt.Errorf("%w: dietary preference %q", domain.ErrInvalidFilter, token)
	}
	if token, ok := domain.ValidAllergyTags(allergies); !ok {
		return domain.SuggestMealsResponse{}, fmt.Errorf("%w: allergy %q", domain.ErrInvalidFilter, token)
	}
	if token, ok := domain.ValidSlotTags(slots); !ok {
		return domain.SuggestMealsResponse{}, fmt.Errorf("%w: meal type %q", domain.ErrInvalidFilter, token)
	}
	if len(slots) == 0 {
		for _, slot := range domain.AllSlots {
			slots = append(slots, string(slot))
		}
	}

	var target *entities.User
	if req.UserID != "" {
		var err error
		target, err = s.userRepository.GetUserByID(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.SuggestMealsResponse{}, domain.ErrUserNotFound
			}
			return domain.SuggestMealsResponse{}, domain.WrapStoreError(err)
		}
	}

	total := req.TotalCalories
	if total <= 0 && target != nil {
		total = target.Nutrients.RecommendedCalories
	}
	if total <= 0 {
		return domain.SuggestMealsResponse{}, domain.ErrMissingCalorieTarget
	}

	split := nutrition.AllocateMealCalories(total)
	targets := map[domain.MealSlot]int{
		domain.SlotBreakfast: split.Breakfast,
		domain.SlotLunch:     split.Lunch,
		domain.SlotDinner:    split.Dinner,
	}

	pool, err := s.productRepository.GetAllProducts(ctx)
	if err != nil {
		return domain.SuggestMealsResponse{}, domain.WrapStoreError(err)
	}

	res := domain.SuggestMealsResponse{}
	selections := map[domain.MealSlot][]*entities.Product{}
	for _, slotName := range slots {
		slot := domain.MealSlot(slotName)
		candidates := FilterPool(pool, slot, dietary, allergies)
		picked := SelectForSlot(candidates, targets[slot])
		selections[slot] = picked

		suggestion := &domain.SlotSuggestion{
			Target:   targets[slot],
			Total:    SumCalories(picked),
			Products: toProductResponses(picked),
		}
		switch slot {
		case domain.SlotBreakfast:
			res.Breakfast = suggestion
		case domain.SlotLunch:
			res.Lunch = suggestion
		case domain.SlotDinner:
			res.Dinner = suggestion
		}
	}

	if target != nil {
		if err := s.persistSelections(ctx, target.ID, selections); err != nil {
			return domain.SuggestMealsResponse{}, domain.WrapStoreError(err)
		}
		res.Persisted = true
	}

	return res, nil
}

func (s *mealPlanService) persistSelections(ctx context.Context, userID uuid.UUID, selections map[domain.MealSlot][]*entities.Product) error {
	var rows []*entities.MealSelection
	for _, slot := range domain.AllSlots {
		picked := selections[slot]
		if len(picked) > maxSelectionsPerSlot {
			picked = picked[:maxSelectionsPerSlot]
		}
		for i, p := range picked {
			rows = append(rows, &entities.MealSelection{
				UserID:    userID,
				Slot:      string(slot),
				Position:  i,
				ProductID: p.ID,
			})
		}
	}
	return s.userRepository.ReplaceMealSelections(ctx, userID, rows)
}

func toProductResponses(products []*entities.Product) []domain.ProductResponse {
	out := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, domain.ProductResponse{
			ID:                p.ID.String(),
			Name:              p.Name,
			MealTypes:         p.MealTypeTags(),
			Calories:          p.Calories,
			Price:             p.Price,
			DietaryPreference: p.DietaryTags(),
			Allergies:         p.AllergyTags(),
			ImageURL:          p.ImageURL,
		})
	}
	return out
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(strings.ToLower(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}
