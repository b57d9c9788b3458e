package mealplan

import (
	"context"
	"errors"
	"sync"
	"testing"

	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubProductRepository struct {
	mu       sync.Mutex
	products []*entities.Product
	calls    int
}

func (s *stubProductRepository) AddProduct(ctx context.Context, product *entities.Product) error {
	return nil
}

func (s *stubProductRepository) AddProducts(ctx context.Context, products []*entities.Product) error {
	return nil
}

func (s *stubProductRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	return nil, errors.New("not implemented")
}

func (s *stubProductRepository) FindByNameAndDietaryPreference(ctx context.Context, name, dietaryPreference string) (*entities.Product, error) {
	return nil, errors.New("not implemented")
}

func (s *stubProductRepository) GetAllProducts(ctx context.Context) ([]*entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.products, nil
}

func (s *stubProductRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return nil
}

type stubUserRepository struct {
	user       *entities.User
	getErr     error
	replaced   []*entities.MealSelection
	replaceErr error
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user *entities.User) error { return nil }

func (s *stubUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.user, nil
}

func (s *stubUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserRepository) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	return nil, nil
}

func (s *stubUserRepository) CountUsers(ctx context.Context) (int64, error) { return 0, nil }

func (s *stubUserRepository) UpdateUser(ctx context.Context, user *entities.User) error { return nil }

func (s *stubUserRepository) UpdateNutrients(ctx context.Context, id string, snapshot entities.NutrientSnapshot) error {
	return nil
}

func (s *stubUserRepository) UpdateAddress(ctx context.Context, id string, address entities.AddressDetails) error {
	return nil
}

func (s *stubUserRepository) ReplaceMealSelections(ctx context.Context, userID uuid.UUID, selections []*entities.MealSelection) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.replaced = selections
	return nil
}

func (s *stubUserRepository) CreateAdmin(ctx context.Context, admin *entities.Admin) error {
	return nil
}

func (s *stubUserRepository) GetAdminByUserID(ctx context.Context, userID string) (*entities.Admin, error) {
	return nil, errors.New("not implemented")
}

func catalogFixture() []*entities.Product {
	return []*entities.Product{
		makeProduct("oats", 300, "breakfast", "veg,vegan", ""),
		makeProduct("idli", 250, "breakfast", "veg", ""),
		makeProduct("omelette", 280, "breakfast", "non-veg", "eggs"),
		makeProduct("dal rice", 500, "lunch", "veg", ""),
		makeProduct("thali", 650, "lunch", "veg", ""),
		makeProduct("chicken curry", 550, "lunch,dinner", "non-veg", ""),
		makeProduct("peanut bowl", 400, "lunch", "veg,vegan", "nuts"),
		makeProduct("khichdi", 450, "dinner", "veg", ""),
		makeProduct("soup", 200, "dinner", "veg,vegan", ""),
	}
}

func TestSuggestMealsInvalidFilter(t *testing.T) {
	products := &stubProductRepository{products: catalogFixture()}
	users := &stubUserRepository{}
	svc := NewMealPlanService(products, users)

	tests := []struct {
		name string
		req  domain.SuggestMealsRequest
	}{
		{
			name: "unknown dietary token",
			req:  domain.SuggestMealsRequest{DietaryPreference: []string{"paleo"}, TotalCalories: 2000},
		},
		{
			name: "unknown allergy token",
			req:  domain.SuggestMealsRequest{DietaryPreference: []string{"veg"}, Allergies: []string{"soy"}, TotalCalories: 2000},
		},
		{
			name: "unknown meal type",
			req:  domain.SuggestMealsRequest{DietaryPreference: []string{"veg"}, MealTypes: []string{"brunch"}, TotalCalories: 2000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SuggestMeals(context.Background(), tt.req)
			if !errors.Is(err, domain.ErrInvalidFilter) {
				t.Fatalf("error = %v, want ErrInvalidFilter", err)
			}
		})
	}

	// Validation failures must never reach the catalog.
	if products.calls != 0 {
		t.Errorf("catalog queried %d times during invalid requests", products.calls)
	}
}

func TestSuggestMealsMissingCalorieTarget(t *testing.T) {
	svc := NewMealPlanService(&stubProductRepository{}, &stubUserRepository{})

	_, err := svc.SuggestMeals(context.Background(), domain.SuggestMealsRequest{
		DietaryPreference: []string{"veg"},
	})
	if !errors.Is(err, domain.ErrMissingCalorieTarget) {
		t.Fatalf("error = %v, want ErrMissingCalorieTarget", err)
	}
}

func TestSuggestMealsAnonymous(t *testing.T) {
	products := &stubProductRepository{products: catalogFixture()}
	users := &stubUserRepository{}
	svc := NewMealPlanService(products, users)

	res, err := svc.SuggestMeals(context.Background(), domain.SuggestMealsRequest{
		DietaryPreference: []string{"veg"},
		Allergies:         []string{"nuts"},
		TotalCalories:     2000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Persisted {
		t.Error("anonymous suggestion must not be persisted")
	}
	if res.Breakfast == nil || res.Lunch == nil || res.Dinner == nil {
		t.Fatal("all three slots expected when no meal types given")
	}
	if res.Breakfast.Target+res.Lunch.Target+res.Dinner.Target != 2000 {
		t.Errorf("slot targets %d/%d/%d do not sum to 2000",
			res.Breakfast.Target, res.Lunch.Target, res.Dinner.Target)
	}

	for _, slot := range []*domain.SlotSuggestion{res.Breakfast, res.Lunch, res.Dinner} {
		for _, p := range slot.Products {
			for _, a := range p.Allergies {
				if a == "nuts" {
					t.Errorf("product %s carries excluded allergy", p.Name)
				}
			}
			for _, d := range p.DietaryPreference {
				if d == "non-veg" && len(p.DietaryPreference) == 1 {
					t.Errorf("product %s does not match veg preference", p.Name)
				}
			}
		}
	}

	if users.replaced != nil {
		t.Error("selections were persisted for an anonymous request")
	}
}

func TestSuggestMealsForUser(t *testing.T) {
	userID := uuid.New()
	products := &stubProductRepository{products: catalogFixture()}
	users := &stubUserRepository{
		user: &entities.User{
			ID:        userID,
			Nutrients: entities.NutrientSnapshot{RecommendedCalories: 1800},
		},
	}
	svc := NewMealPlanService(products, users)

	res, err := svc.SuggestMeals(context.Background(), domain.SuggestMealsRequest{
		DietaryPreference: []string{"veg"},
		UserID:            userID.String(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Persisted {
		t.Error("suggestion for a known user should be persisted")
	}
	if res.Breakfast.Target+res.Lunch.Target+res.Dinner.Target != 1800 {
		t.Errorf("targets do not sum to the stored recommendation")
	}

	perSlot := map[string]int{}
	for _, sel := range users.replaced {
		if sel.UserID != userID {
			t.Errorf("selection stored for wrong user %s", sel.UserID)
		}
		perSlot[sel.Slot]++
	}
	for slot, n := range perSlot {
		if n > 3 {
			t.Errorf("slot %s stored %d selections, cap is 3", slot, n)
		}
	}
}

func TestSuggestMealsUserNotFound(t *testing.T) {
	products := &stubProductRepository{products: catalogFixture()}
	users := &stubUserRepository{getErr: gorm.ErrRecordNotFound}
	svc := NewMealPlanService(products, users)

	_, err := svc.SuggestMeals(context.Background(), domain.SuggestMealsRequest{
		DietaryPreference: []string{"veg"},
		UserID:            uuid.NewString(),
		TotalCalories:     2000,
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("error = %v, want ErrUserNotFound", err)
	}
}
