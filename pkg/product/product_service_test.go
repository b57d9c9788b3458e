package product

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/entities"

	"gorm.io/gorm"
)

type stubProductRepository struct {
	mu       sync.Mutex
	existing map[string]*entities.Product // key: name|dietary
	added    []*entities.Product
}

func key(name, dietary string) string { return name + "|" + dietary }

func (s *stubProductRepository) AddProduct(ctx context.Context, product *entities.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.added = append(s.added, product)
	return nil
}

func (s *stubProductRepository) AddProducts(ctx context.Context, products []*entities.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.added = append(s.added, products...)
	return nil
}

func (s *stubProductRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProductRepository) FindByNameAndDietaryPreference(ctx context.Context, name, dietaryPreference string) (*entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.existing[key(name, dietaryPreference)]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProductRepository) GetAllProducts(ctx context.Context) ([]*entities.Product, error) {
	return nil, nil
}

func (s *stubProductRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return nil
}

func validRequest(name string) domain.AddProductRequest {
	return domain.AddProductRequest{
		Name:              name,
		MealTypes:         []string{"lunch"},
		Calories:          500,
		Price:             120,
		DietaryPreference: []string{"veg"},
	}
}

func TestAddProduct(t *testing.T) {
	t.Run("stores joined tag sets", func(t *testing.T) {
		repo := &stubProductRepository{}
		svc := NewProductService(repo, nil)

		req := validRequest("thali")
		req.DietaryPreference = []string{"veg", "vegan"}
		req.Allergies = []string{"nuts"}

		if _, err := svc.AddProduct(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.added) != 1 {
			t.Fatalf("stored %d products, want 1", len(repo.added))
		}
		if repo.added[0].DietaryPreference != "veg,vegan" {
			t.Errorf("dietary = %q, want veg,vegan", repo.added[0].DietaryPreference)
		}
		if repo.added[0].Allergies != "nuts" {
			t.Errorf("allergies = %q, want nuts", repo.added[0].Allergies)
		}
	})

	t.Run("rejects duplicate name and dietary pair", func(t *testing.T) {
		repo := &stubProductRepository{
			existing: map[string]*entities.Product{key("thali", "veg"): {}},
		}
		svc := NewProductService(repo, nil)

		_, err := svc.AddProduct(context.Background(), validRequest("thali"))
		if !errors.Is(err, domain.ErrProductAlreadyExists) {
			t.Fatalf("error = %v, want ErrProductAlreadyExists", err)
		}
	})

	t.Run("rejects non-positive calories", func(t *testing.T) {
		svc := NewProductService(&stubProductRepository{}, nil)

		req := validRequest("thali")
		req.Calories = 0
		if _, err := svc.AddProduct(context.Background(), req); !errors.Is(err, domain.ErrInvalidCalories) {
			t.Fatalf("error = %v, want ErrInvalidCalories", err)
		}
	})

	t.Run("rejects empty dietary tags", func(t *testing.T) {
		svc := NewProductService(&stubProductRepository{}, nil)

		req := validRequest("thali")
		req.DietaryPreference = nil
		if _, err := svc.AddProduct(context.Background(), req); !errors.Is(err, domain.ErrEmptyDietaryTags) {
			t.Fatalf("error = %v, want ErrEmptyDietaryTags", err)
		}
	})
}

func TestBulkAddProducts(t *testing.T) {
	t.Run("whole batch rejected on one bad entry", func(t *testing.T) {
		repo := &stubProductRepository{}
		svc := NewProductService(repo, nil)

		bad := validRequest("soup")
		bad.Calories = -10

		_, err := svc.BulkAddProducts(context.Background(), domain.BulkAddProductRequest{
			Products: []domain.AddProductRequest{validRequest("thali"), bad},
		})
		if !errors.Is(err, domain.ErrInvalidCalories) {
			t.Fatalf("error = %v, want ErrInvalidCalories", err)
		}
		if !strings.Contains(err.Error(), "entry 1") {
			t.Errorf("error %q does not name the failing entry", err)
		}
		if len(repo.added) != 0 {
			t.Errorf("%d products written despite invalid batch", len(repo.added))
		}
	})

	t.Run("valid batch stored together", func(t *testing.T) {
		repo := &stubProductRepository{}
		svc := NewProductService(repo, nil)

		res, err := svc.BulkAddProducts(context.Background(), domain.BulkAddProductRequest{
			Products: []domain.AddProductRequest{validRequest("thali"), validRequest("soup")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || len(repo.added) != 2 {
			t.Fatalf("stored %d, returned %d, want 2 and 2", len(repo.added), len(res))
		}
	})
}
