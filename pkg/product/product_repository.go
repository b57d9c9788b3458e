package product

import (
	"context"

	"NutriPlan-Backend/entities"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		AddProduct(ctx context.Context, product *entities.Product) error
		AddProducts(ctx context.Context, products []*entities.Product) error
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		FindByNameAndDietaryPreference(ctx context.Context, name, dietaryPreference string) (*entities.Product, error)
		GetAllProducts(ctx context.Context) ([]*entities.Product, error)
		UpdateProduct(ctx context.Context, product *entities.Product) error
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) AddProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// AddProducts inserts a batch atomically: the whole batch is rejected when any
// row fails.
func (r *productRepository) AddProducts(ctx context.Context, products []*entities.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(products).Error
	})
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByNameAndDietaryPreference(ctx context.Context, name, dietaryPreference string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Where("name = ? AND dietary_preference = ?", name, dietaryPreference).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetAllProducts(ctx context.Context) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}
