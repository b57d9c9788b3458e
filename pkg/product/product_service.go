package product

import (
	"context"
	"errors"
	"fmt"

	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/entities"
	"NutriPlan-Backend/internal/utils/storage"

	"gorm.io/gorm"
)

type (
	ProductService interface {
		AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.ProductResponse, error)
		BulkAddProducts(ctx context.Context, req domain.BulkAddProductRequest) ([]domain.ProductResponse, error)
		GetProducts(ctx context.Context) ([]domain.ProductResponse, error)
		UploadProductImage(ctx context.Context, req domain.UploadProductImageRequest) (domain.ProductResponse, error)
	}

	productService struct {
		productRepository ProductRepository
		s3                storage.AwsS3
	}
)

func NewProductService(productRepository ProductRepository, s3 storage.AwsS3) ProductService {
	return &productService{
		productRepository: productRepository,
		s3:                s3,
	}
}

func (s *productService) AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.ProductResponse, error) {
	item, err := s.buildProduct(req)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	if err := s.checkDuplicate(ctx, item); err != nil {
		return domain.ProductResponse{}, err
	}

	if err := s.productRepository.AddProduct(ctx, item); err != nil {
		return domain.ProductResponse{}, domain.WrapStoreError(err)
	}
	return toProductResponse(item), nil
}

// BulkAddProducts rejects the whole batch on the first invalid or duplicate
// entry; nothing is written unless every entry passes.
func (s *productService) BulkAddProducts(ctx context.Context, req domain.BulkAddProductRequest) ([]domain.ProductResponse, error) {
	items := make([]*entities.Product, 0, len(req.Products))
	for i, p := range req.Products {
		item, err := s.buildProduct(p)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if err := s.checkDuplicate(ctx, item); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		items = append(items, item)
	}

	if err := s.productRepository.AddProducts(ctx, items); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrProductAlreadyExists
		}
		return nil, domain.WrapStoreError(err)
	}

	out := make([]domain.ProductResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toProductResponse(item))
	}
	return out, nil
}

func (s *productService) GetProducts(ctx context.Context) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.GetAllProducts(ctx)
	if err != nil {
		return nil, domain.WrapStoreError(err)
	}
	out := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func (s *productService) UploadProductImage(ctx context.Context, req domain.UploadProductImageRequest) (domain.ProductResponse, error) {
	item, err := s.productRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, domain.WrapStoreError(err)
	}

	fileName := fmt.Sprintf("product-%s", item.ID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "products", storage.AllowImage...)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.productRepository.UpdateProduct(ctx, item); err != nil {
		return domain.ProductResponse{}, domain.WrapStoreError(err)
	}
	return toProductResponse(item), nil
}

func (s *productService) buildProduct(req domain.AddProductRequest) (*entities.Product, error) {
	if req.Calories <= 0 {
		return nil, domain.ErrInvalidCalories
	}
	if len(req.DietaryPreference) == 0 {
		return nil, domain.ErrEmptyDietaryTags
	}

	return &entities.Product{
		Name:              req.Name,
		MealTypes:         entities.JoinTags(req.MealTypes),
		DietaryPreference: entities.JoinTags(req.DietaryPreference),
		Allergies:         entities.JoinTags(req.Allergies),
		Calories:          req.Calories,
		Price:             req.Price,
		Measurement:       req.Measurement,
		Quantity:          req.Quantity,
	}, nil
}

func (s *productService) checkDuplicate(ctx context.Context, item *entities.Product) error {
	_, err := s.productRepository.FindByNameAndDietaryPreference(ctx, item.Name, item.DietaryPreference)
	if err == nil {
		return domain.ErrProductAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.WrapStoreError(err)
	}
	return nil
}

func toProductResponse(p *entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:                p.ID.String(),
		Name:              p.Name,
		MealTypes:         p.MealTypeTags(),
		Calories:          p.Calories,
		Price:             p.Price,
		DietaryPreference: p.DietaryTags(),
		Allergies:         p.AllergyTags(),
		ImageURL:          p.ImageURL,
	}
}
