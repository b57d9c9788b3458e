package user

import (
	"context"

	"NutriPlan-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetAllUsers(ctx context.Context) ([]*entities.User, error)
		CountUsers(ctx context.Context) (int64, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		UpdateNutrients(ctx context.Context, id string, snapshot entities.NutrientSnapshot) error
		UpdateAddress(ctx context.Context, id string, address entities.AddressDetails) error
		ReplaceMealSelections(ctx context.Context, userID uuid.UUID, selections []*entities.MealSelection) error

		CreateAdmin(ctx context.Context, admin *entities.Admin) error
		GetAdminByUserID(ctx context.Context, userID string) (*entities.Admin, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// UpdateNutrients overwrites the whole nutrient snapshot. Column-level update
// keeps the overwrite atomic without touching the rest of the row.
func (r *userRepository) UpdateNutrients(ctx context.Context, id string, snapshot entities.NutrientSnapshot) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"nutrient_bmr":                  snapshot.BMR,
			"nutrient_tdee":                 snapshot.TDEE,
			"nutrient_recommended_calories": snapshot.RecommendedCalories,
			"nutrient_bmi":                  snapshot.BMI,
			"nutrient_protein_pct":          snapshot.ProteinPct,
			"nutrient_carbs_pct":            snapshot.CarbsPct,
			"nutrient_fat_pct":              snapshot.FatPct,
		}).Error
}

func (r *userRepository) UpdateAddress(ctx context.Context, id string, address entities.AddressDetails) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"address_default_address": address.DefaultAddress,
			"address_actual_address":  address.ActualAddress,
			"address_custom_address":  address.CustomAddress,
			"address_delivery_date":   address.DeliveryDate,
		}).Error
}

// ReplaceMealSelections swaps a user's stored meal plan wholesale. Delete and
// insert run in one transaction so readers never observe a half-written plan.
func (r *userRepository) ReplaceMealSelections(ctx context.Context, userID uuid.UUID, selections []*entities.MealSelection) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&entities.MealSelection{}).Error; err != nil {
			return err
		}
		if len(selections) == 0 {
			return nil
		}
		return tx.Create(selections).Error
	})
}

func (r *userRepository) CreateAdmin(ctx context.Context, admin *entities.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *userRepository) GetAdminByUserID(ctx context.Context, userID string) (*entities.Admin, error) {
	var admin entities.Admin
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
