package subscription

import (
	"context"
	"time"

	"NutriPlan-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SubscriptionRepository interface {
		CreateSamplePlan(ctx context.Context, plan *entities.SamplePlan) error
		FindSamplePlan(ctx context.Context, plan *entities.SamplePlan) (*entities.SamplePlan, error)
		GetSamplePlanByID(ctx context.Context, id string) (*entities.SamplePlan, error)

		GetSubscriptionByID(ctx context.Context, id string) (*entities.Subscription, error)
		GetActiveSubscription(ctx context.Context, userID uuid.UUID, now time.Time) (*entities.Subscription, error)
		CreateWithUserLink(ctx context.Context, sub *entities.Subscription) error

		FindExpiredIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error)
		ExpireSubscriptions(ctx context.Context, ids []uuid.UUID) (int64, error)
		ExpireUserSummaries(ctx context.Context, now time.Time) (int64, error)
	}

	subscriptionRepository struct {
		db *gorm.DB
	}
)

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) CreateSamplePlan(ctx context.Context, plan *entities.SamplePlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// FindSamplePlan looks up a plan matching every template attribute; used for
// duplicate detection since plans have no natural key.
func (r *subscriptionRepository) FindSamplePlan(ctx context.Context, plan *entities.SamplePlan) (*entities.SamplePlan, error) {
	var existing entities.SamplePlan
	if err := r.db.WithContext(ctx).
		Where("plan_duration = ? AND number_of_days = ? AND meals_per_day = ? AND meal_types = ? AND dietary_preference = ? AND price = ?",
			plan.PlanDuration, plan.NumberOfDays, plan.MealsPerDay, plan.MealTypes, plan.DietaryPreference, plan.Price).
		First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *subscriptionRepository) GetSamplePlanByID(ctx context.Context, id string) (*entities.SamplePlan, error) {
	var plan entities.SamplePlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *subscriptionRepository) GetSubscriptionByID(ctx context.Context, id string) (*entities.Subscription, error) {
	var sub entities.Subscription
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) GetActiveSubscription(ctx context.Context, userID uuid.UUID, now time.Time) (*entities.Subscription, error) {
	var sub entities.Subscription
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND end_date > ?", userID, "active", now).
		First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// CreateWithUserLink persists the subscription and mirrors it into the user's
// embedded summary in a single transaction; both writes commit or neither
// does. The partial unique index on (user_id) WHERE status='active' rejects a
// concurrent second purchase at commit time.
func (r *subscriptionRepository) CreateWithUserLink(ctx context.Context, sub *entities.Subscription) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		return tx.Model(&entities.User{}).
			Where("id = ?", sub.UserID).
			Updates(map[string]interface{}{
				"subscription_subscription_id": sub.ID,
				"subscription_sample_plan_id":  sub.SamplePlanID,
				"subscription_start_date":      sub.StartDate,
				"subscription_end_date":        sub.EndDate,
				"subscription_status":          sub.Status,
			}).Error
	})
}

func (r *subscriptionRepository) FindExpiredIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&entities.Subscription{}).
		Where("status = ? AND end_date < ?", "active", now).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *subscriptionRepository) ExpireSubscriptions(ctx context.Context, ids []uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.Subscription{}).
		Where("id IN ?", ids).
		Update("status", "expired")
	return res.RowsAffected, res.Error
}

// ExpireUserSummaries matches on the summary columns themselves rather than a
// sweep's id list, so a summary left stale by an earlier partial run is still
// picked up here.
func (r *subscriptionRepository) ExpireUserSummaries(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("subscription_status = ? AND subscription_end_date < ?", "active", now).
		Update("subscription_status", "expired")
	return res.RowsAffected, res.Error
}
