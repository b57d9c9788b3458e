package entities

import (
	"time"

	"github.com/google/uuid"
)

// SamplePlan is a reusable subscription template. Plans are immutable once
// created; there is no update path.
type SamplePlan struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PlanDuration      string    `gorm:"not null" json:"plan_duration"` // weekly, monthly
	NumberOfDays      int       `gorm:"not null" json:"number_of_days"` // 5 or 7
	MealsPerDay       int       `gorm:"not null" json:"meals_per_day"`  // 1..3
	MealTypes         string    `gorm:"not null" json:"meal_types"`
	DietaryPreference string    `gorm:"not null" json:"dietary_preference"`
	Price             float64   `gorm:"default:2000" json:"price"`

	Timestamp
}

func (p *SamplePlan) MealTypeTags() []string {
	return splitTags(p.MealTypes)
}

func (p *SamplePlan) DietaryTags() []string {
	return splitTags(p.DietaryPreference)
}

type Subscription struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	SamplePlanID uuid.UUID `gorm:"type:uuid;not null" json:"sample_plan_id"`
	StartDate    time.Time `gorm:"not null" json:"start_date"`
	EndDate      time.Time `gorm:"not null" json:"end_date"`
	PlanDuration string    `gorm:"not null" json:"plan_duration"`
	Status       string    `gorm:"not null;default:'active'" json:"status"` // active, expired, cancelled

	User       *User       `gorm:"foreignKey:UserID" json:"-"`
	SamplePlan *SamplePlan `gorm:"foreignKey:SamplePlanID" json:"-"`
	Timestamp
}

type Admin struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   string    `gorm:"uniqueIndex;not null" json:"user_id"`
	Password string    `gorm:"not null" json:"-"`

	Timestamp
}
