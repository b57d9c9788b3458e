package entities

import (
	"time"

	"github.com/google/uuid"
)

// NutrientSnapshot is the computed nutrition profile for a user. It is
// overwritten wholesale on every recalculation, never merged field by field.
type NutrientSnapshot struct {
	BMR                 int     `json:"bmr"`
	TDEE                int     `json:"tdee"`
	RecommendedCalories int     `json:"recommended_calories"`
	BMI                 float64 `json:"bmi"`
	ProteinPct          int     `json:"protein_pct"`
	CarbsPct            int     `json:"carbs_pct"`
	FatPct              int     `json:"fat_pct"`
}

// SubscriptionSummary mirrors the user's current subscription so common reads
// do not need a join. The subscription row stays the source of truth.
type SubscriptionSummary struct {
	SubscriptionID *uuid.UUID `gorm:"type:uuid" json:"subscription_id,omitempty"`
	SamplePlanID   *uuid.UUID `gorm:"type:uuid" json:"sample_plan_id,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Status         string     `json:"status,omitempty"`
}

type AddressDetails struct {
	DefaultAddress string     `json:"default_address,omitempty"` // home, office, college
	ActualAddress  string     `json:"actual_address,omitempty"`
	CustomAddress  string     `json:"custom_address,omitempty"`
	DeliveryDate   *time.Time `json:"delivery_date,omitempty"`
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	ContactNo string    `json:"contact_no"`

	HeightCm      float64 `json:"height,omitempty"`
	WeightKg      float64 `json:"weight,omitempty"`
	Age           int     `json:"age,omitempty"`
	Gender        string  `json:"gender,omitempty"`         // male, female
	ActivityLevel string  `json:"activity_level,omitempty"` // sedentary, moderate, active
	FitnessGoal   string  `json:"fitness_goal,omitempty"`   // lose-weight, muscle-gain, maintain

	DietaryPreference string `json:"dietary_preference,omitempty"` // "veg,non-veg,vegan"
	Allergies         string `json:"allergies,omitempty"`          // "nuts,gluten,..."

	HomeAddress    string `json:"home_address,omitempty"`
	OfficeAddress  string `json:"office_address,omitempty"`
	CollegeAddress string `json:"college_address,omitempty"`

	Nutrients    NutrientSnapshot    `gorm:"embedded;embeddedPrefix:nutrient_" json:"nutrients"`
	Subscription SubscriptionSummary `gorm:"embedded;embeddedPrefix:subscription_" json:"subscription"`
	Address      AddressDetails      `gorm:"embedded;embeddedPrefix:address_" json:"address_details"`

	Selections []*MealSelection `gorm:"foreignKey:UserID" json:"selections,omitempty"`
	Timestamp
}

func (u *User) DietaryTags() []string {
	return splitTags(u.DietaryPreference)
}

func (u *User) AllergyTags() []string {
	return splitTags(u.Allergies)
}
