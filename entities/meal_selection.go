package entities

import (
	"github.com/google/uuid"
)

// MealSelection is one chosen product in a user's per-slot meal plan.
// A user's rows are replaced wholesale whenever a new selection is persisted.
type MealSelection struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Slot      string    `gorm:"not null" json:"slot"` // breakfast, lunch, dinner
	Position  int       `gorm:"not null" json:"position"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Timestamp
}
