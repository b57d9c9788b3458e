package entities

import (
	"strings"

	"github.com/google/uuid"
)

// Product is a catalog meal item. Tag sets (meal types, dietary preference,
// allergies) are stored as comma-joined lowercase strings.
type Product struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	MealTypes         string    `json:"meal_types"`         // "breakfast,lunch,dinner"
	DietaryPreference string    `gorm:"not null" json:"dietary_preference"` // "veg,non-veg,vegan"
	Allergies         string    `json:"allergies,omitempty"`                // "nuts,gluten,dairy,eggs,other"
	Calories          int       `gorm:"not null" json:"calories"`
	Price             float64   `json:"price,omitempty"`
	Measurement       string    `json:"measurement,omitempty"` // plate, bowl, piece, serving, slice, cup
	Quantity          string    `json:"quantity,omitempty"`
	ImageURL          string    `json:"image_url,omitempty"`

	Timestamp
}

func (p *Product) MealTypeTags() []string {
	return splitTags(p.MealTypes)
}

func (p *Product) DietaryTags() []string {
	return splitTags(p.DietaryPreference)
}

func (p *Product) AllergyTags() []string {
	return splitTags(p.Allergies)
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, strings.ToLower(t))
		}
	}
	return tags
}

// JoinTags is the inverse of the tag splitting used across entities.
func JoinTags(tags []string) string {
	normalized := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(strings.ToLower(t)); t != "" {
			normalized = append(normalized, t)
		}
	}
	return strings.Join(normalized, ",")
}
