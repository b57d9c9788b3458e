package domain

// Closed enum sets shared by every component. All tokens are lowercase on the
// wire; callers normalize before parsing.

type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
)

// AllSlots is ordered: allocation and selection results follow this order.
var AllSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner}

func (s MealSlot) Valid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner:
		return true
	}
	return false
}

type DietaryPreference string

const (
	DietVeg    DietaryPreference = "veg"
	DietNonVeg DietaryPreference = "non-veg"
	DietVegan  DietaryPreference = "vegan"
)

func (d DietaryPreference) Valid() bool {
	switch d {
	case DietVeg, DietNonVeg, DietVegan:
		return true
	}
	return false
}

type AllergyTag string

const (
	AllergyNuts   AllergyTag = "nuts"
	AllergyGluten AllergyTag = "gluten"
	AllergyDairy  AllergyTag = "dairy"
	AllergyEggs   AllergyTag = "eggs"
	AllergyOther  AllergyTag = "other"
)

func (a AllergyTag) Valid() bool {
	switch a {
	case AllergyNuts, AllergyGluten, AllergyDairy, AllergyEggs, AllergyOther:
		return true
	}
	return false
}

type PlanDuration string

const (
	PlanWeekly  PlanDuration = "weekly"
	PlanMonthly PlanDuration = "monthly"
)

func (p PlanDuration) Valid() bool {
	return p == PlanWeekly || p == PlanMonthly
}

// Days maps a duration class to subscription length. Unrecognized values fall
// back to weekly.
func (p PlanDuration) Days() int {
	if p == PlanMonthly {
		return 30
	}
	return 7
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

// Multiplier returns the TDEE activity factor. Unrecognized levels fall back
// to sedentary rather than erroring.
func (a ActivityLevel) Multiplier() float64 {
	switch a {
	case ActivityModerate:
		return 1.55
	case ActivityActive:
		return 1.725
	default:
		return 1.2
	}
}

type FitnessGoal string

const (
	GoalLoseWeight FitnessGoal = "lose-weight"
	GoalMuscleGain FitnessGoal = "muscle-gain"
	GoalMaintain   FitnessGoal = "maintain"
)

// ValidDietaryTags reports whether every token is a known dietary preference,
// returning the first unknown token otherwise.
func ValidDietaryTags(tags []string) (string, bool) {
	for _, t := range tags {
		if !DietaryPreference(t).Valid() {
			return t, false
		}
	}
	return "", true
}

// ValidAllergyTags reports whether every token is a known allergy tag.
func ValidAllergyTags(tags []string) (string, bool) {
	for _, t := range tags {
		if !AllergyTag(t).Valid() {
			return t, false
		}
	}
	return "", true
}

// ValidSlotTags reports whether every token is a known meal slot.
func ValidSlotTags(tags []string) (string, bool) {
	for _, t := range tags {
		if !MealSlot(t).Valid() {
			return t, false
		}
	}
	return "", true
}
