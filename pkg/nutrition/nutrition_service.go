package nutrition

import (
	"context"
	"errors"
	"math"
	"strings"

	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/entities"
	"NutriPlan-Backend/pkg/user"

	"gorm.io/gorm"
)

type (
	// NutritionService computes BMR/TDEE/BMI and macro splits from biometric
	// inputs and persists the snapshot onto the user record.
	NutritionService interface {
		CalculateCalories(ctx context.Context, req domain.CalculateCaloriesRequest) (domain.NutritionResponse, error)
	}

	nutritionService struct {
		userRepository user.UserRepository
	}
)

func NewNutritionService(userRepository user.UserRepository) NutritionService {
	return &nutritionService{userRepository: userRepository}
}

func (s *nutritionService) CalculateCalories(ctx context.Context, req domain.CalculateCaloriesRequest) (domain.NutritionResponse, error) {
	result, err := Compute(req.Gender, req.WeightKg, req.HeightCm, req.Age, req.ActivityLevel, req.Goal)
	if err != nil {
		return domain.NutritionResponse{}, err
	}

	if _, err := s.userRepository.GetUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NutritionResponse{}, domain.ErrUserNotFound
		}
		return domain.NutritionResponse{}, domain.WrapStoreError(err)
	}

	snapshot := entities.NutrientSnapshot{
		BMR:                 result.BMR,
		TDEE:                result.TDEE,
		RecommendedCalories: result.RecommendedCalories,
		BMI:                 result.BMI,
		ProteinPct:          result.Macros.Protein,
		CarbsPct:            result.Macros.Carbs,
		FatPct:              result.Macros.Fat,
	}
	if err := s.userRepository.UpdateNutrients(ctx, req.UserID, snapshot); err != nil {
		return domain.NutritionResponse{}, domain.WrapStoreError(err)
	}

	return result, nil
}

// Compute runs the full calorie pipeline without touching the store.
func Compute(gender string, weightKg, heightCm float64, age int, activityLevel, goal string) (domain.NutritionResponse, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return domain.NutritionResponse{}, domain.ErrInvalidBiometrics
	}

	bmr, err := CalculateBMR(gender, weightKg, heightCm, age)
	if err != nil {
		return domain.NutritionResponse{}, err
	}

	// The rounded BMR feeds the multiplier, so published BMR and TDEE values
	// stay arithmetically consistent with each other.
	roundedBMR := math.Round(bmr)

	level := domain.ActivityLevel(strings.ToLower(activityLevel))
	tdee := roundedBMR * level.Multiplier()

	normalizedGoal := domain.FitnessGoal(strings.ToLower(goal))
	adjusted := applyGoalAdjustment(tdee, normalizedGoal)

	return domain.NutritionResponse{
		BMR:                 int(roundedBMR),
		TDEE:                int(math.Round(tdee)),
		RecommendedCalories: int(math.Round(adjusted)),
		BMI:                 CalculateBMI(weightKg, heightCm),
		Macros:              macroSplit(normalizedGoal),
	}, nil
}

// CalculateBMR uses the Mifflin-St Jeor equation. Gender must be male or
// female; anything else is an input error.
func CalculateBMR(gender string, weightKg, heightCm float64, age int) (float64, error) {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)

	switch domain.Gender(strings.ToLower(gender)) {
	case domain.GenderMale:
		return base + 5, nil
	case domain.GenderFemale:
		return base - 161, nil
	default:
		return 0, domain.ErrInvalidGender
	}
}

// CalculateBMI returns weight/(height in m)^2 rounded to 2 decimals.
func CalculateBMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100.0
	return math.Round(weightKg/(h*h)*100) / 100
}

func applyGoalAdjustment(tdee float64, goal domain.FitnessGoal) float64 {
	switch goal {
	case domain.GoalLoseWeight:
		return tdee - 500
	case domain.GoalMuscleGain:
		return tdee + 500
	default: // maintain
		return tdee
	}
}

func macroSplit(goal domain.FitnessGoal) domain.MacroSplit {
	switch goal {
	case domain.GoalLoseWeight:
		return domain.MacroSplit{Protein: 40, Carbs: 30, Fat: 30}
	case domain.GoalMuscleGain:
		return domain.MacroSplit{Protein: 35, Carbs: 40, Fat: 25}
	default: // maintain
		return domain.MacroSplit{Protein: 30, Carbs: 40, Fat: 30}
	}
}

// AllocateMealCalories splits a daily calorie total across the three meal
// slots. Breakfast and dinner each take a rounded 30%; lunch takes the
// remainder so the three always sum back to the input exactly.
func AllocateMealCalories(total int) domain.MealCalorieSplit {
	breakfast := int(math.Round(0.3 * float64(total)))
	dinner := int(math.Round(0.3 * float64(total)))
	return domain.MealCalorieSplit{
		Breakfast: breakfast,
		Lunch:     total - breakfast - dinner,
		Dinner:    dinner,
	}
}
