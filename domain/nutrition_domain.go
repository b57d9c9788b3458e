package domain

import "errors"

var (
	MessageSuccessCalculateCalories = "nutritional data calculated and saved"
	MessageFailedCalculateCalories  = "failed to calculate calories"

	ErrInvalidGender     = errors.New("invalid gender value, accepted values are: male, female")
	ErrInvalidBiometrics = errors.New("weight, height and age must be positive")
)

type (
	CalculateCaloriesRequest struct {
		UserID        string  `json:"user_id" validate:"required,uuid"`
		Gender        string  `json:"gender" validate:"required"`
		WeightKg      float64 `json:"weight" validate:"required,gt=0"`
		HeightCm      float64 `json:"height" validate:"required,gt=0"`
		Age           int     `json:"age" validate:"required,gt=0"`
		ActivityLevel string  `json:"activity_level" validate:"required"`
		Goal          string  `json:"goal" validate:"required"`
	}

	MacroSplit struct {
		Protein int `json:"protein"`
		Carbs   int `json:"carbs"`
		Fat     int `json:"fat"`
	}

	NutritionResponse struct {
		BMR                 int        `json:"bmr"`
		TDEE                int        `json:"tdee"`
		RecommendedCalories int        `json:"recommended_calories"`
		BMI                 float64    `json:"bmi"`
		Macros              MacroSplit `json:"macro_nutrients"`
	}

	MealCalorieSplit struct {
		Breakfast int `json:"breakfast"`
		Lunch     int `json:"lunch"`
		Dinner    int `json:"dinner"`
	}
)
