package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessGetUser        = "user found"
	MessageSuccessGetUsers       = "user data fetched successfully"
	MessageSuccessGetUserCount   = "user count fetched successfully"
	MessageSuccessUpdateAddress  = "address updated successfully"
	MessageSuccessAdminSignup    = "admin created successfully"
	MessageSuccessAdminLogin     = "admin login successful"

	MessageFailedRegister      = "user registration failed"
	MessageFailedLogin         = "login failed"
	MessageFailedUpdateUser    = "failed to update user"
	MessageFailedGetUser       = "failed to fetch user"
	MessageFailedGetUsers      = "error while fetching users"
	MessageFailedGetUserCount  = "error fetching user count"
	MessageFailedUpdateAddress = "error while adding address"
	MessageFailedAdminSignup   = "admin signup failed"
	MessageFailedAdminLogin    = "admin login failed"

	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user does not exist")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAdminAlreadyExists  = errors.New("admin already exists")
	ErrAdminNotFound       = errors.New("admin not found")
	ErrNoFieldsToUpdate    = errors.New("no valid data provided to update")
	ErrInvalidDeliveryDate = errors.New("invalid delivery date")
)

type (
	RegisterRequest struct {
		Name      string `json:"name" validate:"required,min=2"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=6"`
		ContactNo string `json:"contact_no" validate:"required,len=10,numeric"`
	}

	RegisterResponse struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		ContactNo string `json:"contact_no"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		UserID string `json:"user_id"`
		Name   string `json:"name"`
		Token  string `json:"token"`
	}

	AdminAuthRequest struct {
		UserID   string `json:"user_id" validate:"required"`
		Password string `json:"password" validate:"required,min=6"`
	}

	AdminAuthResponse struct {
		Token string `json:"token"`
	}

	// UpdateUserRequest carries the whitelisted profile fields. Empty values
	// are skipped, matching partial-update semantics.
	UpdateUserRequest struct {
		Name              string   `json:"name" validate:"omitempty,min=2"`
		ContactNo         string   `json:"contact_no" validate:"omitempty,len=10,numeric"`
		HeightCm          float64  `json:"height" validate:"omitempty,gt=0"`
		WeightKg          float64  `json:"weight" validate:"omitempty,gt=0"`
		Age               int      `json:"age" validate:"omitempty,gt=0"`
		Gender            string   `json:"gender" validate:"omitempty,oneof=male female"`
		ActivityLevel     string   `json:"activity_level" validate:"omitempty,oneof=sedentary moderate active"`
		FitnessGoal       string   `json:"fitness_goal" validate:"omitempty,oneof=lose-weight muscle-gain maintain"`
		DietaryPreference []string `json:"dietary_preference" validate:"omitempty,dive,oneof=veg non-veg vegan"`
		Allergies         []string `json:"allergies" validate:"omitempty,dive,oneof=nuts gluten dairy eggs other"`
		HomeAddress       string   `json:"home_address"`
		OfficeAddress     string   `json:"office_address"`
		CollegeAddress    string   `json:"college_address"`
	}

	UpdateAddressRequest struct {
		DefaultAddress string `json:"default_address" validate:"omitempty,oneof=home office college"`
		ActualAddress  string `json:"actual_address"`
		CustomAddress  string `json:"custom_address"`
		DeliveryDate   string `json:"delivery_date" validate:"omitempty"` // YYYY-MM-DD
	}

	AddressResponse struct {
		DefaultAddress string     `json:"default_address,omitempty"`
		ActualAddress  string     `json:"actual_address,omitempty"`
		CustomAddress  string     `json:"custom_address,omitempty"`
		DeliveryDate   *time.Time `json:"delivery_date,omitempty"`
	}
)
