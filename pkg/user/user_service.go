package user

import (
	"context"
	"errors"
	"time"

	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/entities"
	"NutriPlan-Backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		AdminSignup(ctx context.Context, req domain.AdminAuthRequest) (domain.AdminAuthResponse, error)
		AdminLogin(ctx context.Context, req domain.AdminAuthRequest) (domain.AdminAuthResponse, error)
		UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetAllUsers(ctx context.Context) ([]*entities.User, error)
		CountUsers(ctx context.Context) (int64, error)
		UpdateAddress(ctx context.Context, id string, req domain.UpdateAddressRequest) (domain.AddressResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, domain.WrapStoreError(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		ContactNo: req.ContactNo,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RegisterResponse{}, domain.ErrUserAlreadyExists
		}
		return domain.RegisterResponse{}, domain.WrapStoreError(err)
	}

	return domain.RegisterResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		ContactNo: user.ContactNo,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrUserNotFound
		}
		return domain.LoginResponse{}, domain.WrapStoreError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)

	return domain.LoginResponse{
		UserID: user.ID.String(),
		Name:   user.Name,
		Token:  token,
	}, nil
}

func (s *userService) AdminSignup(ctx context.Context, req domain.AdminAuthRequest) (domain.AdminAuthResponse, error) {
	if _, err := s.userRepository.GetAdminByUserID(ctx, req.UserID); err == nil {
		return domain.AdminAuthResponse{}, domain.ErrAdminAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AdminAuthResponse{}, domain.WrapStoreError(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AdminAuthResponse{}, err
	}

	admin := &entities.Admin{
		UserID:   req.UserID,
		Password: string(hashed),
	}
	if err := s.userRepository.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.AdminAuthResponse{}, domain.ErrAdminAlreadyExists
		}
		return domain.AdminAuthResponse{}, domain.WrapStoreError(err)
	}

	token := s.jwtService.GenerateTokenUser(admin.ID.String(), domain.RoleAdmin)
	return domain.AdminAuthResponse{Token: token}, nil
}

func (s *userService) AdminLogin(ctx context.Context, req domain.AdminAuthRequest) (domain.AdminAuthResponse, error) {
	admin, err := s.userRepository.GetAdminByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AdminAuthResponse{}, domain.ErrAdminNotFound
		}
		return domain.AdminAuthResponse{}, domain.WrapStoreError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return domain.AdminAuthResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(admin.ID.String(), domain.RoleAdmin)
	return domain.AdminAuthResponse{Token: token}, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.WrapStoreError(err)
	}

	updated := false

	if req.Name != "" {
		user.Name = req.Name
		updated = true
	}
	if req.ContactNo != "" {
		user.ContactNo = req.ContactNo
		updated = true
	}
	if req.HeightCm > 0 {
		user.HeightCm = req.HeightCm
		updated = true
	}
	if req.WeightKg > 0 {
		user.WeightKg = req.WeightKg
		updated = true
	}
	if req.Age > 0 {
		user.Age = req.Age
		updated = true
	}
	if req.Gender != "" {
		user.Gender = req.Gender
		updated = true
	}
	if req.ActivityLevel != "" {
		user.ActivityLevel = req.ActivityLevel
		updated = true
	}
	if req.FitnessGoal != "" {
		user.FitnessGoal = req.FitnessGoal
		updated = true
	}
	if len(req.DietaryPreference) > 0 {
		user.DietaryPreference = entities.JoinTags(req.DietaryPreference)
		updated = true
	}
	if len(req.Allergies) > 0 {
		user.Allergies = entities.JoinTags(req.Allergies)
		updated = true
	}
	if req.HomeAddress != "" {
		user.HomeAddress = req.HomeAddress
		updated = true
	}
	if req.OfficeAddress != "" {
		user.OfficeAddress = req.OfficeAddress
		updated = true
	}
	if req.CollegeAddress != "" {
		user.CollegeAddress = req.CollegeAddress
		updated = true
	}

	if !updated {
		return nil, domain.ErrNoFieldsToUpdate
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return nil, domain.WrapStoreError(err)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.WrapStoreError(err)
	}
	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, domain.WrapStoreError(err)
	}
	return users, nil
}

func (s *userService) CountUsers(ctx context.Context) (int64, error) {
	count, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return 0, domain.WrapStoreError(err)
	}
	return count, nil
}

func (s *userService) UpdateAddress(ctx context.Context, id string, req domain.UpdateAddressRequest) (domain.AddressResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AddressResponse{}, domain.ErrUserNotFound
		}
		return domain.AddressResponse{}, domain.WrapStoreError(err)
	}

	address := user.Address
	if req.DefaultAddress != "" {
		address.DefaultAddress = req.DefaultAddress
	}
	if req.ActualAddress != "" {
		address.ActualAddress = req.ActualAddress
	}
	if req.CustomAddress != "" {
		address.CustomAddress = req.CustomAddress
	}
	if req.DeliveryDate != "" {
		deliveryDate, err := time.Parse("2006-01-02", req.DeliveryDate)
		if err != nil {
			return domain.AddressResponse{}, domain.ErrInvalidDeliveryDate
		}
		address.DeliveryDate = &deliveryDate
	}

	if err := s.userRepository.UpdateAddress(ctx, id, address); err != nil {
		return domain.AddressResponse{}, domain.WrapStoreError(err)
	}

	return domain.AddressResponse{
		DefaultAddress: address.DefaultAddress,
		ActualAddress:  address.ActualAddress,
		CustomAddress:  address.CustomAddress,
		DeliveryDate:   address.DeliveryDate,
	}, nil
}
