package subscription

import (
	"context"
	"errors"
	"time"

	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/entities"
	"NutriPlan-Backend/internal/utils"
	"NutriPlan-Backend/internal/utils/mailing"
	"NutriPlan-Backend/pkg/payment"
	"NutriPlan-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type (
	SubscriptionService interface {
		AddSamplePlan(ctx context.Context, req domain.AddSamplePlanRequest) (domain.SamplePlanResponse, error)
		GetSamplePlan(ctx context.Context, id string) (domain.SamplePlanResponse, error)
		Purchase(ctx context.Context, req domain.PurchaseRequest) (domain.PurchaseResponse, error)
		GetSubscription(ctx context.Context, id string) (domain.SubscriptionResponse, error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		userRepository         user.UserRepository
		paymentService         payment.PaymentService
		logger                 zerolog.Logger
	}
)

func NewSubscriptionService(
	subscriptionRepository SubscriptionRepository,
	userRepository user.UserRepository,
	paymentService payment.PaymentService,
	logger zerolog.Logger,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
		paymentService:         paymentService,
		logger:                 logger.With().Str("component", "subscription").Logger(),
	}
}

func (s *subscriptionService) AddSamplePlan(ctx context.Context, req domain.AddSamplePlanRequest) (domain.SamplePlanResponse, error) {
	plan := &entities.SamplePlan{
		PlanDuration:      req.PlanDuration,
		NumberOfDays:      req.NumberOfDays,
		MealsPerDay:       req.MealsPerDay,
		MealTypes:         entities.JoinTags(req.MealTypes),
		DietaryPreference: entities.JoinTags(req.DietaryPreference),
		Price:             req.Price,
	}

	_, err := s.subscriptionRepository.FindSamplePlan(ctx, plan)
	if err == nil {
		return domain.SamplePlanResponse{}, domain.ErrSamplePlanAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.SamplePlanResponse{}, domain.WrapStoreError(err)
	}

	if err := s.subscriptionRepository.CreateSamplePlan(ctx, plan); err != nil {
		return domain.SamplePlanResponse{}, domain.WrapStoreError(err)
	}
	return toSamplePlanResponse(plan), nil
}

func (s *subscriptionService) GetSamplePlan(ctx context.Context, id string) (domain.SamplePlanResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.SamplePlanResponse{}, domain.ErrParseUUID
	}

	plan, err := s.subscriptionRepository.GetSamplePlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SamplePlanResponse{}, domain.ErrSamplePlanNotFound
		}
		return domain.SamplePlanResponse{}, domain.WrapStoreError(err)
	}
	return toSamplePlanResponse(plan), nil
}

// Purchase creates a subscription and mirrors it onto the user atomically.
// The payment link and confirmation mail happen after commit and are best
// effort; their failure never rolls back the purchase.
func (s *subscriptionService) Purchase(ctx context.Context, req domain.PurchaseRequest) (domain.PurchaseResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.PurchaseResponse{}, domain.ErrParseUUID
	}
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return domain.PurchaseResponse{}, domain.ErrInvalidStartDate
	}

	target, err := s.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PurchaseResponse{}, domain.ErrUserNotFound
		}
		return domain.PurchaseResponse{}, domain.WrapStoreError(err)
	}

	if _, err := s.subscriptionRepository.GetActiveSubscription(ctx, userID, time.Now()); err == nil {
		return domain.PurchaseResponse{}, domain.ErrActiveSubscriptionExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.PurchaseResponse{}, domain.WrapStoreError(err)
	}

	plan, err := s.subscriptionRepository.GetSamplePlanByID(ctx, req.SamplePlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PurchaseResponse{}, domain.ErrSamplePlanNotFound
		}
		return domain.PurchaseResponse{}, domain.WrapStoreError(err)
	}

	duration := domain.PlanDuration(plan.PlanDuration)
	sub := &entities.Subscription{
		UserID:       userID,
		SamplePlanID: plan.ID,
		StartDate:    startDate,
		EndDate:      startDate.AddDate(0, 0, duration.Days()),
		PlanDuration: plan.PlanDuration,
		Status:       domain.SubscriptionStatusActive,
	}

	if err := s.subscriptionRepository.CreateWithUserLink(ctx, sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.PurchaseResponse{}, domain.ErrActiveSubscriptionExists
		}
		return domain.PurchaseResponse{}, domain.WrapStoreError(err)
	}

	res := domain.PurchaseResponse{
		SubscriptionID: sub.ID.String(),
		SamplePlanID:   sub.SamplePlanID.String(),
		StartDate:      sub.StartDate,
		EndDate:        sub.EndDate,
		PlanDuration:   sub.PlanDuration,
		Status:         sub.Status,
	}

	if s.paymentService != nil && s.paymentService.Enabled() {
		link, err := s.paymentService.CreatePaymentLink(ctx, payment.PaymentLinkRequest{
			OrderID:       sub.ID.String(),
			GrossAmount:   int64(plan.Price),
			CustomerName:  target.Name,
			CustomerEmail: target.Email,
		})
		if err != nil {
			s.logger.Error().Err(err).Str("subscription_id", sub.ID.String()).Msg("payment link creation failed")
		} else {
			res.PaymentURL = link
		}
	}

	if utils.GetConfig("SMTP_HOST") != "" {
		go func(email, name string) {
			body := mailing.SubscriptionConfirmationBody(name, sub.PlanDuration, sub.StartDate, sub.EndDate)
			if err := mailing.SendMail(email, "Your meal subscription is active", body); err != nil {
				s.logger.Error().Err(err).Str("subscription_id", sub.ID.String()).Msg("confirmation mail failed")
			}
		}(target.Email, target.Name)
	}

	return res, nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, id string) (domain.SubscriptionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.SubscriptionResponse{}, domain.ErrParseUUID
	}

	sub, err := s.subscriptionRepository.GetSubscriptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscriptionResponse{}, domain.ErrSubscriptionNotFound
		}
		return domain.SubscriptionResponse{}, domain.WrapStoreError(err)
	}

	return domain.SubscriptionResponse{
		ID:           sub.ID.String(),
		UserID:       sub.UserID.String(),
		SamplePlanID: sub.SamplePlanID.String(),
		StartDate:    sub.StartDate,
		EndDate:      sub.EndDate,
		PlanDuration: sub.PlanDuration,
		Status:       sub.Status,
	}, nil
}

func toSamplePlanResponse(plan *entities.SamplePlan) domain.SamplePlanResponse {
	return domain.SamplePlanResponse{
		ID:                plan.ID.String(),
		PlanDuration:      plan.PlanDuration,
		NumberOfDays:      plan.NumberOfDays,
		MealsPerDay:       plan.MealsPerDay,
		MealTypes:         plan.MealTypeTags(),
		DietaryPreference: plan.DietaryTags(),
		Price:             plan.Price,
	}
}
