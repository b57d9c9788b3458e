package subscription

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/entities"
	"NutriPlan-Backend/pkg/payment"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type stubSubscriptionRepository struct {
	plans        map[string]*entities.SamplePlan
	existingPlan *entities.SamplePlan
	activeSub    *entities.Subscription
	created      *entities.Subscription
	createErr    error
}

func (s *stubSubscriptionRepository) CreateSamplePlan(ctx context.Context, plan *entities.SamplePlan) error {
	plan.ID = uuid.New()
	return nil
}

func (s *stubSubscriptionRepository) FindSamplePlan(ctx context.Context, plan *entities.SamplePlan) (*entities.SamplePlan, error) {
	if s.existingPlan != nil {
		return s.existingPlan, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubSubscriptionRepository) GetSamplePlanByID(ctx context.Context, id string) (*entities.SamplePlan, error) {
	if plan, ok := s.plans[id]; ok {
		return plan, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubSubscriptionRepository) GetSubscriptionByID(ctx context.Context, id string) (*entities.Subscription, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubSubscriptionRepository) GetActiveSubscription(ctx context.Context, userID uuid.UUID, now time.Time) (*entities.Subscription, error) {
	if s.activeSub != nil {
		return s.activeSub, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubSubscriptionRepository) CreateWithUserLink(ctx context.Context, sub *entities.Subscription) error {
	if s.createErr != nil {
		return s.createErr
	}
	sub.ID = uuid.New()
	s.created = sub
	return nil
}

func (s *stubSubscriptionRepository) FindExpiredIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	return nil, nil
}

func (s *stubSubscriptionRepository) ExpireSubscriptions(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubSubscriptionRepository) ExpireUserSummaries(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type stubUserRepository struct {
	user *entities.User
}

func (s *stubUserRepository) CreateUser(ctx context.Context, u *entities.User) error { return nil }

func (s *stubUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if s.user != nil && s.user.ID.String() == id {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepository) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	return nil, nil
}

func (s *stubUserRepository) CountUsers(ctx context.Context) (int64, error) { return 0, nil }

func (s *stubUserRepository) UpdateUser(ctx context.Context, u *entities.User) error { return nil }

func (s *stubUserRepository) UpdateNutrients(ctx context.Context, id string, snapshot entities.NutrientSnapshot) error {
	return nil
}

func (s *stubUserRepository) UpdateAddress(ctx context.Context, id string, address entities.AddressDetails) error {
	return nil
}

func (s *stubUserRepository) ReplaceMealSelections(ctx context.Context, userID uuid.UUID, selections []*entities.MealSelection) error {
	return nil
}

func (s *stubUserRepository) CreateAdmin(ctx context.Context, admin *entities.Admin) error {
	return nil
}

func (s *stubUserRepository) GetAdminByUserID(ctx context.Context, userID string) (*entities.Admin, error) {
	return nil, gorm.ErrRecordNotFound
}

type stubPaymentService struct {
	enabled bool
	link    string
	err     error
	calls   int
}

func (s *stubPaymentService) Enabled() bool { return s.enabled }

func (s *stubPaymentService) CreatePaymentLink(ctx context.Context, req payment.PaymentLinkRequest) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.link, nil
}

func fixtureService(repo *stubSubscriptionRepository, pay payment.PaymentService, u *entities.User) SubscriptionService {
	return NewSubscriptionService(repo, &stubUserRepository{user: u}, pay, zerolog.Nop())
}

func fixtureUser() *entities.User {
	return &entities.User{
		ID:    uuid.New(),
		Name:  "Asha",
		Email: "asha@example.com",
	}
}

func weeklyPlan() *entities.SamplePlan {
	return &entities.SamplePlan{
		ID:                uuid.New(),
		PlanDuration:      "weekly",
		NumberOfDays:      7,
		MealsPerDay:       3,
		MealTypes:         "breakfast,lunch,dinner",
		DietaryPreference: "veg",
		Price:             2500,
	}
}

func TestPurchase(t *testing.T) {
	t.Run("weekly plan ends after 7 days", func(t *testing.T) {
		plan := weeklyPlan()
		repo := &stubSubscriptionRepository{plans: map[string]*entities.SamplePlan{plan.ID.String(): plan}}
		u := fixtureUser()
		svc := fixtureService(repo, &stubPaymentService{}, u)

		res, err := svc.Purchase(context.Background(), domain.PurchaseRequest{
			UserID:       u.ID.String(),
			SamplePlanID: plan.ID.String(),
			StartDate:    "2026-09-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantEnd := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
		if !res.EndDate.Equal(wantEnd) {
			t.Errorf("end date = %v, want %v", res.EndDate, wantEnd)
		}
		if res.Status != domain.SubscriptionStatusActive {
			t.Errorf("status = %q, want active", res.Status)
		}
		if repo.created == nil {
			t.Fatal("subscription was not stored")
		}
		if repo.created.UserID != u.ID {
			t.Errorf("stored for wrong user")
		}
	})

	t.Run("monthly plan ends after 30 days", func(t *testing.T) {
		plan := weeklyPlan()
		plan.PlanDuration = "monthly"
		repo := &stubSubscriptionRepository{plans: map[string]*entities.SamplePlan{plan.ID.String(): plan}}
		u := fixtureUser()
		svc := fixtureService(repo, &stubPaymentService{}, u)

		res, err := svc.Purchase(context.Background(), domain.PurchaseRequest{
			UserID:       u.ID.String(),
			SamplePlanID: plan.ID.String(),
			StartDate:    "2026-09-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC); !res.EndDate.Equal(want) {
			t.Errorf("end date = %v, want %v", res.EndDate, want)
		}
	})

	t.Run("rejects second active subscription", func(t *testing.T) {
		plan := weeklyPlan()
		repo := &stubSubscriptionRepository{
			plans:     map[string]*entities.SamplePlan{plan.ID.String(): plan},
			activeSub: &entities.Subscription{},
		}
		u := fixtureUser()
		svc := fixtureService(repo, &stubPaymentService{}, u)

		_, err := svc.Purchase(context.Background(), domain.PurchaseRequest{
			UserID:       u.ID.String(),
			SamplePlanID: plan.ID.String(),
			StartDate:    "2026-09-01",
		})
		if !errors.Is(err, domain.ErrActiveSubscriptionExists) {
			t.Fatalf("error = %v, want ErrActiveSubscriptionExists", err)
		}
	})

	t.Run("maps duplicate key from concurrent purchase", func(t *testing.T) {
		plan := weeklyPlan()
		repo := &stubSubscriptionRepository{
			plans:     map[string]*entities.SamplePlan{plan.ID.String(): plan},
			createErr: gorm.ErrDuplicatedKey,
		}
		u := fixtureUser()
		svc := fixtureService(repo, &stubPaymentService{}, u)

		_, err := svc.Purchase(context.Background(), domain.PurchaseRequest{
			UserID:       u.ID.String(),
			SamplePlanID: plan.ID.String(),
			StartDate:    "2026-09-01",
		})
		if !errors.Is(err, domain.ErrActiveSubscriptionExists) {
			t.Fatalf("error = %v, want ErrActiveSubscriptionExists", err)
		}
	})

	t.Run("invalid start date", func(t *testing.T) {
		u := fixtureUser()
		svc := fixtureService(&stubSubscriptionRepository{}, &stubPaymentService{}, u)

		_, err := svc.Purchase(context.Background(), domain.PurchaseRequest{
			UserID:       u.ID.String(),
			SamplePlanID: uuid.NewString(),
			StartDate:    "01-09-2026",
		})
		if !errors.Is(err, domain.ErrInvalidStartDate) {
			t.Fatalf("error = %v, want ErrInvalidStartDate", err)
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		u := fixtureUser()
		svc := fixtureService(&stubSubscriptionRepository{}, &stubPaymentService{}, u)

		_, err := svc.Purchase(context.Background(), domain.PurchaseRequest{
			UserID:       u.ID.String(),
			SamplePlanID: uuid.NewString(),
			StartDate:    "2026-09-01",
		})
		if !errors.Is(err, domain.ErrSamplePlanNotFound) {
			t.Fatalf("error = %v, want ErrSamplePlanNotFound", err)
		}
	})

	t.Run("payment link attached when gateway enabled", func(t *testing.T) {
		plan := weeklyPlan()
		repo := &stubSubscriptionRepository{plans: map[string]*entities.SamplePlan{plan.ID.String(): plan}}
		pay := &stubPaymentService{enabled: true, link: "https://pay.example/abc"}
		u := fixtureUser()
		svc := fixtureService(repo, pay, u)

		res, err := svc.Purchase(context.Background(), domain.PurchaseRequest{
			UserID:       u.ID.String(),
			SamplePlanID: plan.ID.String(),
			StartDate:    "2026-09-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentURL != "https://pay.example/abc" {
			t.Errorf("payment url = %q", res.PaymentURL)
		}
		if pay.calls != 1 {
			t.Errorf("payment gateway called %d times", pay.calls)
		}
	})

	t.Run("payment failure does not fail the purchase", func(t *testing.T) {
		plan := weeklyPlan()
		repo := &stubSubscriptionRepository{plans: map[string]*entities.SamplePlan{plan.ID.String(): plan}}
		pay := &stubPaymentService{enabled: true, err: errors.New("gateway down")}
		u := fixtureUser()

		var logs bytes.Buffer
		svc := NewSubscriptionService(repo, &stubUserRepository{user: u}, pay, zerolog.New(&logs))

		res, err := svc.Purchase(context.Background(), domain.PurchaseRequest{
			UserID:       u.ID.String(),
			SamplePlanID: plan.ID.String(),
			StartDate:    "2026-09-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentURL != "" {
			t.Errorf("payment url should be empty on gateway failure, got %q", res.PaymentURL)
		}
		if !strings.Contains(logs.String(), "payment link creation failed") {
			t.Errorf("gateway failure was not logged: %s", logs.String())
		}
	})
}

func TestAddSamplePlan(t *testing.T) {
	req := domain.AddSamplePlanRequest{
		PlanDuration:      "weekly",
		NumberOfDays:      7,
		MealsPerDay:       3,
		MealTypes:         []string{"breakfast", "lunch", "dinner"},
		DietaryPreference: []string{"veg"},
		Price:             2500,
	}

	t.Run("creates plan", func(t *testing.T) {
		svc := fixtureService(&stubSubscriptionRepository{}, &stubPaymentService{}, fixtureUser())

		res, err := svc.AddSamplePlan(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PlanDuration != "weekly" || len(res.MealTypes) != 3 {
			t.Errorf("unexpected response %+v", res)
		}
	})

	t.Run("rejects duplicate", func(t *testing.T) {
		repo := &stubSubscriptionRepository{existingPlan: weeklyPlan()}
		svc := fixtureService(repo, &stubPaymentService{}, fixtureUser())

		_, err := svc.AddSamplePlan(context.Background(), req)
		if !errors.Is(err, domain.ErrSamplePlanAlreadyExists) {
			t.Fatalf("error = %v, want ErrSamplePlanAlreadyExists", err)
		}
	})
}

func TestGetSamplePlanRejectsBadID(t *testing.T) {
	svc := fixtureService(&stubSubscriptionRepository{}, &stubPaymentService{}, fixtureUser())

	_, err := svc.GetSamplePlan(context.Background(), "not-a-uuid")
	if !errors.Is(err, domain.ErrParseUUID) {
		t.Fatalf("error = %v, want ErrParseUUID", err)
	}
}
