package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"newshub-api/checkout"
	"newshub-api/models"
	"newshub-api/repositories"

	"gorm.io/gorm"
)

// CheckoutProvider is the slice of the checkout client the payment service
// needs. *checkout.Client satisfies it.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, req checkout.CreateSessionRequest) (*checkout.Session, error)
	GetSession(ctx context.Context, sessionID string) (*checkout.Session, error)
}

type PaymentService interface {
	ListPlans() ([]models.Plan, error)
	CreateIntent(ctx context.Context, email string, planID uint) (*checkout.Session, error)
	CompleteSession(ctx context.Context, sessionID string) (*models.Payment, error)
}

type paymentService struct {
	planRepo    repositories.PlanRepository
	paymentRepo repositories.PaymentRepository
	userRepo    repositories.UserRepository
	provider    CheckoutProvider
	successURL  string
	cancelURL   string
	log         *slog.Logger
}

func NewPaymentService(
	planRepo repositories.PlanRepository,
	paymentRepo repositories.PaymentRepository,
	userRepo repositories.UserRepository,
	provider CheckoutProvider,
	successURL, cancelURL string,
	log *slog.Logger,
) PaymentService {
	return &paymentService{
		planRepo:    planRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		provider:    provider,
		successURL:  successURL,
		cancelURL:   cancelURL,
		log:         log,
	}
}

func (s *paymentService) ListPlans() ([]models.Plan, error) {
	return s.planRepo.GetAll()
}

// CreateIntent opens a provider checkout session for the plan. The granted
// duration travels in the session metadata and comes back on completion.
func (s *paymentService) CreateIntent(ctx context.Context, email string, planID uint) (*checkout.Session, error) {
	plan, err := s.planRepo.GetByID(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	minutes := plan.DurationMinutes()

	session, err := s.provider.CreateSession(ctx, checkout.CreateSessionRequest{
		Amount:        plan.Price,
		Currency:      "usd",
		CustomerEmail: email,
		SuccessURL:    s.successURL,
		CancelURL:     s.cancelURL,
		Metadata: map[string]string{
			"email":     email,
			"plan_id":   strconv.FormatUint(uint64(plan.ID), 10),
			"plan_name": plan.Name,
			"duration":  strconv.Itoa(minutes),
		},
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("checkout session created",
		slog.String("session_id", session.ID),
		slog.String("email", email),
		slog.Uint64("plan_id", uint64(plan.ID)),
		slog.Int("duration_minutes", minutes),
	)

	return session, nil
}

// CompleteSession records the payment and extends the user's subscription
// window once the provider reports the session as paid. The new window
// replaces any existing one; remaining time is not stacked. Completing the
// same session twice returns the already-recorded payment without granting
// again.
func (s *paymentService) CompleteSession(ctx context.Context, sessionID string) (*models.Payment, error) {
	if existing, err := s.paymentRepo.GetBySession(sessionID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	session, err := s.provider.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.PaymentStatus != checkout.PaymentStatusPaid {
		return nil, models.ErrPaymentIncomplete
	}

	email := session.Metadata["email"]
	if email == "" {
		email = session.CustomerEmail
	}

	minutes, _ := strconv.Atoi(session.Metadata["duration"])
	planID, _ := strconv.ParseUint(session.Metadata["plan_id"], 10, 64)

	payment := &models.Payment{
		Email:           email,
		SessionID:       session.ID,
		PlanID:          uint(planID),
		PlanName:        session.Metadata["plan_name"],
		DurationMinutes: minutes,
		Amount:          session.AmountTotal,
		Status:          session.PaymentStatus,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	end := time.Now().Add(time.Duration(minutes) * time.Minute)
	if err := s.userRepo.ExtendSubscription(email, end); err != nil {
		return nil, err
	}

	s.log.Info("subscription extended",
		slog.String("session_id", session.ID),
		slog.String("email", email),
		slog.Time("subscription_end", end),
	)

	return payment, nil
}
