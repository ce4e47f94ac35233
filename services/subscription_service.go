package services

import (
	"errors"
	"time"

	"newshub-api/models"
	"newshub-api/repositories"

	"gorm.io/gorm"
)

// SubscriptionService answers whether a user currently holds a valid
// subscription, lazily expiring stale windows as it reads them.
type SubscriptionService interface {
	Check(email string) error
	Status(email string) (*models.SubscriptionStatusResponse, error)
}

type subscriptionService struct {
	userRepo repositories.UserRepository
}

func NewSubscriptionService(userRepo repositories.UserRepository) SubscriptionService {
	return &subscriptionService{userRepo: userRepo}
}

// Check returns nil only for a user holding a valid, non-expired
// subscription. When it observes an expired-but-flagged user it clears the
// flag and expiry first, then still denies: no request is granted access on
// the same pass that detected the expiry.
func (s *subscriptionService) Check(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrForbidden
		}
		return err
	}

	if !user.HasSubscription {
		return models.ErrForbidden
	}

	if user.SubscriptionExpired(time.Now()) {
		if err := s.userRepo.ClearSubscription(email); err != nil {
			return err
		}
		return models.ErrSubscriptionExpired
	}

	return nil
}

// Status reports the user's subscription window, applying the same lazy
// expiry as Check before answering.
func (s *subscriptionService) Status(email string) (*models.SubscriptionStatusResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if user.SubscriptionExpired(time.Now()) {
		if err := s.userRepo.ClearSubscription(email); err != nil {
			return nil, err
		}
		return &models.SubscriptionStatusResponse{HasSubscription: false}, nil
	}

	resp := &models.SubscriptionStatusResponse{HasSubscription: user.HasSubscription}
	if user.SubscriptionEnd != nil {
		resp.SubscriptionEnd = user.SubscriptionEnd.Format(time.RFC3339)
	}
	return resp, nil
}
