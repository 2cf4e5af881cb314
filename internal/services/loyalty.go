package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	appErrors "github.com/solistore/digital-storefront/internal/errors"
	"github.com/solistore/digital-storefront/internal/models"
	repository "github.com/solistore/digital-storefront/internal/repositories"
)

type LoyaltyService interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (*models.LoyaltyAccount, error)
	DiscountPercentage(ctx context.Context, userID uuid.UUID) (float64, error)
	AwardPoints(ctx context.Context, userID uuid.UUID, points int) (*models.LoyaltyAccount, error)
}

type loyaltyService struct {
	repo repository.LoyaltyRepository
}

func NewLoyaltyService(repo repository.LoyaltyRepository) LoyaltyService {
	return &loyaltyService{repo: repo}
}

// GetAccount returns the customer's loyalty account. A customer who
// has never earned points gets a zero-point bronze account, not an
// error.
func (s *loyaltyService) GetAccount(ctx context.Context, userID uuid.UUID) (*models.LoyaltyAccount, error) {

	account, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.LoyaltyAccount{
				UserID:    userID,
				Points:    0,
				Tier:      models.TierBronze,
				UpdatedAt: time.Now(),
			}, nil
		}

		return nil, appErrors.DatabaseError("Failed to retrieve loyalty account").WithError(err)
	}

	return account, nil
}

// DiscountPercentage resolves the percentage checkout feeds into the
// pricing engine.
func (s *loyaltyService) DiscountPercentage(ctx context.Context, userID uuid.UUID) (float64, error) {

	account, err := s.GetAccount(ctx, userID)
	if err != nil {
		return 0, err
	}

	return account.Tier.DiscountPercentage(), nil
}

func (s *loyaltyService) AwardPoints(ctx context.Context, userID uuid.UUID, points int) (*models.LoyaltyAccount, error) {

	if points < 0 {
		return nil, appErrors.ValidationError("Points to award must not be negative")
	}

	account, err := s.repo.AddPoints(ctx, userID, points)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to award loyalty points").WithError(err)
	}

	return account, nil
}
