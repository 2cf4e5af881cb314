package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/solistore/digital-storefront/internal/errors"
	"github.com/solistore/digital-storefront/internal/models"
	repository "github.com/solistore/digital-storefront/internal/repositories"
)

type DepositService interface {
	CreateDeposit(ctx context.Context, userID uuid.UUID, req *models.CreateDepositRequest) (*models.Deposit, error)
	GetDeposit(ctx context.Context, id uuid.UUID) (*models.Deposit, error)
	ListDeposits(ctx context.Context, userID uuid.UUID) ([]models.Deposit, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.DepositStatus) (*models.Deposit, error)
	GetBalance(ctx context.Context, userID uuid.UUID) (*models.BalanceResponse, error)
}

type depositService struct {
	repo repository.DepositRepository
}

func NewDepositService(repo repository.DepositRepository) DepositService {
	return &depositService{repo: repo}
}

// CreateDeposit records a pending top-up. Confirmation comes later
// through the back-office once the external payment is sighted.
func (s *depositService) CreateDeposit(ctx context.Context, userID uuid.UUID, req *models.CreateDepositRequest) (*models.Deposit, error) {

	deposit := &models.Deposit{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    req.Amount,
		Method:    req.Method,
		Status:    models.DepositStatusPending,
		Reference: req.Reference,
	}

	if err := s.repo.CreateDeposit(ctx, deposit); err != nil {
		return nil, errors.DatabaseError("Failed to create deposit").WithError(err)
	}

	return deposit, nil
}

func (s *depositService) GetDeposit(ctx context.Context, id uuid.UUID) (*models.Deposit, error) {

	deposit, err := s.repo.GetDepositByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Deposit not found").WithError(err)
	}

	return deposit, nil
}

func (s *depositService) ListDeposits(ctx context.Context, userID uuid.UUID) ([]models.Deposit, error) {

	deposits, err := s.repo.ListDepositsByUser(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch deposits").WithError(err)
	}

	return deposits, nil
}

func (s *depositService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.DepositStatus) (*models.Deposit, error) {

	if _, err := s.repo.GetDepositByID(ctx, id); err != nil {
		return nil, errors.NotFoundError("Deposit not found").WithError(err)
	}

	deposit, err := s.repo.UpdateDepositStatus(ctx, id, status)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update deposit status").WithError(err)
	}

	return deposit, nil
}

func (s *depositService) GetBalance(ctx context.Context, userID uuid.UUID) (*models.BalanceResponse, error) {

	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to compute balance").WithError(err)
	}

	return &models.BalanceResponse{UserID: userID, Balance: balance}, nil
}
