package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/solistore/digital-storefront/internal/models"
	"github.com/solistore/digital-storefront/internal/utils"
)

type DepositRepository interface {
	CreateDeposit(ctx context.Context, deposit *models.Deposit) error
	GetDepositByID(ctx context.Context, id uuid.UUID) (*models.Deposit, error)
	ListDepositsByUser(ctx context.Context, userID uuid.UUID) ([]models.Deposit, error)
	UpdateDepositStatus(ctx context.Context, id uuid.UUID, status models.DepositStatus) (*models.Deposit, error)
	GetBalance(ctx context.Context, userID uuid.UUID) (float64, error)
}

type depositRepository struct {
	DB *sql.DB
}

func NewDepositRepo(db *sql.DB) DepositRepository {
	return &depositRepository{DB: db}
}

func (r *depositRepository) CreateDeposit(ctx context.Context, deposit *models.Deposit) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO deposits (id, user_id, amount, method, status, reference)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, deposit.ID, deposit.UserID, deposit.Amount, deposit.Method, deposit.Status, deposit.Reference).Scan(&deposit.CreatedAt, &deposit.UpdatedAt)
}

func (r *depositRepository) GetDepositByID(ctx context.Context, id uuid.UUID) (*models.Deposit, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, amount, method, status, reference, created_at, updated_at
		FROM deposits
		WHERE id = $1
	`

	deposit := &models.Deposit{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&deposit.ID, &deposit.UserID, &deposit.Amount, &deposit.Method, &deposit.Status, &deposit.Reference, &deposit.CreatedAt, &deposit.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return deposit, nil
}

func (r *depositRepository) ListDepositsByUser(ctx context.Context, userID uuid.UUID) ([]models.Deposit, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, amount, method, status, reference, created_at, updated_at
		FROM deposits
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}
	defer rows.Close()

	var deposits []models.Deposit

	for rows.Next() {
		var deposit models.Deposit

		if err := rows.Scan(&deposit.ID, &deposit.UserID, &deposit.Amount, &deposit.Method, &deposit.Status, &deposit.Reference, &deposit.CreatedAt, &deposit.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning deposit row: %w", err)
		}

		deposits = append(deposits, deposit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deposit rows: %w", err)
	}

	return deposits, nil
}

func (r *depositRepository) UpdateDepositStatus(ctx context.Context, id uuid.UUID, status models.DepositStatus) (*models.Deposit, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE deposits
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, amount, method, status, reference, created_at, updated_at
	`

	deposit := &models.Deposit{}

	err := r.DB.QueryRowContext(dbCtx, query, status, id).Scan(&deposit.ID, &deposit.UserID, &deposit.Amount, &deposit.Method, &deposit.Status, &deposit.Reference, &deposit.CreatedAt, &deposit.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return deposit, nil
}

// GetBalance derives the spendable balance: confirmed deposits minus
// everything already spent on balance-paid orders.
func (r *depositRepository) GetBalance(ctx context.Context, userID uuid.UUID) (float64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT COALESCE((SELECT SUM(amount) FROM deposits WHERE user_id = $1 AND status = 'confirmed'), 0)
		     - COALESCE((SELECT SUM(total) FROM orders WHERE customer_id = $1 AND paid_from_balance = TRUE AND status <> 'cancelled'), 0)
	`

	var balance float64

	if err := r.DB.QueryRowContext(dbCtx, query, userID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("querying balance: %w", err)
	}

	return balance, nil
}
