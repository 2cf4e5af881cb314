package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/solistore/digital-storefront/internal/models"
	"github.com/solistore/digital-storefront/internal/utils"
)

type LoyaltyRepository interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (*models.LoyaltyAccount, error)
	AddPoints(ctx context.Context, userID uuid.UUID, points int) (*models.LoyaltyAccount, error)
}

type loyaltyRepository struct {
	DB *sql.DB
}

func NewLoyaltyRepo(db *sql.DB) LoyaltyRepository {
	return &loyaltyRepository{DB: db}
}

func (r *loyaltyRepository) GetAccount(ctx context.Context, userID uuid.UUID) (*models.LoyaltyAccount, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT user_id, points, updated_at
		FROM loyalty_accounts
		WHERE user_id = $1
	`

	account := &models.LoyaltyAccount{}

	err := r.DB.QueryRowContext(dbCtx, query, userID).Scan(&account.UserID, &account.Points, &account.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	account.Tier = models.TierForPoints(account.Points)

	return account, nil
}

// AddPoints upserts the account and returns the new balance. The tier
// is derived, never stored.
func (r *loyaltyRepository) AddPoints(ctx context.Context, userID uuid.UUID, points int) (*models.LoyaltyAccount, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO loyalty_accounts (user_id, points, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET points = loyalty_accounts.points + EXCLUDED.points, updated_at = NOW()
		RETURNING user_id, points, updated_at
	`

	account := &models.LoyaltyAccount{}

	err := r.DB.QueryRowContext(dbCtx, query, userID, points).Scan(&account.UserID, &account.Points, &account.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upserting loyalty account: %w", err)
	}

	account.Tier = models.TierForPoints(account.Points)

	return account, nil
}
