package repository_test

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/solistore/digital-storefront/internal/models"
	repository "github.com/solistore/digital-storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLoyaltyRepoTest(t *testing.T) (repository.LoyaltyRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewLoyaltyRepo(db)
	require.NotNil(t, repo)

	return repo, mock
}

func TestLoyaltyRepository(t *testing.T) {
	repo, mock := setupLoyaltyRepoTest(t)
	ctx := t.Context()

	userID := uuid.New()
	now := time.Now()

	t.Run("Get Account", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`
		SELECT user_id, points, updated_at
		FROM loyalty_accounts
		WHERE user_id = $1
	`)

		t.Run("Success - Tier Derived From Points", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(userID).
				WillReturnRows(sqlmock.NewRows([]string{"user_id", "points", "updated_at"}).
					AddRow(userID, 2500, now))

			// Act
			account, err := repo.GetAccount(ctx, userID)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, 2500, account.Points)
			assert.Equal(t, models.TierGold, account.Tier)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - No Account", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(userID).
				WillReturnError(sql.ErrNoRows)

			// Act
			account, err := repo.GetAccount(ctx, userID)

			// Assert
			assert.Nil(t, account)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("Add Points", func(t *testing.T) {
		expectedSQL := `INSERT INTO loyalty_accounts`

		t.Run("Success - Upsert Accumulates", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(userID, 100).
				WillReturnRows(sqlmock.NewRows([]string{"user_id", "points", "updated_at"}).
					AddRow(userID, 600, now))

			// Act
			account, err := repo.AddPoints(ctx, userID, 100)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, 600, account.Points)
			assert.Equal(t, models.TierSilver, account.Tier)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
