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

func setupDepositRepoTest(t *testing.T) (repository.DepositRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewDepositRepo(db)
	require.NotNil(t, repo)

	return repo, mock
}

func TestDepositRepository(t *testing.T) {
	repo, mock := setupDepositRepoTest(t)
	ctx := t.Context()

	userID := uuid.New()
	depositID := uuid.New()
	now := time.Now()

	depositColumns := []string{"id", "user_id", "amount", "method", "status", "reference", "created_at", "updated_at"}

	t.Run("Create Deposit", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`
		INSERT INTO deposits (id, user_id, amount, method, status, reference)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			deposit := &models.Deposit{
				ID:        depositID,
				UserID:    userID,
				Amount:    100,
				Method:    "bank_transfer",
				Status:    models.DepositStatusPending,
				Reference: "TRX-1042",
			}
			mock.ExpectQuery(expectedSQL).
				WithArgs(deposit.ID, deposit.UserID, deposit.Amount, deposit.Method, deposit.Status, deposit.Reference).
				WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

			// Act
			err := repo.CreateDeposit(ctx, deposit)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, now, deposit.CreatedAt)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("Update Deposit Status", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`
		UPDATE deposits
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, amount, method, status, reference, created_at, updated_at
	`)

		t.Run("Success - Confirmation", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(models.DepositStatusConfirmed, depositID).
				WillReturnRows(sqlmock.NewRows(depositColumns).
					AddRow(depositID, userID, 100.0, "bank_transfer", "confirmed", "TRX-1042", now, now))

			// Act
			deposit, err := repo.UpdateDepositStatus(ctx, depositID, models.DepositStatusConfirmed)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, models.DepositStatusConfirmed, deposit.Status)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Unknown Deposit", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(models.DepositStatusRejected, depositID).
				WillReturnError(sql.ErrNoRows)

			// Act
			deposit, err := repo.UpdateDepositStatus(ctx, depositID, models.DepositStatusRejected)

			// Assert
			assert.Nil(t, deposit)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("List Deposits By User", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`
		SELECT id, user_id, amount, method, status, reference, created_at, updated_at
		FROM deposits
		WHERE user_id = $1
		ORDER BY created_at DESC
	`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(userID).
				WillReturnRows(sqlmock.NewRows(depositColumns).
					AddRow(uuid.New(), userID, 100.0, "bank_transfer", "confirmed", "TRX-1", now, now).
					AddRow(uuid.New(), userID, 25.0, "paypal", "pending", "TRX-2", now, now))

			// Act
			deposits, err := repo.ListDepositsByUser(ctx, userID)

			// Assert
			require.NoError(t, err)
			assert.Len(t, deposits, 2)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("Get Balance", func(t *testing.T) {
		expectedSQL := `SELECT COALESCE`

		t.Run("Success - Confirmed Minus Spent", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(userID).
				WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(132.5))

			// Act
			balance, err := repo.GetBalance(ctx, userID)

			// Assert
			require.NoError(t, err)
			assert.InDelta(t, 132.5, balance, 1e-9)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
