package repository_test

import (
	"errors"
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

func setupOrderRepoTest(t *testing.T) (repository.OrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewOrderRepo(db)
	require.NotNil(t, repo)

	return repo, mock
}

func sampleOrder(customerID uuid.UUID) *models.Order {
	orderID := uuid.New()

	return &models.Order{
		ID:             orderID,
		CustomerID:     customerID,
		Status:         models.OrderStatusPending,
		Subtotal:       100,
		DiscountPct:    10,
		DiscountAmount: 10,
		Total:          90,
		Currency:       "USD",
		DisplayTotal:   90,
		Items: []models.OrderItem{
			{ID: uuid.New(), OrderID: orderID, ProductID: uuid.New(), Name: "ACME Pro License", Quantity: 2, UnitPrice: 50},
		},
	}
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	customerID := uuid.New()
	now := time.Now()

	orderInsert := `INSERT INTO orders`
	itemInsert := `INSERT INTO order_items`

	t.Run("Success - Order And Items In One Transaction", func(t *testing.T) {
		// Arrange
		order := sampleOrder(customerID)
		item := order.Items[0]

		mock.ExpectBegin()
		mock.ExpectQuery(orderInsert).
			WithArgs(order.ID, order.CustomerID, order.Status, order.Subtotal, order.DiscountPct, order.DiscountAmount, order.Total, order.Currency, order.DisplayTotal, order.PaidFromBalance).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectQuery(itemInsert).
			WithArgs(item.ID, item.OrderID, item.ProductID, item.Name, item.Quantity, item.UnitPrice).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectCommit()

		// Act
		err := repo.CreateOrder(ctx, order)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, now, order.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Item Insert Rolls Back", func(t *testing.T) {
		// Arrange
		order := sampleOrder(customerID)
		item := order.Items[0]

		mock.ExpectBegin()
		mock.ExpectQuery(orderInsert).
			WithArgs(order.ID, order.CustomerID, order.Status, order.Subtotal, order.DiscountPct, order.DiscountAmount, order.Total, order.Currency, order.DisplayTotal, order.PaidFromBalance).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectQuery(itemInsert).
			WithArgs(item.ID, item.OrderID, item.ProductID, item.Name, item.Quantity, item.UnitPrice).
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		// Act
		err := repo.CreateOrder(ctx, order)

		// Assert
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_UpdateOrderStatus(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	orderID := uuid.New()
	customerID := uuid.New()
	now := time.Now()

	expectedSQL := regexp.QuoteMeta(`
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, customer_id, status, subtotal, discount_pct, discount_amount, total, currency, display_total, paid_from_balance, created_at, updated_at
	`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(expectedSQL).
			WithArgs(models.OrderStatusDelivered, orderID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "status", "subtotal", "discount_pct", "discount_amount", "total", "currency", "display_total", "paid_from_balance", "created_at", "updated_at"}).
				AddRow(orderID, customerID, "delivered", 100.0, 10.0, 10.0, 90.0, "USD", 90.0, false, now, now))

		// Act
		order, err := repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusDelivered)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusDelivered, order.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
