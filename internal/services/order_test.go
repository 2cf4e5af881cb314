package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/solistore/digital-storefront/internal/cart"
	appErrors "github.com/solistore/digital-storefront/internal/errors"
	"github.com/solistore/digital-storefront/internal/models"
	ratesMocks "github.com/solistore/digital-storefront/internal/rates/mocks"
	repoMocks "github.com/solistore/digital-storefront/internal/repositories/mocks"
	service "github.com/solistore/digital-storefront/internal/services"
	serviceMocks "github.com/solistore/digital-storefront/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type orderServiceFixture struct {
	service     service.OrderService
	orderRepo   *repoMocks.OrderRepository
	cartSvc     *serviceMocks.MockCartService
	productRepo *repoMocks.ProductRepository
	depositRepo *repoMocks.DepositRepository
	loyalty     *serviceMocks.MockLoyaltyService
	rates       *ratesMocks.Provider
}

func setupOrderServiceTest(t *testing.T) *orderServiceFixture {
	f := &orderServiceFixture{
		orderRepo:   repoMocks.NewOrderRepository(t),
		cartSvc:     serviceMocks.NewMockCartService(t),
		productRepo: repoMocks.NewProductRepository(t),
		depositRepo: repoMocks.NewDepositRepository(t),
		loyalty:     serviceMocks.NewMockLoyaltyService(t),
		rates:       ratesMocks.NewProvider(t),
	}
	f.service = service.NewOrderService(f.orderRepo, f.cartSvc, f.productRepo, f.depositRepo, f.loyalty, f.rates, "USD")

	return f
}

func cartWithLine(customerID, productID uuid.UUID, quantity int, unitPrice float64) *models.Cart {
	state, _ := cart.Apply(cart.Empty(), cart.AddItem{
		Item:     cart.LineItem{ID: productID.String(), Name: "ACME Pro License", UnitPrice: unitPrice},
		Quantity: quantity,
	})

	return &models.Cart{ID: uuid.New(), UserID: customerID, State: state}
}

func TestPreviewOrder(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()

	t.Run("Success - Discount And Conversion Applied", func(t *testing.T) {
		// Arrange
		f := setupOrderServiceTest(t)
		f.cartSvc.On("GetCart", ctx, customerID).Return(cartWithLine(customerID, productID, 2, 50), nil).Once()
		f.loyalty.On("DiscountPercentage", ctx, customerID).Return(10.0, nil).Once()
		f.rates.On("GetRate", ctx, "EUR").Return(0.9, nil).Once()

		// Act
		summary, err := f.service.PreviewOrder(ctx, customerID, "EUR")

		// Assert
		assert.NoError(t, err)
		assert.InDelta(t, 100, summary.Subtotal, 1e-9)
		assert.InDelta(t, 10, summary.Discount.Amount, 1e-9)
		assert.InDelta(t, 90, summary.Discount.FinalAmount, 1e-9)
		assert.Equal(t, "EUR", summary.Currency)
		assert.InDelta(t, 81, summary.DisplayTotal, 1e-9)
	})

	t.Run("Success - Empty Currency Falls Back To Base", func(t *testing.T) {
		// Arrange
		f := setupOrderServiceTest(t)
		f.cartSvc.On("GetCart", ctx, customerID).Return(cartWithLine(customerID, productID, 1, 20), nil).Once()
		f.loyalty.On("DiscountPercentage", ctx, customerID).Return(0.0, nil).Once()
		f.rates.On("GetRate", ctx, "USD").Return(1.0, nil).Once()

		// Act
		summary, err := f.service.PreviewOrder(ctx, customerID, "")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "USD", summary.Currency)
		assert.InDelta(t, 20, summary.DisplayTotal, 1e-9)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		// Arrange
		f := setupOrderServiceTest(t)
		empty := &models.Cart{ID: uuid.New(), UserID: customerID, State: cart.Empty()}
		f.cartSvc.On("GetCart", ctx, customerID).Return(empty, nil).Once()

		// Act
		summary, err := f.service.PreviewOrder(ctx, customerID, "USD")

		// Assert
		assert.Nil(t, summary)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Failure - Unknown Currency", func(t *testing.T) {
		// Arrange
		f := setupOrderServiceTest(t)
		f.cartSvc.On("GetCart", ctx, customerID).Return(cartWithLine(customerID, productID, 1, 20), nil).Once()
		f.loyalty.On("DiscountPercentage", ctx, customerID).Return(0.0, nil).Once()
		f.rates.On("GetRate", ctx, "XXX").Return(0.0, appErrors.BadRequestError("Unsupported currency: XXX")).Once()

		// Act
		summary, err := f.service.PreviewOrder(ctx, customerID, "XXX")

		// Assert
		assert.Nil(t, summary)
		assert.Error(t, err)
	})
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()

	activeProduct := &models.Product{
		ID:     productID,
		Name:   "ACME Pro License",
		Price:  50,
		Stock:  10,
		Status: models.ProductStatusActive,
	}

	t.Run("Success - Pending Order", func(t *testing.T) {
		// Arrange
		f := setupOrderServiceTest(t)
		f.cartSvc.On("GetCart", ctx, customerID).Return(cartWithLine(customerID, productID, 2, 50), nil).Once()
		f.productRepo.On("GetProductByID", ctx, productID).Return(activeProduct, nil).Once()
		f.loyalty.On("DiscountPercentage", ctx, customerID).Return(0.0, nil).Once()
		f.rates.On("GetRate", ctx, "USD").Return(1.0, nil).Once()
		f.orderRepo.On("CreateOrder", ctx, mock.MatchedBy(func(o *models.Order) bool {
			return o.CustomerID == customerID &&
				o.Status == models.OrderStatusPending &&
				len(o.Items) == 1 &&
				o.Items[0].OrderID == o.ID &&
				o.Total == 100
		})).Return(nil).Once()
		clearedCart := &models.Cart{ID: uuid.New(), UserID: customerID, State: cart.Empty()}
		f.cartSvc.On("ClearCart", ctx, customerID).Return(clearedCart, nil).Once()

		// Act
		order, err := f.service.CreateOrder(ctx, customerID, &models.CreateOrderRequest{Currency: "USD"})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.False(t, order.PaidFromBalance)
		assert.InDelta(t, 100, order.Total, 1e-9)
	})

	t.Run("Success - Paid From Balance Awards Points", func(t *testing.T) {
		// Arrange
		f := setupOrderServiceTest(t)
		f.cartSvc.On("GetCart", ctx, customerID).Return(cartWithLine(customerID, productID, 2, 50), nil).Once()
		f.productRepo.On("GetProductByID", ctx, productID).Return(activeProduct, nil).Once()
		f.loyalty.On("DiscountPercentage", ctx, customerID).Return(5.0, nil).Once()
		f.rates.On("GetRate", ctx, "USD").Return(1.0, nil).Once()
		f.depositRepo.On("GetBalance", ctx, customerID).Return(200.0, nil).Once()
		f.orderRepo.On("CreateOrder", ctx, mock.MatchedBy(func(o *models.Order) bool {
			return o.Status == models.OrderStatusPaid && o.PaidFromBalance
		})).Return(nil).Once()
		f.cartSvc.On("ClearCart", ctx, customerID).Return(&models.Cart{State: cart.Empty()}, nil).Once()
		account := &models.LoyaltyAccount{UserID: customerID, Points: 95}
		f.loyalty.On("AwardPoints", ctx, customerID, 95).Return(account, nil).Once()

		// Act
		order, err := f.service.CreateOrder(ctx, customerID, &models.CreateOrderRequest{Currency: "USD", PayFromBalance: true})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusPaid, order.Status)
		assert.InDelta(t, 95, order.Total, 1e-9)
	})

	t.Run("Failure - Insufficient Balance", func(t *testing.T) {
		// Arrange
		f := setupOrderServiceTest(t)
		f.cartSvc.On("GetCart", ctx, customerID).Return(cartWithLine(customerID, productID, 2, 50), nil).Once()
		f.productRepo.On("GetProductByID", ctx, productID).Return(activeProduct, nil).Once()
		f.loyalty.On("DiscountPercentage", ctx, customerID).Return(0.0, nil).Once()
		f.rates.On("GetRate", ctx, "USD").Return(1.0, nil).Once()
		f.depositRepo.On("GetBalance", ctx, customerID).Return(40.0, nil).Once()

		// Act
		order, err := f.service.CreateOrder(ctx, customerID, &models.CreateOrderRequest{Currency: "USD", PayFromBalance: true})

		// Assert
		assert.Nil(t, order)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeInsufficientFunds, appErr.Code)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		// Arrange
		f := setupOrderServiceTest(t)
		empty := &models.Cart{ID: uuid.New(), UserID: customerID, State: cart.Empty()}
		f.cartSvc.On("GetCart", ctx, customerID).Return(empty, nil).Once()

		// Act
		order, err := f.service.CreateOrder(ctx, customerID, &models.CreateOrderRequest{Currency: "USD"})

		// Assert
		assert.Nil(t, order)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Failure - Product Became Inactive", func(t *testing.T) {
		// Arrange
		f := setupOrderServiceTest(t)
		retired := &models.Product{ID: productID, Name: "Retired", Price: 50, Stock: 10, Status: models.ProductStatusInactive}
		f.cartSvc.On("GetCart", ctx, customerID).Return(cartWithLine(customerID, productID, 1, 50), nil).Once()
		f.productRepo.On("GetProductByID", ctx, productID).Return(retired, nil).Once()

		// Act
		order, err := f.service.CreateOrder(ctx, customerID, &models.CreateOrderRequest{Currency: "USD"})

		// Assert
		assert.Nil(t, order)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		// Arrange
		f := setupOrderServiceTest(t)
		scarce := &models.Product{ID: productID, Name: "Scarce", Price: 50, Stock: 1, Status: models.ProductStatusActive}
		f.cartSvc.On("GetCart", ctx, customerID).Return(cartWithLine(customerID, productID, 3, 50), nil).Once()
		f.productRepo.On("GetProductByID", ctx, productID).Return(scarce, nil).Once()

		// Act
		order, err := f.service.CreateOrder(ctx, customerID, &models.CreateOrderRequest{Currency: "USD"})

		// Assert
		assert.Nil(t, order)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Failure - Persist Error", func(t *testing.T) {
		// Arrange
		f := setupOrderServiceTest(t)
		dbError := errors.New("insert failed")
		f.cartSvc.On("GetCart", ctx, customerID).Return(cartWithLine(customerID, productID, 1, 50), nil).Once()
		f.productRepo.On("GetProductByID", ctx, productID).Return(activeProduct, nil).Once()
		f.loyalty.On("DiscountPercentage", ctx, customerID).Return(0.0, nil).Once()
		f.rates.On("GetRate", ctx, "USD").Return(1.0, nil).Once()
		f.orderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*models.Order")).Return(dbError).Once()

		// Act
		order, err := f.service.CreateOrder(ctx, customerID, &models.CreateOrderRequest{Currency: "USD"})

		// Assert
		assert.Nil(t, order)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		assert.ErrorIs(t, err, dbError)
	})
}

func TestListOrdersByCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("Success - Pagination Clamped", func(t *testing.T) {
		// Arrange
		f := setupOrderServiceTest(t)
		orders := []models.Order{{ID: uuid.New(), CustomerID: customerID}}
		f.orderRepo.On("ListOrdersByCustomer", ctx, customerID, 1, 10).Return(orders, 1, nil).Once()

		// Act
		result, total, err := f.service.ListOrdersByCustomer(ctx, customerID, 0, 500)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, result, 1)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		f := setupOrderServiceTest(t)
		existing := &models.Order{ID: orderID, Status: models.OrderStatusPending}
		updated := &models.Order{ID: orderID, Status: models.OrderStatusDelivered}
		f.orderRepo.On("GetOrderByID", ctx, orderID).Return(existing, nil).Once()
		f.orderRepo.On("UpdateOrderStatus", ctx, orderID, models.OrderStatusDelivered).Return(updated, nil).Once()

		// Act
		order, err := f.service.UpdateOrderStatus(ctx, orderID, models.OrderStatusDelivered)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusDelivered, order.Status)
	})

	t.Run("Failure - Order Not Found", func(t *testing.T) {
		// Arrange
		f := setupOrderServiceTest(t)
		f.orderRepo.On("GetOrderByID", ctx, orderID).Return(nil, errors.New("no rows")).Once()

		// Act
		order, err := f.service.UpdateOrderStatus(ctx, orderID, models.OrderStatusCancelled)

		// Assert
		assert.Nil(t, order)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}
