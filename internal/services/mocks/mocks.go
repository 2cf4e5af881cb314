// Package mocks provides testify mocks for the service interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/solistore/digital-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockTestingT interface {
	mock.TestingT
	Cleanup(func())
}

type MockUserService struct {
	mock.Mock
}

func NewMockUserService(t mockTestingT) *MockUserService {
	m := &MockUserService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*models.LoginResponse); ok {
		return resp, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func NewMockProductService(t mockTestingT) *MockProductService {
	m := &MockProductService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)
	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error) {
	args := m.Called(ctx, page, pageSize)
	if products, ok := args.Get(0).([]*models.Product); ok {
		return products, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

type MockCategoryService struct {
	mock.Mock
}

func NewMockCategoryService(t mockTestingT) *MockCategoryService {
	m := &MockCategoryService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	if category, ok := args.Get(0).(*models.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if category, ok := args.Get(0).(*models.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]*models.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

type MockCartService struct {
	mock.Mock
}

func NewMockCartService(t mockTestingT) *MockCartService {
	m := &MockCartService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartService) GetCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, customerID)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, customerID uuid.UUID, req *models.AddCartItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, customerID, req)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, customerID uuid.UUID, req *models.UpdateCartItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, customerID, req)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, customerID uuid.UUID, req *models.RemoveCartItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, customerID, req)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartService) ClearCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, customerID)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func NewMockOrderService(t mockTestingT) *MockOrderService {
	m := &MockOrderService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderService) CreateOrder(ctx context.Context, customerID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, customerID, req)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderService) PreviewOrder(ctx context.Context, customerID uuid.UUID, currency string) (*models.OrderSummary, error) {
	args := m.Called(ctx, customerID, currency)
	if summary, ok := args.Get(0).(*models.OrderSummary); ok {
		return summary, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderService) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Order, int, error) {
	args := m.Called(ctx, customerID, page, size)
	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *MockOrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, id, status)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

type MockDepositService struct {
	mock.Mock
}

func NewMockDepositService(t mockTestingT) *MockDepositService {
	m := &MockDepositService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDepositService) CreateDeposit(ctx context.Context, userID uuid.UUID, req *models.CreateDepositRequest) (*models.Deposit, error) {
	args := m.Called(ctx, userID, req)
	if deposit, ok := args.Get(0).(*models.Deposit); ok {
		return deposit, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDepositService) GetDeposit(ctx context.Context, id uuid.UUID) (*models.Deposit, error) {
	args := m.Called(ctx, id)
	if deposit, ok := args.Get(0).(*models.Deposit); ok {
		return deposit, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDepositService) ListDeposits(ctx context.Context, userID uuid.UUID) ([]models.Deposit, error) {
	args := m.Called(ctx, userID)
	if deposits, ok := args.Get(0).([]models.Deposit); ok {
		return deposits, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDepositService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.DepositStatus) (*models.Deposit, error) {
	args := m.Called(ctx, id, status)
	if deposit, ok := args.Get(0).(*models.Deposit); ok {
		return deposit, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDepositService) GetBalance(ctx context.Context, userID uuid.UUID) (*models.BalanceResponse, error) {
	args := m.Called(ctx, userID)
	if balance, ok := args.Get(0).(*models.BalanceResponse); ok {
		return balance, args.Error(1)
	}

	return nil, args.Error(1)
}

type MockLoyaltyService struct {
	mock.Mock
}

func NewMockLoyaltyService(t mockTestingT) *MockLoyaltyService {
	m := &MockLoyaltyService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLoyaltyService) GetAccount(ctx context.Context, userID uuid.UUID) (*models.LoyaltyAccount, error) {
	args := m.Called(ctx, userID)
	if account, ok := args.Get(0).(*models.LoyaltyAccount); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLoyaltyService) DiscountPercentage(ctx context.Context, userID uuid.UUID) (float64, error) {
	args := m.Called(ctx, userID)

	return args.Get(0).(float64), args.Error(1)
}

func (m *MockLoyaltyService) AwardPoints(ctx context.Context, userID uuid.UUID, points int) (*models.LoyaltyAccount, error) {
	args := m.Called(ctx, userID, points)
	if account, ok := args.Get(0).(*models.LoyaltyAccount); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}
