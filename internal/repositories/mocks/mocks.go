// Package mocks provides testify mocks for the repository interfaces.
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

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t mockTestingT) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

type ProductRepository struct {
	mock.Mock
}

func NewProductRepository(t mockTestingT) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) ListProducts(ctx context.Context, page, size int) ([]*models.Product, int, error) {
	args := m.Called(ctx, page, size)
	if products, ok := args.Get(0).([]*models.Product); ok {
		return products, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

type CategoryRepository struct {
	mock.Mock
}

func NewCategoryRepository(t mockTestingT) *CategoryRepository {
	m := &CategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *CategoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *CategoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if category, ok := args.Get(0).(*models.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CategoryRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]*models.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

type CartRepository struct {
	mock.Mock
}

func NewCartRepository(t mockTestingT) *CartRepository {
	m := &CartRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *CartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	args := m.Called(ctx, cart)

	return args.Error(0)
}

func (m *CartRepository) GetCartByCustomerID(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, customerID)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartRepository) UpdateCart(ctx context.Context, cart *models.Cart) error {
	args := m.Called(ctx, cart)

	return args.Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t mockTestingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Order, int, error) {
	args := m.Called(ctx, customerID, page, size)
	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *OrderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, id, status)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

type DepositRepository struct {
	mock.Mock
}

func NewDepositRepository(t mockTestingT) *DepositRepository {
	m := &DepositRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *DepositRepository) CreateDeposit(ctx context.Context, deposit *models.Deposit) error {
	args := m.Called(ctx, deposit)

	return args.Error(0)
}

func (m *DepositRepository) GetDepositByID(ctx context.Context, id uuid.UUID) (*models.Deposit, error) {
	args := m.Called(ctx, id)
	if deposit, ok := args.Get(0).(*models.Deposit); ok {
		return deposit, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *DepositRepository) ListDepositsByUser(ctx context.Context, userID uuid.UUID) ([]models.Deposit, error) {
	args := m.Called(ctx, userID)
	if deposits, ok := args.Get(0).([]models.Deposit); ok {
		return deposits, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *DepositRepository) UpdateDepositStatus(ctx context.Context, id uuid.UUID, status models.DepositStatus) (*models.Deposit, error) {
	args := m.Called(ctx, id, status)
	if deposit, ok := args.Get(0).(*models.Deposit); ok {
		return deposit, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *DepositRepository) GetBalance(ctx context.Context, userID uuid.UUID) (float64, error) {
	args := m.Called(ctx, userID)

	return args.Get(0).(float64), args.Error(1)
}

type LoyaltyRepository struct {
	mock.Mock
}

func NewLoyaltyRepository(t mockTestingT) *LoyaltyRepository {
	m := &LoyaltyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *LoyaltyRepository) GetAccount(ctx context.Context, userID uuid.UUID) (*models.LoyaltyAccount, error) {
	args := m.Called(ctx, userID)
	if account, ok := args.Get(0).(*models.LoyaltyAccount); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *LoyaltyRepository) AddPoints(ctx context.Context, userID uuid.UUID, points int) (*models.LoyaltyAccount, error) {
	args := m.Called(ctx, userID, points)
	if account, ok := args.Get(0).(*models.LoyaltyAccount); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

type RateLimitRepository struct {
	mock.Mock
}

func NewRateLimitRepository(t mockTestingT) *RateLimitRepository {
	m := &RateLimitRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *RateLimitRepository) CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error) {
	args := m.Called(ctx, username)

	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}
