package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/solistore/digital-storefront/internal/cart"
	"github.com/solistore/digital-storefront/internal/errors"
	"github.com/solistore/digital-storefront/internal/metrics"
	"github.com/solistore/digital-storefront/internal/models"
	"github.com/solistore/digital-storefront/internal/pricing"
	"github.com/solistore/digital-storefront/internal/rates"
	repository "github.com/solistore/digital-storefront/internal/repositories"
)

type OrderService interface {
	CreateOrder(ctx context.Context, customerID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error)
	PreviewOrder(ctx context.Context, customerID uuid.UUID, currency string) (*models.OrderSummary, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	cartSvc     CartService
	productRepo repository.ProductRepository
	depositRepo repository.DepositRepository
	loyalty     LoyaltyService
	rates       rates.Provider
	baseCur     string
}

func NewOrderService(orderRepo repository.OrderRepository, cartSvc CartService, productRepo repository.ProductRepository, depositRepo repository.DepositRepository, loyalty LoyaltyService, rateProvider rates.Provider, baseCurrency string) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		cartSvc:     cartSvc,
		productRepo: productRepo,
		depositRepo: depositRepo,
		loyalty:     loyalty,
		rates:       rateProvider,
		baseCur:     baseCurrency,
	}
}

// price runs the checkout pricing pipeline over a cart subtotal: the
// loyalty discount first, then conversion into the display currency.
func (s *orderService) price(ctx context.Context, customerID uuid.UUID, subtotal float64, currency string) (*models.OrderSummary, error) {

	percentage, err := s.loyalty.DiscountPercentage(ctx, customerID)
	if err != nil {
		return nil, err
	}

	discount, err := pricing.ApplyPercentageDiscount(subtotal, percentage)
	if err != nil {
		return nil, err
	}

	if currency == "" {
		currency = s.baseCur
	}

	rate, err := s.rates.GetRate(ctx, currency)
	if err != nil {
		return nil, err
	}

	return &models.OrderSummary{
		Subtotal:     subtotal,
		Discount:     discount,
		Currency:     currency,
		DisplayTotal: pricing.Convert(discount.FinalAmount, rate),
	}, nil
}

// PreviewOrder prices the current cart without committing anything.
func (s *orderService) PreviewOrder(ctx context.Context, customerID uuid.UUID, currency string) (*models.OrderSummary, error) {

	stored, err := s.cartSvc.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if len(stored.State.Items) == 0 {
		return nil, errors.BadRequestError("Cannot price an empty cart")
	}

	return s.price(ctx, customerID, stored.State.TotalPrice, currency)
}

func (s *orderService) CreateOrder(ctx context.Context, customerID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error) {

	stored, err := s.cartSvc.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if len(stored.State.Items) == 0 {
		return nil, errors.BadRequestError("Cannot create order with empty cart")
	}

	// Recheck every product against the live catalog before charging.
	for _, line := range stored.State.Items {

		productID, err := uuid.Parse(line.ID)
		if err != nil {
			return nil, errors.InternalError("Corrupt cart line item id").WithDetail(line.ID)
		}

		product, err := s.productRepo.GetProductByID(ctx, productID)
		if err != nil {
			return nil, errors.NotFoundError("Product no longer exists: " + line.ID).WithError(err)
		}

		if product.Status != models.ProductStatusActive {
			return nil, errors.BadRequestError("Product is no longer available: " + product.Name)
		}

		if product.Stock < line.Quantity {
			return nil, errors.BadRequestError("Insufficient stock for product: " + product.Name)
		}
	}

	summary, err := s.price(ctx, customerID, stored.State.TotalPrice, req.Currency)
	if err != nil {
		return nil, err
	}

	status := models.OrderStatusPending

	if req.PayFromBalance {

		balance, err := s.depositRepo.GetBalance(ctx, customerID)
		if err != nil {
			return nil, errors.DatabaseError("Failed to compute balance").WithError(err)
		}

		if balance < summary.Discount.FinalAmount {
			return nil, errors.InsufficientFundsError("Account balance does not cover the order total")
		}

		status = models.OrderStatusPaid
	}

	order := &models.Order{
		ID:              uuid.New(),
		CustomerID:      customerID,
		Status:          status,
		Subtotal:        summary.Subtotal,
		DiscountPct:     summary.Discount.Percentage,
		DiscountAmount:  summary.Discount.Amount,
		Total:           summary.Discount.FinalAmount,
		Currency:        summary.Currency,
		DisplayTotal:    summary.DisplayTotal,
		PaidFromBalance: req.PayFromBalance,
		Items:           orderItems(stored.State.Items),
	}

	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	metrics.RecordOrderCreated(string(order.Status))

	// Completing an order resets the cart and, for paid orders, earns
	// one point per whole unit of the final amount.
	if _, err := s.cartSvc.ClearCart(ctx, customerID); err != nil {
		return nil, err
	}

	if order.Status == models.OrderStatusPaid {
		if _, err := s.loyalty.AwardPoints(ctx, customerID, int(math.Floor(order.Total))); err != nil {
			return nil, err
		}
	}

	return order, nil
}

func orderItems(lines []cart.LineItem) []models.OrderItem {

	items := make([]models.OrderItem, 0, len(lines))

	for _, line := range lines {

		// Validated against the catalog above.
		productID, _ := uuid.Parse(line.ID)

		items = append(items, models.OrderItem{
			ID:        uuid.New(),
			ProductID: productID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	return items
}

func (s *orderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Order, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 50 {
		size = 10
	}

	orders, total, err := s.orderRepo.ListOrdersByCustomer(ctx, customerID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {

	if _, err := s.orderRepo.GetOrderByID(ctx, id); err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	order, err := s.orderRepo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update order status").WithError(err)
	}

	return order, nil
}
