package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/solistore/digital-storefront/internal/cart"
	appErrors "github.com/solistore/digital-storefront/internal/errors"
	"github.com/solistore/digital-storefront/internal/metrics"
	"github.com/solistore/digital-storefront/internal/models"
	repository "github.com/solistore/digital-storefront/internal/repositories"
)

// CartService is the thin adapter between the pure reducer and the
// store: it loads the persisted state, runs cart.Apply, and writes the
// result back. All cart semantics live in the reducer.
type CartService interface {
	GetCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, customerID uuid.UUID, req *models.AddCartItemRequest) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, customerID uuid.UUID, req *models.UpdateCartItemRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, customerID uuid.UUID, req *models.RemoveCartItemRequest) (*models.Cart, error)
	ClearCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error)
}

type cartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{repo: repo, productRepo: productRepo}
}

// GetCart returns the customer's cart, creating an empty one on first
// access.
func (s *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {

	existing, err := s.repo.GetCartByCustomerID(ctx, customerID)
	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.DatabaseError("Failed to retrieve cart").WithError(err)
	}

	created := &models.Cart{
		ID:        uuid.New(),
		UserID:    customerID,
		State:     cart.Empty(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.CreateCart(ctx, created); err != nil {
		return nil, appErrors.DatabaseError("Failed to create cart").WithError(err)
	}

	return created, nil
}

func (s *cartService) AddItem(ctx context.Context, customerID uuid.UUID, req *models.AddCartItemRequest) (*models.Cart, error) {

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, appErrors.NotFoundError("Product not found").WithError(err)
	}

	if product.Status != models.ProductStatusActive {
		return nil, appErrors.BadRequestError("Product is not available")
	}

	// Name, price and image are denormalized into the line item here;
	// the reducer locks them at first add.
	action := cart.AddItem{
		Item: cart.LineItem{
			ID:        product.ID.String(),
			Name:      product.Name,
			UnitPrice: product.Price,
			Image:     product.Image,
		},
		Quantity: req.Quantity,
	}

	return s.apply(ctx, customerID, action)
}

func (s *cartService) UpdateQuantity(ctx context.Context, customerID uuid.UUID, req *models.UpdateCartItemRequest) (*models.Cart, error) {
	return s.apply(ctx, customerID, cart.UpdateQuantity{ID: req.ProductID.String(), Quantity: req.Quantity})
}

func (s *cartService) RemoveItem(ctx context.Context, customerID uuid.UUID, req *models.RemoveCartItemRequest) (*models.Cart, error) {
	return s.apply(ctx, customerID, cart.RemoveItem{ID: req.ProductID.String()})
}

func (s *cartService) ClearCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	return s.apply(ctx, customerID, cart.Clear{})
}

func (s *cartService) apply(ctx context.Context, customerID uuid.UUID, action cart.Action) (*models.Cart, error) {

	stored, err := s.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	next, err := cart.Apply(stored.State, action)
	if err != nil {
		// Reducer validation errors are already AppErrors.
		return nil, err
	}

	stored.State = next
	stored.UpdatedAt = time.Now()

	if err := s.repo.UpdateCart(ctx, stored); err != nil {
		return nil, appErrors.DatabaseError("Failed to update cart").WithError(err)
	}

	metrics.RecordCartAction(actionLabel(action))

	return stored, nil
}

func actionLabel(action cart.Action) string {
	switch action.(type) {
	case cart.AddItem:
		return "add_item"
	case cart.RemoveItem:
		return "remove_item"
	case cart.UpdateQuantity:
		return "update_quantity"
	case cart.Clear:
		return "clear"
	default:
		return "unknown"
	}
}
