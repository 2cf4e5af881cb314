package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/solistore/digital-storefront/internal/cart"
)

// Cart is the persisted wrapper around the reducer state. The state
// column round-trips through JSON untouched; all mutation goes through
// cart.Apply in the service layer.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	State     cart.State `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
}

type RemoveCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}
