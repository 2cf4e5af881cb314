package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/solistore/digital-storefront/internal/pricing"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
}

// Order captures the checkout pricing pipeline: the cart subtotal, the
// loyalty discount applied to it, and the payable total in the display
// currency (equal to the base total when no conversion was requested).
type Order struct {
	ID              uuid.UUID   `json:"id"`
	CustomerID      uuid.UUID   `json:"customer_id"`
	Status          OrderStatus `json:"status"`
	Subtotal        float64     `json:"subtotal"`
	DiscountPct     float64     `json:"discount_pct"`
	DiscountAmount  float64     `json:"discount_amount"`
	Total           float64     `json:"total"`
	Currency        string      `json:"currency"`
	DisplayTotal    float64     `json:"display_total"`
	PaidFromBalance bool        `json:"paid_from_balance"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type CreateOrderRequest struct {
	Currency       string `json:"currency" validate:"omitempty,iso4217"`
	PayFromBalance bool   `json:"pay_from_balance"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending paid delivered cancelled"`
}

type OrderSummary struct {
	Subtotal     float64                `json:"subtotal"`
	Discount     pricing.DiscountResult `json:"discount"`
	Currency     string                 `json:"currency"`
	DisplayTotal float64                `json:"display_total"`
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Size   int     `json:"size"`
}
