package models

import (
	"time"

	"github.com/google/uuid"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Product is a digital good. Price is in the store's base currency;
// DeliveryKey points at the fulfillment payload handed out after a
// paid order (license pool, download bucket key, ...).
type Product struct {
	ID          uuid.UUID     `json:"id"`
	CategoryID  uuid.UUID     `json:"category_id"`
	Category    *Category     `json:"category,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	DeliveryKey string        `json:"delivery_key,omitempty"`
	Image       string        `json:"image,omitempty"`
	Status      ProductStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CreateProductRequest struct {
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=2,max=200"`
	Description string    `json:"description" validate:"max=5000"`
	Price       float64   `json:"price" validate:"required,gte=0"`
	Stock       int       `json:"stock" validate:"gte=0"`
	DeliveryKey string    `json:"delivery_key" validate:"max=500"`
	Image       string    `json:"image" validate:"omitempty,url"`
}

type UpdateProductRequest struct {
	CategoryID  *uuid.UUID     `json:"category_id,omitempty"`
	Name        *string        `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string        `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price       *float64       `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int           `json:"stock,omitempty" validate:"omitempty,gte=0"`
	DeliveryKey *string        `json:"delivery_key,omitempty" validate:"omitempty,max=500"`
	Image       *string        `json:"image,omitempty" validate:"omitempty,url"`
	Status      *ProductStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

type ProductListResponse struct {
	Products []*Product `json:"products"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	Size     int        `json:"size"`
}
