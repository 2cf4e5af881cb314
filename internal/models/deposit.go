package models

import (
	"time"

	"github.com/google/uuid"
)

type DepositStatus string

const (
	DepositStatusPending   DepositStatus = "pending"
	DepositStatusConfirmed DepositStatus = "confirmed"
	DepositStatusRejected  DepositStatus = "rejected"
)

// Deposit is one balance top-up in the internal ledger. Method is a
// free-form label ("paypal", "usdt", "manual"); the actual provider
// handoff lives outside this service.
type Deposit struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`
	Amount    float64       `json:"amount"`
	Method    string        `json:"method"`
	Status    DepositStatus `json:"status"`
	Reference string        `json:"reference,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type CreateDepositRequest struct {
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,min=2,max=50"`
	Reference string  `json:"reference" validate:"max=200"`
}

type UpdateDepositStatusRequest struct {
	Status DepositStatus `json:"status" validate:"required,oneof=pending confirmed rejected"`
}

type BalanceResponse struct {
	UserID  uuid.UUID `json:"user_id"`
	Balance float64   `json:"balance"`
}
