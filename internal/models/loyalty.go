package models

import (
	"time"

	"github.com/google/uuid"
)

type LoyaltyTier string

const (
	TierBronze   LoyaltyTier = "bronze"
	TierSilver   LoyaltyTier = "silver"
	TierGold     LoyaltyTier = "gold"
	TierPlatinum LoyaltyTier = "platinum"
)

// LoyaltyAccount tracks the points a customer has earned across paid
// orders. The tier is derived from the points balance and maps to the
// discount percentage fed into the pricing engine at checkout.
type LoyaltyAccount struct {
	UserID    uuid.UUID   `json:"user_id"`
	Points    int         `json:"points"`
	Tier      LoyaltyTier `json:"tier"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Points thresholds for each tier and the discount each tier grants.
const (
	SilverThreshold   = 500
	GoldThreshold     = 2000
	PlatinumThreshold = 10000
)

func TierForPoints(points int) LoyaltyTier {
	switch {
	case points >= PlatinumThreshold:
		return TierPlatinum
	case points >= GoldThreshold:
		return TierGold
	case points >= SilverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

func (t LoyaltyTier) DiscountPercentage() float64 {
	switch t {
	case TierPlatinum:
		return 15
	case TierGold:
		return 10
	case TierSilver:
		return 5
	default:
		return 0
	}
}
