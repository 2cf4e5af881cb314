// Package pricing holds the stateless money calculations used at
// checkout: currency conversion and percentage discounts. Rates and
// discount percentages are resolved by the caller before these run.
package pricing

import (
	"fmt"

	"github.com/solistore/digital-storefront/internal/errors"
)

// DiscountResult is the breakdown of a percentage discount applied to
// an order subtotal. It is computed per call and never persisted.
type DiscountResult struct {
	Percentage  float64 `json:"percentage"`
	Amount      float64 `json:"amount"`
	FinalAmount float64 `json:"final_amount"`
}

// Convert multiplies a base-currency amount by an externally supplied
// exchange rate. No rounding happens here; currency-locale formatting
// is a display concern.
func Convert(amount, rate float64) float64 {
	return amount * rate
}

// ApplyPercentageDiscount reduces subtotal by percentage. The subtotal
// must be non-negative and the percentage within [0, 100].
func ApplyPercentageDiscount(subtotal, percentage float64) (DiscountResult, error) {
	if subtotal < 0 {
		return DiscountResult{}, errors.InvalidDiscountError(fmt.Sprintf("subtotal must not be negative, got %v", subtotal))
	}

	if percentage < 0 || percentage > 100 {
		return DiscountResult{}, errors.InvalidDiscountError(fmt.Sprintf("discount percentage must be within [0, 100], got %v", percentage))
	}

	amount := subtotal * (percentage / 100)

	return DiscountResult{
		Percentage:  percentage,
		Amount:      amount,
		FinalAmount: subtotal - amount,
	}, nil
}
