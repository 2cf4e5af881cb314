// Package cart implements the shopping cart as a pure state reducer.
// State values are never mutated in place; Apply returns a fresh State
// so previous values stay valid for readers and for replay in tests.
package cart

import (
	"fmt"

	"github.com/solistore/digital-storefront/internal/errors"
)

// LineItem is one product entry in the cart. Name, UnitPrice and Image
// are denormalized copies taken from the product at add time.
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
}

// State holds the cart line items and derived totals. TotalItems and
// TotalPrice are recomputed on every transition and are never set
// independently.
type State struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
}

// Empty returns the canonical empty cart state.
func Empty() State {
	return State{Items: []LineItem{}}
}

// Action is a cart state transition. The four implementations below are
// the only way a State may change.
type Action interface {
	apply(s State) (State, error)
}

type AddItem struct {
	Item     LineItem
	Quantity int
}

type RemoveItem struct {
	ID string
}

type UpdateQuantity struct {
	ID       string
	Quantity int
}

type Clear struct{}

// Apply runs a single action against the given state and returns the
// resulting state. Malformed input is rejected with a validation error;
// removing or updating an absent item is a harmless no-op.
func Apply(s State, action Action) (State, error) {
	return action.apply(s)
}

func (a AddItem) apply(s State) (State, error) {
	if a.Item.ID == "" {
		return s, errors.AddValidationError("id", "must not be empty")
	}

	if a.Quantity < 1 {
		return s, errors.AddValidationError("quantity", fmt.Sprintf("must be a positive integer, got %d", a.Quantity))
	}

	if a.Item.UnitPrice < 0 {
		return s, errors.AddValidationError("unit_price", fmt.Sprintf("must not be negative, got %v", a.Item.UnitPrice))
	}

	next := clone(s)

	if idx := indexOf(next.Items, a.Item.ID); idx >= 0 {
		// Existing line: only the quantity grows. Name, price and image
		// keep their first-write values so the price a customer saw when
		// adding the item is the price they are charged.
		next.Items[idx].Quantity += a.Quantity
		next.TotalItems += a.Quantity
		next.TotalPrice += next.Items[idx].UnitPrice * float64(a.Quantity)

		return next, nil
	}

	item := a.Item
	item.Quantity = a.Quantity

	next.Items = append(next.Items, item)
	next.TotalItems += a.Quantity
	next.TotalPrice += item.UnitPrice * float64(a.Quantity)

	return next, nil
}

func (a RemoveItem) apply(s State) (State, error) {
	idx := indexOf(s.Items, a.ID)
	if idx < 0 {
		return s, nil
	}

	next := clone(s)
	removed := next.Items[idx]

	next.Items = append(next.Items[:idx], next.Items[idx+1:]...)
	next.TotalItems -= removed.Quantity
	next.TotalPrice -= removed.UnitPrice * float64(removed.Quantity)

	return next, nil
}

func (a UpdateQuantity) apply(s State) (State, error) {
	idx := indexOf(s.Items, a.ID)
	if idx < 0 {
		return s, nil
	}

	// Reducing to zero (or below) deletes the line.
	if a.Quantity <= 0 {
		return RemoveItem{ID: a.ID}.apply(s)
	}

	next := clone(s)
	item := &next.Items[idx]
	delta := a.Quantity - item.Quantity

	item.Quantity = a.Quantity
	next.TotalItems += delta
	next.TotalPrice += item.UnitPrice * float64(delta)

	return next, nil
}

func (Clear) apply(State) (State, error) {
	return Empty(), nil
}

func indexOf(items []LineItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}

	return -1
}

func clone(s State) State {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)

	s.Items = items

	return s
}
