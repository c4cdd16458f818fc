package domain

import (
	"fmt"
	"math"
)

type QuantityAction string

const (
	Increment QuantityAction = "increment"
	Decrement QuantityAction = "decrement"
)

// Quantities of a cart line stay within [MinQuantity, MaxQuantity]; the upper
// bound is the range of the Postgres INTEGER column.
const (
	MinQuantity = 1
	MaxQuantity = math.MaxInt32
)

// ClampQuantity forces q into [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	return min(max(q, MinQuantity), MaxQuantity)
}

// AddQuantity sums two quantities, saturating at MaxQuantity.
func AddQuantity(a, b int) int {
	a, b = ClampQuantity(a), ClampQuantity(b)
	if a > MaxQuantity-b {
		return MaxQuantity
	}

	return a + b
}

func ParseQuantityAction(s string) (QuantityAction, error) {
	switch a := QuantityAction(s); a {
	case Increment, Decrement:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidQuantityAction, s)
	}
}

// Apply returns the quantity after the action; decrement stops at MinQuantity
// and increment at MaxQuantity.
func (a QuantityAction) Apply(quantity int) int {
	switch a {
	case Increment:
		return AddQuantity(quantity, 1)
	case Decrement:
		return ClampQuantity(ClampQuantity(quantity) - 1)
	default:
		return quantity
	}
}
