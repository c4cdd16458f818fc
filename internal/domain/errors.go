package domain

import "errors"

var (
	ErrItemNotFound          = errors.New("cart item not found")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrCurrencyMismatch      = errors.New("currency mismatch")
	ErrInvalidQuantityAction = errors.New("invalid quantity action")
)
