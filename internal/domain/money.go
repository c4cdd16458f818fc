package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// PriceScale is the number of decimal places a stored price keeps.
const PriceScale = 2

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

func ZeroMoney(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

// HasPriceScale reports whether the amount needs no more than PriceScale decimal places.
func (m Money) HasPriceScale() bool {
	return m.Amount.Equal(m.Amount.Round(PriceScale))
}

// Rounded returns m rounded half away from zero to PriceScale decimal places.
func (m Money) Rounded() Money {
	return Money{Amount: m.Amount.Round(PriceScale), Currency: m.Currency}
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}

	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

func (m Money) Mul(n int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(n))), Currency: m.Currency}
}

// String renders the amount with two decimal places, e.g. "USD 10.00".
func (m Money) String() string {
	return m.Currency.String() + " " + m.Amount.StringFixed(2)
}
