package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	DefaultCurrency = currency.USD

	shippingAmount = decimal.NewFromInt(10)
)

type Summary struct {
	Subtotal Money
	Shipping Money
	Total    Money
}

// ShippingFee is the flat shipping charge added to every cart.
func ShippingFee(unit currency.Unit) Money {
	return Money{Amount: shippingAmount, Currency: unit}
}

// Summarize sums price × quantity over items and adds the flat shipping fee.
// Items must all be priced in unit.
func Summarize(items []CartItem, unit currency.Unit) (Summary, error) {
	subtotal := ZeroMoney(unit)

	for _, item := range items {
		var err error

		subtotal, err = subtotal.Add(item.LineTotal())
		if err != nil {
			return Summary{}, fmt.Errorf("item[%s]: %w", item.ID, err)
		}
	}

	shipping := ShippingFee(unit)

	total, err := subtotal.Add(shipping)
	if err != nil {
		return Summary{}, fmt.Errorf("subtotal.Add: %w", err)
	}

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    total,
	}, nil
}

// CartCurrency picks the currency of the first item, falling back to DefaultCurrency.
func CartCurrency(items []CartItem) currency.Unit {
	if len(items) == 0 {
		return DefaultCurrency
	}

	return items[0].Price.Currency
}
