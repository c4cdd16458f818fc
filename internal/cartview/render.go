package cartview

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Render writes the cart page: one row per item, then subtotal, shipping and total.
func (v *View) Render(w io.Writer) error {
	items := v.Items()

	summary, err := v.Summary()
	if err != nil {
		return fmt.Errorf("v.Summary: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Shopping Cart")
	fmt.Fprintln(tw)

	if len(items) == 0 {
		fmt.Fprintln(tw, "Your cart is empty.")
	} else {
		fmt.Fprintln(tw, "ID\tITEM\tPRICE\tQTY\tLINE")
		for _, item := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
				item.ID, item.Name, item.Price.Amount.StringFixed(2), item.Quantity, item.LineTotal().Amount.StringFixed(2))
		}
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Subtotal\t%s\n", summary.Subtotal)
	fmt.Fprintf(tw, "Shipping\t%s\n", summary.Shipping)
	fmt.Fprintf(tw, "Total\t%s\n", summary.Total)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tw.Flush: %w", err)
	}

	return nil
}
