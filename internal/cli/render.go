package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/light-bringer/storefront/internal/app/catalog/controller"
	"github.com/light-bringer/storefront/internal/app/catalog/domain"
	"github.com/light-bringer/storefront/internal/app/collections"
)

// renderProductList writes the merged product list with a pagination footer.
func renderProductList(w io.Writer, state controller.State) {
	if len(state.Products) == 0 {
		fmt.Fprintln(w, "no products")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBRAND\tCATEGORY\tPRICE\tRATING\tSTOCK")
	for _, p := range state.Products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%.1f\t%d\n",
			p.ID, p.Name, p.Brand, p.Category, formatPrice(p), p.Rating, p.Stock)
	}
	tw.Flush()

	if state.TotalsKnown {
		fmt.Fprintf(w, "\npage %d of %d (%d of %d items loaded)\n",
			state.Query.Page, state.TotalPages, len(state.Products), state.Total)
	}
}

// renderProduct writes one product in full.
func renderProduct(w io.Writer, p domain.Product) {
	fmt.Fprintf(w, "#%d %s\n", p.ID, p.Name)
	if p.Brand != "" {
		fmt.Fprintf(w, "brand:       %s\n", p.Brand)
	}
	fmt.Fprintf(w, "category:    %s\n", p.Category)
	fmt.Fprintf(w, "price:       %s\n", formatPrice(p))
	fmt.Fprintf(w, "rating:      %.1f (%d reviews)\n", p.Rating, p.ReviewCount)
	fmt.Fprintf(w, "stock:       %d (%s)\n", p.Stock, p.AvailabilityStatus)
	if p.Description != "" {
		fmt.Fprintf(w, "\n%s\n", p.Description)
	}
}

// renderCart writes the cart contents and totals.
func renderCart(w io.Writer, snap collections.CartSnapshot) {
	if len(snap.Items) == 0 {
		fmt.Fprintln(w, "cart is empty")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQTY\tPRICE")
	for _, ci := range snap.Items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.2f %s\n",
			ci.Item.ID, ci.Item.Name, ci.Quantity, ci.Item.Price, ci.Item.Currency)
	}
	tw.Flush()
	fmt.Fprintf(w, "\ntotal items: %d, total due: %.2f\n", snap.TotalCount, snap.TotalDue)
}

// renderCollection writes a membership collection.
func renderCollection(w io.Writer, name string, items []domain.Product) {
	if len(items) == 0 {
		fmt.Fprintf(w, "%s is empty\n", name)
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE")
	for _, p := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, formatPrice(p))
	}
	tw.Flush()
}

// formatPrice renders the current price, with the inferred original price
// alongside when the product carries a discount.
func formatPrice(p domain.Product) string {
	currency := p.Currency
	if currency == "" {
		currency = "USD"
	}
	if original, ok := domain.OriginalPrice(p); ok {
		return fmt.Sprintf("%.2f %s (was %.2f)", p.Price, currency, original)
	}
	return fmt.Sprintf("%.2f %s", p.Price, currency)
}
