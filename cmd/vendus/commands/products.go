package commands

import (
	"github.com/codetech/vendus-go/pkg/vendus"
	"github.com/spf13/cobra"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	return newResourceCommand(resourceSpec[vendus.Product]{
		use:      "products",
		aliases:  []string{"product"},
		singular: "product",
		plural:   "products",
		long:     "List, view, create and update catalogue products",
		endpoint: func(api vendus.API) vendus.Endpoint[vendus.Product] { return api.Products() },
		headers:  []string{"ID", "Reference", "Title", "Gross Price", "Stock", "Status"},
		row: func(p vendus.Product) []string {
			return []string{
				formatID(p.ID),
				valueOrNA(p.Reference),
				p.Title,
				formatMoney(p.GrossPrice),
				p.Stock.String(),
				titleCase(p.Status),
			}
		},
		writable: true,
	})
}
