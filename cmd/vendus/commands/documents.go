package commands

import (
	"github.com/codetech/vendus-go/pkg/vendus"
	"github.com/spf13/cobra"
)

// NewDocumentsCommand creates the documents command group.
func NewDocumentsCommand() *cobra.Command {
	return newResourceCommand(resourceSpec[vendus.Document]{
		use:      "documents",
		aliases:  []string{"document", "docs"},
		singular: "document",
		plural:   "documents",
		long: `List, view, create and update fiscal documents (invoices, receipts, ...).

Document lines are passed as nested fields, for example:

  vendus documents create -f type=FT -f items.0.reference=P1 -f items.0.qty=2`,
		endpoint: func(api vendus.API) vendus.Endpoint[vendus.Document] { return api.Documents() },
		headers:  []string{"ID", "Number", "Type", "Date", "Amount Gross", "Status"},
		row: func(d vendus.Document) []string {
			return []string{
				formatID(d.ID),
				d.Number,
				d.Type,
				valueOrNA(d.Date),
				formatMoney(d.AmountGross),
				titleCase(d.Status),
			}
		},
		writable: true,
	})
}
