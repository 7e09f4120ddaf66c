package commands

import (
	"github.com/codetech/vendus-go/pkg/vendus"
	"github.com/spf13/cobra"
)

// NewPaymentMethodsCommand creates the payment-methods command group.
func NewPaymentMethodsCommand() *cobra.Command {
	return newResourceCommand(resourceSpec[vendus.PaymentMethod]{
		use:      "payment-methods",
		aliases:  []string{"payment-method", "pm"},
		singular: "payment method",
		plural:   "payment methods",
		long:     "List and view the payment methods accepted on documents",
		endpoint: func(api vendus.API) vendus.Endpoint[vendus.PaymentMethod] { return api.PaymentMethods() },
		headers:  []string{"ID", "Title", "Type", "Status"},
		row: func(m vendus.PaymentMethod) []string {
			return []string{formatID(m.ID), m.Title, valueOrNA(m.Type), titleCase(m.Status)}
		},
	})
}
