package commands

import (
	"github.com/codetech/vendus-go/pkg/vendus"
	"github.com/spf13/cobra"
)

// NewClientsCommand creates the clients command group.
func NewClientsCommand() *cobra.Command {
	return newResourceCommand(resourceSpec[vendus.Client]{
		use:      "clients",
		aliases:  []string{"client", "customers"},
		singular: "client",
		plural:   "clients",
		long:     "List, view, create and update the customers of the account",
		endpoint: func(api vendus.API) vendus.Endpoint[vendus.Client] { return api.Clients() },
		headers:  []string{"ID", "Name", "Fiscal ID", "Email", "City", "Status"},
		row: func(c vendus.Client) []string {
			return []string{
				formatID(c.ID),
				c.Name,
				valueOrNA(c.FiscalID),
				valueOrNA(c.Email),
				valueOrNA(c.City),
				titleCase(c.Status),
			}
		},
		writable: true,
	})
}
