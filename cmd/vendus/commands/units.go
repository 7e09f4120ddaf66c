package commands

import (
	"github.com/codetech/vendus-go/pkg/vendus"
	"github.com/spf13/cobra"
)

// NewUnitsCommand creates the units command group.
func NewUnitsCommand() *cobra.Command {
	return newResourceCommand(resourceSpec[vendus.Unit]{
		use:      "units",
		aliases:  []string{"unit"},
		singular: "unit",
		plural:   "units",
		long:     "List and view product measurement units",
		endpoint: func(api vendus.API) vendus.Endpoint[vendus.Unit] { return api.Units() },
		headers:  []string{"ID", "Title", "Default"},
		row: func(u vendus.Unit) []string {
			return []string{formatID(u.ID), u.Title, formatBool(u.Default)}
		},
	})
}
