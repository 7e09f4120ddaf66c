package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/codetech/vendus-go/internal/constants"
	"github.com/codetech/vendus-go/pkg/vendus"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"
	Yes          = "yes"
	No           = "no"
)

// Viper keys.
const (
	apiKeyKey  = "api_key"
	baseURLKey = "base_url"
	outputKey  = "output"
	verboseKey = "verbose"
	timeoutKey = "timeout"
)

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer[T any](w io.Writer, data T) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close() //nolint:wrapcheck // flush only
}

// renderOutput renders data in the configured output format. The table
// callback is used for the default format.
func renderOutput[T any](w io.Writer, data T, table func() error) error {
	switch viper.GetString(outputKey) {
	case constants.FormatJSON:
		return StandardJSONRenderer(w, data)
	case constants.FormatYAML:
		return StandardYAMLRenderer(w, data)
	default:
		return table()
	}
}

// ValidateOutputFormat accepts table, json and yaml.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}
}

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}

	table.Header(header...)

	for _, row := range rows {
		err := table.Append(row)
		if err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// reportAPIErrors prints the error entries captured by the client to stderr
// and returns err.
func reportAPIErrors(cmd *cobra.Command, api vendus.API, err error) error {
	entries := api.Errors()
	if len(entries) == 0 {
		entries = vendus.Messages(err)
	}

	for _, entry := range entries {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "API error:", entry)
	}

	return err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func parseResourceID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidResourceID, arg)
	}

	return id, nil
}

func titleCase(value string) string {
	if value == "" {
		return NotAvailable
	}

	return cases.Title(language.Und).String(value)
}

func valueOrNA(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func formatBool(value bool) string {
	if value {
		return Yes
	}

	return No
}
