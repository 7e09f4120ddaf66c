package commands

import (
	"fmt"
	"io"

	"github.com/codetech/vendus-go/internal/constants"
	"github.com/codetech/vendus-go/pkg/vendus"
	"github.com/spf13/cobra"
)

// resourceSpec describes how one resource collection is exposed on the
// command line.
type resourceSpec[T any] struct {
	use      string
	aliases  []string
	singular string
	plural   string
	long     string
	endpoint func(vendus.API) vendus.Endpoint[T]
	headers  []string
	row      func(T) []string
	writable bool
}

type listOptions struct {
	page     int
	perPage  int
	allPages bool
	filters  []string
}

type bodyOptions struct {
	fields   []string
	fromFile string
}

func newResourceCommand[T any](spec resourceSpec[T]) *cobra.Command {
	short := "List and view " + spec.plural
	if spec.writable {
		short = "List, view, create and update " + spec.plural
	}

	cmd := &cobra.Command{
		Use:     spec.use,
		Aliases: spec.aliases,
		Short:   short,
		Long:    spec.long,
	}

	cmd.AddCommand(newResourceListCommand(spec))
	cmd.AddCommand(newResourceGetCommand(spec))

	if spec.writable {
		cmd.AddCommand(newResourceCreateCommand(spec))
		cmd.AddCommand(newResourceUpdateCommand(spec))
	}

	return cmd
}

func newResourceListCommand[T any](spec resourceSpec[T]) *cobra.Command {
	opts := listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + spec.plural,
		Long:  "List " + spec.plural + " one page at a time, or all at once with --all",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResourceList(cmd, spec, opts)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", 1, "page number")
	cmd.Flags().IntVar(&opts.perPage, "per-page", constants.StandardPageSize, "results per page")
	cmd.Flags().BoolVar(&opts.allPages, "all", false, "fetch the whole collection without paging")
	cmd.Flags().StringArrayVar(&opts.filters, "filter", nil, "filter as key=value (repeatable)")

	return cmd
}

func runResourceList[T any](cmd *cobra.Command, spec resourceSpec[T], opts listOptions) error {
	params, err := parseFields(opts.filters)
	if err != nil {
		return err
	}

	api, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	endpoint := spec.endpoint(api)
	out := cmd.OutOrStdout()

	if opts.allPages {
		resources, err := endpoint.Get(ctx, params)
		if err != nil {
			return reportAPIErrors(cmd, api, err)
		}

		return renderOutput(out, resources, func() error {
			return renderResourceTable(out, spec, resources)
		})
	}

	page, err := endpoint.Paginate(ctx, params, opts.page, opts.perPage)
	if err != nil {
		return reportAPIErrors(cmd, api, err)
	}

	return renderOutput(out, page, func() error {
		err := renderResourceTable(out, spec, page.Data)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(out, "\nShowing page %d (total %d)\n", opts.page, page.Total)

		return nil
	})
}

func newResourceGetCommand[T any](spec resourceSpec[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get " + spec.singular + " details",
		Long:  "Display a single " + spec.singular + " by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseResourceID(args[0])
			if err != nil {
				return err
			}

			api, err := CreateClient()
			if err != nil {
				return err
			}

			resource, err := spec.endpoint(api).Find(commandContext(cmd), id, nil)
			if err != nil {
				return reportAPIErrors(cmd, api, err)
			}

			return renderResource(cmd.OutOrStdout(), spec, resource)
		},
	}
}

func newResourceCreateCommand[T any](spec resourceSpec[T]) *cobra.Command {
	opts := bodyOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a " + spec.singular,
		Long:  "Create a " + spec.singular + " from --field values and/or a YAML or JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := buildBodyParams(opts.fields, opts.fromFile)
			if err != nil {
				return err
			}

			api, err := CreateClient()
			if err != nil {
				return err
			}

			resource, err := spec.endpoint(api).Create(commandContext(cmd), params)
			if err != nil {
				return reportAPIErrors(cmd, api, err)
			}

			return renderResource(cmd.OutOrStdout(), spec, resource)
		},
	}

	addBodyFlags(cmd, &opts)

	return cmd
}

func newResourceUpdateCommand[T any](spec resourceSpec[T]) *cobra.Command {
	opts := bodyOptions{}

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a " + spec.singular,
		Long:  "Update a " + spec.singular + " from --field values and/or a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseResourceID(args[0])
			if err != nil {
				return err
			}

			params, err := buildBodyParams(opts.fields, opts.fromFile)
			if err != nil {
				return err
			}

			api, err := CreateClient()
			if err != nil {
				return err
			}

			resource, err := spec.endpoint(api).Update(commandContext(cmd), id, params)
			if err != nil {
				return reportAPIErrors(cmd, api, err)
			}

			return renderResource(cmd.OutOrStdout(), spec, resource)
		},
	}

	addBodyFlags(cmd, &opts)

	return cmd
}

func addBodyFlags(cmd *cobra.Command, opts *bodyOptions) {
	cmd.Flags().StringArrayVarP(&opts.fields, "field", "f", nil, "field as key=value, dotted keys nest (repeatable)")
	cmd.Flags().StringVar(&opts.fromFile, "from-file", "", "YAML or JSON file with the request body")
}

func renderResource[T any](w io.Writer, spec resourceSpec[T], resource *T) error {
	return renderOutput(w, resource, func() error {
		return renderResourceTable(w, spec, []T{*resource})
	})
}

func renderResourceTable[T any](w io.Writer, spec resourceSpec[T], resources []T) error {
	if len(resources) == 0 {
		_, _ = fmt.Fprintf(w, "No %s found\n", spec.plural)

		return nil
	}

	rows := make([][]string, 0, len(resources))
	for _, resource := range resources {
		rows = append(rows, spec.row(resource))
	}

	return renderTable(w, spec.headers, rows)
}
