package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/IamTheLime/airbyte/internal/client"
	"github.com/IamTheLime/airbyte/internal/handlers"
	"github.com/IamTheLime/airbyte/internal/projection"
)

type options struct {
	server    string
	workspace string
	sortBy    string
	sortOrder string
	step      string
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "consolectl",
		Short:         "Browse sources and destinations of a console workspace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.server, "server", envOr("CONSOLE_SERVER", "http://localhost:8090"), "console API base URL")
	root.PersistentFlags().StringVar(&opts.workspace, "workspace", envOr("CONSOLE_WORKSPACE", ""), "workspace id")

	sources := &cobra.Command{Use: "sources", Short: "Source pages"}
	sources.AddCommand(newListCmd(out, opts, projection.KindSource), newShowCmd(out, opts))

	destinations := &cobra.Command{Use: "destinations", Short: "Destination pages"}
	destinations.AddCommand(newListCmd(out, opts, projection.KindDestination))

	root.AddCommand(sources, destinations)
	return root
}

func newListCmd(out io.Writer, opts *options, kind projection.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("Show the %ss table", kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireWorkspace(opts); err != nil {
				return err
			}
			c := client.New(opts.server)
			var (
				rows []projection.TableRow
				err  error
			)
			if kind == projection.KindDestination {
				rows, err = c.ListDestinations(cmd.Context(), opts.workspace, opts.sortBy, opts.sortOrder)
			} else {
				rows, err = c.ListSources(cmd.Context(), opts.workspace, opts.sortBy, opts.sortOrder)
			}
			if err != nil {
				return err
			}
			return renderRows(out, rows)
		},
	}
	cmd.Flags().StringVar(&opts.sortBy, "sort-by", "", "name, definition_name or connection_count")
	cmd.Flags().StringVar(&opts.sortOrder, "sort-order", "", "asc or desc")
	return cmd
}

func newShowCmd(out io.Writer, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <source-id>",
		Short: "Show the detail page of a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireWorkspace(opts); err != nil {
				return err
			}
			page, err := client.New(opts.server).SourcePage(cmd.Context(), opts.workspace, args[0], opts.step)
			if err != nil {
				return err
			}
			return renderPage(out, page)
		},
	}
	cmd.Flags().StringVar(&opts.step, "step", "", "overview or settings")
	return cmd
}

func requireWorkspace(opts *options) error {
	if opts.workspace == "" {
		return fmt.Errorf("--workspace is required")
	}
	return nil
}

func renderRows(out io.Writer, rows []projection.TableRow) error {
	table := tablewriter.NewWriter(out)
	table.Header("ID", "NAME", "CONNECTOR", "CONNECTIONS", "ENABLED")
	for _, row := range rows {
		if err := table.Append([]string{
			row.EntityID,
			row.Name,
			row.DefinitionName,
			strconv.Itoa(row.ConnectionCount),
			strconv.FormatBool(row.Enabled),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderPage(out io.Writer, page *handlers.SourceItemPage) error {
	crumbs := make([]string, 0, len(page.Breadcrumbs))
	for _, b := range page.Breadcrumbs {
		crumbs = append(crumbs, b.Name)
	}
	fmt.Fprintf(out, "%s\n", strings.Join(crumbs, " / "))
	fmt.Fprintf(out, "Connector: %s\nStep: %s\n\n", page.DefinitionName, page.CurrentStep)

	if page.Placeholder {
		fmt.Fprintln(out, "No connections yet.")
	} else {
		table := tablewriter.NewWriter(out)
		table.Header("CONNECTION", "DESTINATION", "STATUS")
		for _, conn := range page.Connections {
			if err := table.Append([]string{conn.ID, conn.DestinationID, conn.Status}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if len(page.DestinationOptions) > 0 {
		fmt.Fprintln(out, "\nAdd destination:")
		for _, opt := range page.DestinationOptions {
			fmt.Fprintf(out, "  - %s (%s)\n", opt.Label, opt.Value)
		}
	}
	return nil
}
