package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/zhouzirui/people/backend/internal/model/person"
)

type rootOptions struct {
	file string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "peoplectl",
		Short:         "Query the people directory without running the server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.file, "file", os.Getenv("PEOPLE_FILE"), "people fixture (YAML or JSON); built-in data when empty")

	cmd.AddCommand(newGetCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	return cmd
}

func (o *rootOptions) store() (*person.MemoryStore, error) {
	return person.Open(strings.TrimSpace(o.file))
}

func newGetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print one person as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: must be an integer", args[0])
			}

			store, err := opts.store()
			if err != nil {
				return err
			}

			found, ok := store.FindByID(id)
			if !ok {
				return fmt.Errorf("person %d not found", id)
			}
			return writeJSON(cmd.OutOrStdout(), found)
		},
	}
}

const (
	formatTable    = "table"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every person in definition order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}

			people := store.List()
			switch format {
			case formatJSON:
				return writeJSON(cmd.OutOrStdout(), people)
			case formatTable, formatMarkdown:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), renderTable(people, format == formatMarkdown))
				return err
			default:
				return fmt.Errorf("unknown format %q (want table, markdown or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTable, "output format: table, markdown or json")
	return cmd
}

func renderTable(people []person.Person, markdown bool) string {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{"ID", "Name", "Age", "Gender"})
	for _, p := range people {
		w.AppendRow(table.Row{p.ID, p.Name, p.Age, string(p.Gender)})
	}
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	if markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
