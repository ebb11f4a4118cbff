package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Prints the ISINs known to the lookup table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.registry()
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ISIN", "Company", "Code"})
			for _, c := range registry.Companies() {
				t.AppendRow(table.Row{c.ISIN, c.Name, c.Code})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
			return nil
		},
	}
}
