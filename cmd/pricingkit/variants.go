package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type variantRow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Accent  string `json:"accent"`
	Default bool   `json:"default"`
}

func newVariantsCmd(app *AppContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the available designs in gallery order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def := app.Registry.Default().ID
			descs := app.Registry.All()

			rows := make([]variantRow, 0, len(descs))
			for _, d := range descs {
				rows = append(rows, variantRow{
					ID:      d.ID,
					Name:    d.DisplayName,
					Accent:  d.Accent.String(),
					Default: d.ID == def,
				})
			}

			if jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(rows)
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "#\tID\tNAME\tACCENT")
			for i, row := range rows {
				marker := ""
				if row.Default {
					marker = " (default)"
				}
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s%s\n", i+1, row.ID, row.Name, row.Accent, marker)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
