package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func daysCmd(g *globalFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "days",
		Short: "List the solved days and whether their input is present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			ws, err := loadWorkspace(g.workspace)
			if err != nil {
				return err
			}

			type row struct {
				Day   string `json:"day"`
				Title string `json:"title"`
				Input bool   `json:"input"`
			}
			var rows []row
			for _, e := range ws.catalog.Days() {
				rows = append(rows, row{Day: string(e.Day), Title: e.Title, Input: ws.inputs.HasInput(e.Day)})
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DAY\tTITLE\tINPUT")
			for _, r := range rows {
				input := "missing"
				if r.Input {
					input = "ok"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Day, r.Title, input)
			}
			return tw.Flush()
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
