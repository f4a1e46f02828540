package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"areapulse/backend-go/internal/analytics"
	"areapulse/backend-go/internal/services"
)

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "Print the area catalog with demand intensity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printAreas(cmd, services.DefaultCatalog())
	},
}

func printAreas(cmd *cobra.Command, cat *services.Catalog) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tDEMAND\tCOMPETITION\tINTENSITY")
	for _, a := range cat.List() {
		rec, err := cat.Get(a.Code)
		if err != nil {
			return err
		}
		m := rec.Metrics
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%.2f\n", a.Code, a.Name, m.Demand, m.Competition, analytics.Intensity(m.Demand, m.Competition))
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(areasCmd)
}
