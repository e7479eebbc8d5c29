package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tripnation/pkg/pricing"
)

type packageRow struct {
	ID       int    `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Price    string `json:"price"`
	Fee      string `json:"service_fee_percent"`
	Total    string `json:"total"`
}

func newPackagesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "List catalog packages with their totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			rows := make([]packageRow, 0, len(cat.Packages()))
			for _, p := range cat.Packages() {
				fee := p.Fee(pricing.DefaultFee)
				res := pricing.ComputeTotal(p.LineItems(), fee)
				rows = append(rows, packageRow{
					ID:       p.ID,
					Slug:     p.Slug,
					Title:    p.Title,
					Duration: p.Duration,
					Price:    p.Price,
					Fee:      fee.String(),
					Total:    pricing.FormatCurrency(res.Total),
				})
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, rows)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSLUG\tDURATION\tPRICE\tFEE\tTOTAL")
			for _, r := range rows {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Slug, r.Duration, r.Price, r.Fee, r.Total)
			}
			return tw.Flush()
		},
	}
}
