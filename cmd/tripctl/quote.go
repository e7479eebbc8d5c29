package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tripnation/pkg/pricing"
)

func newQuoteCmd(opts *options) *cobra.Command {
	var (
		base, transport, accommodation, activities, other string
		feePercent                                        float64
	)
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a trip from its line items",
		Long: `Compute subtotal, service fee and total. Amounts accept plain numbers
or pt-BR currency text such as "R$ 1.200,50". Omitted items are left out.`,
		Example: `  tripctl quote --base "R$ 1.200,50" --transport 180 --fee-percent 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			percent := feePercent
			if !cmd.Flags().Changed("fee-percent") {
				if env := os.Getenv("SERVICE_FEE_PERCENT"); env != "" {
					p, err := strconv.ParseFloat(env, 64)
					if err != nil {
						return fmt.Errorf("SERVICE_FEE_PERCENT: %w", err)
					}
					percent = p
				}
			}
			if percent < 0 || percent >= 100 {
				return fmt.Errorf("fee percent must be in [0, 100), got %v", percent)
			}
			fee := pricing.FeeFromPercent(percent)

			items := pricing.LineItems{
				BasePrice:         pricing.ParseCurrency(base),
				TransportCost:     pricing.ParseCurrency(transport),
				AccommodationCost: pricing.ParseCurrency(accommodation),
				ActivitiesCost:    pricing.ParseCurrency(activities),
				OtherCost:         pricing.ParseCurrency(other),
			}
			res := pricing.ComputeTotal(items, fee)

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, res)
			}
			fmt.Fprintf(out, "Subtotal:            %s\n", pricing.FormatCurrency(res.Subtotal))
			fmt.Fprintf(out, "Taxa de serviço (%s): %s\n", fee, pricing.FormatCurrency(res.ServiceFee))
			fmt.Fprintf(out, "Total:               %s\n", pricing.FormatCurrency(res.Total))
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "Base price")
	cmd.Flags().StringVar(&transport, "transport", "", "Transport cost")
	cmd.Flags().StringVar(&accommodation, "accommodation", "", "Accommodation cost")
	cmd.Flags().StringVar(&activities, "activities", "", "Activities cost")
	cmd.Flags().StringVar(&other, "other", "", "Other costs")
	cmd.Flags().Float64Var(&feePercent, "fee-percent", 8, "Service fee percent")
	return cmd
}
