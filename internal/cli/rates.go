package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meetcost/meetcost/internal/currency"
	"github.com/meetcost/meetcost/internal/receipt"
)

func NewRatesCmd(deps *Dependencies) *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show current exchange rates for an amount in USD",
		Long: "Fetches USD exchange rates from the Frankfurter API and shows what an\n" +
			"amount converts to in other currencies. Rates are cached for an hour.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rates, date, err := deps.Converter.Rates(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch exchange rates: %w", err)
			}

			codes := make([]string, 0, len(rates))
			for code := range rates {
				codes = append(codes, code)
			}
			sort.Strings(codes)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s in other currencies (rates as of %s):\n\n", receipt.FormatCurrency(amount), date)

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, code := range codes {
				converted, ok := currency.Convert(amount, rates, code)
				if !ok {
					continue
				}
				label := currency.Labels[code]
				fmt.Fprintf(w, "%s\t%.2f\t%s\n", code, converted, label)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 100, "amount in USD to convert")

	return cmd
}
