package cmd

import (
	"fmt"
	"io"

	"github.com/SscSPs/booking_ledger_engine/internal/utils"
	"github.com/SscSPs/booking_ledger_engine/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var financialsCmd = &cobra.Command{
	Use:   "financials",
	Short: "Calculate profit, VAT, commission and margin for one booking",
	Long: `Financials treats VAT as included in the sale amount and takes commission from gross profit.

Example:
  bookingctl financials --cost 1000 --sale 1500 --vat 5 --commission 10 --currency USD -o text`,
	RunE: runFinancials,
}

var financialsFlags bookingFlags

func init() {
	rootCmd.AddCommand(financialsCmd)
	addBookingFlags(financialsCmd, &financialsFlags)
}

func runFinancials(cmd *cobra.Command, args []string) error {
	svc, ctx := newEngine(cmd)

	input, err := resolveBooking(ctx, cmd, &financialsFlags)
	if err != nil {
		return writeError(cmd, err)
	}

	financials, err := svc.CalculateBookingFinancials(ctx, input)
	if err != nil {
		return writeError(cmd, err)
	}

	resp, defaulted := mapping.ToBookingFinancialsResponse(*financials)
	logDefaulted(ctx, defaulted)

	return writeResult(cmd, resp, func(w io.Writer) {
		amount := func(label string, v decimal.Decimal) {
			fmt.Fprintf(w, "%s\t%s\t%s\t\n", label, utils.FormatWithCurrencyPrecision(v, input.Currency), input.Currency)
		}
		amount("Sale (incl. VAT)", financials.TotalWithVAT)
		amount("Net before VAT", financials.NetBeforeVAT)
		amount("VAT", financials.VATAmount)
		amount("Gross profit", financials.GrossProfit)
		amount("Commission", financials.CommissionAmount)
		amount("Net profit", financials.NetProfit)
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", "Margin", utils.FormatWithPrecision(financials.ProfitMarginPercentage, 2), "%")
	})
}
