package cmd

import (
	"fmt"
	"io"

	"github.com/SscSPs/booking_ledger_engine/internal/dto"
	"github.com/SscSPs/booking_ledger_engine/internal/utils"
	"github.com/SscSPs/booking_ledger_engine/internal/utils/mapping"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Calculate many bookings and summarize them",
	Long: `Batch reads {"bookings": [...]} and prints every calculated booking plus a summary.
Bookings that cannot be calculated are skipped and left out of the totals.

Example:
  bookingctl batch -f bookings.json --max-bookings 500`,
	RunE: runBatch,
}

var batchMaxBookings int

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().IntVar(&batchMaxBookings, "max-bookings", 0, "reject batches larger than this (0 = unlimited)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	svc, ctx := newEngine(cmd)

	data, err := readInput(cmd)
	if err != nil {
		return writeError(cmd, &dto.DecodeError{Msg: err.Error()})
	}
	req, err := dto.DecodeBatchBookingRequest(data, batchMaxBookings)
	if err != nil {
		return writeError(cmd, err)
	}

	result, err := svc.CalculateBatch(ctx, mapping.ToDomainBookingInputs(*req))
	if err != nil {
		return writeError(cmd, err)
	}

	resp, defaulted := mapping.ToBatchBookingResponse(*result)
	logDefaulted(ctx, defaulted)

	return writeResult(cmd, resp, func(w io.Writer) {
		fmt.Fprintf(w, "#\tNet before VAT\tVAT\tCommission\tNet profit\tMargin %%\t\n")
		for i, f := range result.Results {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n", i+1,
				utils.FormatWithPrecision(f.NetBeforeVAT, 2),
				utils.FormatWithPrecision(f.VATAmount, 2),
				utils.FormatWithPrecision(f.CommissionAmount, 2),
				utils.FormatWithPrecision(f.NetProfit, 2),
				utils.FormatWithPrecision(f.ProfitMarginPercentage, 2))
		}

		s := result.Summary
		fmt.Fprintf(w, "\t\t\t\t\t\t\n")
		fmt.Fprintf(w, "Bookings\t%d\t\t\t\t\t\n", s.BookingCount)
		fmt.Fprintf(w, "Total cost\t%s\t\t\t\t\t\n", utils.FormatWithPrecision(s.TotalCost, 2))
		fmt.Fprintf(w, "Total revenue\t%s\t\t\t\t\t\n", utils.FormatWithPrecision(s.TotalRevenue, 2))
		fmt.Fprintf(w, "Total VAT\t%s\t\t\t\t\t\n", utils.FormatWithPrecision(s.TotalVAT, 2))
		fmt.Fprintf(w, "Total commission\t%s\t\t\t\t\t\n", utils.FormatWithPrecision(s.TotalCommission, 2))
		fmt.Fprintf(w, "Total profit\t%s\t\t\t\t\t\n", utils.FormatWithPrecision(s.TotalProfit, 2))
		fmt.Fprintf(w, "Average margin %%\t%s\t\t\t\t\t\n", utils.FormatWithPrecision(s.AverageProfitMargin, 2))
		for _, failure := range result.Failures {
			fmt.Fprintf(w, "Skipped #%d\t%s\t\t\t\t\t\n", failure.Index+1, failure.Err.Error())
		}
	})
}
