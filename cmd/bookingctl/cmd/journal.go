package cmd

import (
	"fmt"
	"io"

	"github.com/SscSPs/booking_ledger_engine/internal/utils"
	"github.com/SscSPs/booking_ledger_engine/internal/utils/mapping"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Generate the double-entry journal for one booking",
	Long: `Journal prints the five journal lines of a booking: receivable, revenue,
VAT payable, cost of sales and payable, with their totals.

Example:
  bookingctl journal -f booking.json -o yaml`,
	RunE: runJournal,
}

var journalFlags bookingFlags

func init() {
	rootCmd.AddCommand(journalCmd)
	addBookingFlags(journalCmd, &journalFlags)
}

func runJournal(cmd *cobra.Command, args []string) error {
	svc, ctx := newEngine(cmd)

	input, err := resolveBooking(ctx, cmd, &journalFlags)
	if err != nil {
		return writeError(cmd, err)
	}

	journal, err := svc.GenerateJournalEntries(ctx, input)
	if err != nil {
		return writeError(cmd, err)
	}

	resp, defaulted := mapping.ToJournalEntriesResponse(*journal)
	logDefaulted(ctx, defaulted)

	return writeResult(cmd, resp, func(w io.Writer) {
		fmt.Fprintf(w, "Code\tAccount\tDebit\tCredit\t\n")
		for _, e := range journal.Entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", e.AccountCode, e.AccountName,
				utils.FormatWithCurrencyPrecision(e.Debit, input.Currency),
				utils.FormatWithCurrencyPrecision(e.Credit, input.Currency))
		}
		fmt.Fprintf(w, "\tTotal\t%s\t%s\t\n",
			utils.FormatWithCurrencyPrecision(journal.TotalDebit, input.Currency),
			utils.FormatWithCurrencyPrecision(journal.TotalCredit, input.Currency))
		fmt.Fprintf(w, "\tBalanced\t%t\t\t\n", journal.IsBalanced)
	})
}
