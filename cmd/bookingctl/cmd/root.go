package cmd

import (
	"context"
	"log/slog"

	"github.com/SscSPs/booking_ledger_engine/internal/core/services"
	portssvc "github.com/SscSPs/booking_ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/booking_ledger_engine/internal/middleware"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bookingctl",
	Short: "Calculate booking financials and journals from the command line",
	Long: `bookingctl runs the booking ledger engine locally.

It reads the same JSON payloads as the HTTP API, from a file or stdin:
  - financials: profit, VAT, commission and margin for one booking
  - journal:    the balanced five-line journal for one booking
  - batch:      per-booking results and a revenue-weighted summary

Example:
  echo '{"cost_amount":1000,"sale_amount":1500,"vat_rate":5,"commission_rate":10,"currency":"USD"}' | bookingctl financials`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	inputPath    string
	outputFormat string
	logLevel     string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "f", "-", "path to the JSON request ('-' reads stdin)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatJSON, "output format (json, yaml, text)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level written to stderr (debug, info, warn, error)")
}

// newEngine returns the calculation service and a context carrying a stderr logger.
func newEngine(cmd *cobra.Command) (portssvc.BookingSvcFacade, context.Context) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return services.NewBookingService(), middleware.WithLogger(ctx, logger)
}
