package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/booking_ledger_engine/internal/apperrors"
	"github.com/SscSPs/booking_ledger_engine/internal/core/domain"
	"github.com/SscSPs/booking_ledger_engine/internal/dto"
	"github.com/SscSPs/booking_ledger_engine/internal/middleware"
	"github.com/SscSPs/booking_ledger_engine/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// bookingFlags describes a single booking on the command line instead of a JSON payload.
type bookingFlags struct {
	cost       float64
	sale       float64
	vatRate    float64
	commission float64
	currency   string
}

var amountFlagNames = []string{"cost", "sale", "vat", "commission"}

func addBookingFlags(cmd *cobra.Command, f *bookingFlags) {
	cmd.Flags().Float64Var(&f.cost, "cost", 0, "cost amount (use instead of --input)")
	cmd.Flags().Float64Var(&f.sale, "sale", 0, "sale amount, VAT included")
	cmd.Flags().Float64Var(&f.vatRate, "vat", 0, "VAT rate in percent")
	cmd.Flags().Float64Var(&f.commission, "commission", 0, "commission rate in percent of gross profit")
	cmd.Flags().StringVar(&f.currency, "currency", "", "currency code")
}

func (f *bookingFlags) changed(cmd *cobra.Command) bool {
	for _, name := range append(amountFlagNames, "currency") {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// resolveBooking builds the booking from flags when any is given, otherwise from the JSON input.
func resolveBooking(ctx context.Context, cmd *cobra.Command, f *bookingFlags) (domain.BookingInput, error) {
	if !f.changed(cmd) {
		data, err := readInput(cmd)
		if err != nil {
			return domain.BookingInput{}, &dto.DecodeError{Msg: err.Error()}
		}
		req, err := dto.DecodeBookingRequest(data)
		if err != nil {
			return domain.BookingInput{}, err
		}
		return mapping.ToDomainBookingInput(*req), nil
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	values := []float64{f.cost, f.sale, f.vatRate, f.commission}
	amounts := make([]decimal.Decimal, len(values))
	for i, v := range values {
		d, err := mapping.FromWireAmount(v)
		if errors.Is(err, apperrors.ErrConversion) {
			logger.Warn("Flag value is not a finite number, using zero", slog.String("flag", amountFlagNames[i]), slog.String("error", err.Error()))
		}
		amounts[i] = d
	}
	return domain.NewBookingInput(amounts[0], amounts[1], amounts[2], amounts[3], f.currency), nil
}
