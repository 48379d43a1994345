package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/booking_ledger_engine/internal/core/domain"
	portssvc "github.com/SscSPs/booking_ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/booking_ledger_engine/internal/middleware"
	"github.com/SscSPs/booking_ledger_engine/internal/utils/accounting"
)

// bookingService is the stateless booking calculation engine. It holds no
// configuration and is safe for concurrent use.
type bookingService struct{}

// NewBookingService creates a new booking calculation service.
func NewBookingService() portssvc.BookingSvcFacade {
	return &bookingService{}
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

// CalculateBookingFinancials derives profit, VAT, commission and margin for a single booking.
func (s *bookingService) CalculateBookingFinancials(ctx context.Context, input domain.BookingInput) (*domain.BookingFinancials, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	financials, err := calculateFinancials(input)
	if err != nil {
		logger.Warn("Booking financials could not be calculated", slog.String("error", err.Error()))
		return nil, fmt.Errorf("calculate booking financials: %w", err)
	}

	logger.Debug("Booking financials calculated",
		slog.String("currency", input.Currency),
		slog.String("net_profit", financials.NetProfit.String()),
	)
	return &financials, nil
}

// calculateFinancials is the pure calculation shared by the single and batch entry points.
func calculateFinancials(input domain.BookingInput) (domain.BookingFinancials, error) {
	if err := input.Validate(); err != nil {
		return domain.BookingFinancials{}, err
	}

	sale := input.SaleAmount
	grossProfit := sale.Sub(input.CostAmount)

	netBeforeVAT, vatAmount, err := accounting.SplitVATInclusive(sale, input.VATRate)
	if err != nil {
		return domain.BookingFinancials{}, err
	}

	// Commission is taken from the profit, so a loss yields a negative commission.
	commission := accounting.Percentage(grossProfit, input.CommissionRate)
	netProfit := grossProfit.Sub(commission)

	return domain.BookingFinancials{
		GrossProfit:            grossProfit,
		VATAmount:              vatAmount,
		NetBeforeVAT:           netBeforeVAT,
		TotalWithVAT:           sale,
		CommissionAmount:       commission,
		NetProfit:              netProfit,
		ProfitMarginPercentage: accounting.RatioPercentage(netProfit, sale),
	}, nil
}
