package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/booking_ledger_engine/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BookingInput is a single tourism booking to be costed. Rates are percentages.
type BookingInput struct {
	CostAmount     decimal.Decimal `json:"cost_amount"`
	SaleAmount     decimal.Decimal `json:"sale_amount"`
	VATRate        decimal.Decimal `json:"vat_rate"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	Currency       string          `json:"currency"`
}

// NewBookingInput builds a normalized BookingInput. The currency code is trimmed and upper-cased.
func NewBookingInput(cost, sale, vatRate, commissionRate decimal.Decimal, currency string) BookingInput {
	return BookingInput{
		CostAmount:     cost,
		SaleAmount:     sale,
		VATRate:        vatRate,
		CommissionRate: commissionRate,
		Currency:       strings.ToUpper(strings.TrimSpace(currency)),
	}
}

// Validate performs sanity checks on the booking.
// Rates outside 0-100 and negative amounts are accepted.
func (b BookingInput) Validate() error {
	if strings.TrimSpace(b.Currency) == "" {
		return fmt.Errorf("%w: currency is required", apperrors.ErrValidation)
	}
	return nil
}

// BookingFinancials holds the figures derived from a BookingInput at full decimal precision.
type BookingFinancials struct {
	GrossProfit            decimal.Decimal `json:"gross_profit"`
	VATAmount              decimal.Decimal `json:"vat_amount"`
	NetBeforeVAT           decimal.Decimal `json:"net_before_vat"`
	TotalWithVAT           decimal.Decimal `json:"total_with_vat"`
	CommissionAmount       decimal.Decimal `json:"commission_amount"`
	NetProfit              decimal.Decimal `json:"net_profit"`
	ProfitMarginPercentage decimal.Decimal `json:"profit_margin_percentage"`
}
