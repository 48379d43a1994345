package dto

import (
	"github.com/shopspring/decimal"
)

// BookingRequest is the wire form of a single booking. Numbers are decoded straight
// into decimals, so no binary floating point is involved on the way in.
// @Description Amounts and rates may be sent as JSON numbers or as quoted decimal strings (e.g. "1500.25").
// @Description currency is trimmed and upper-cased; a blank currency is rejected with 400.
type BookingRequest struct {
	CostAmount     *decimal.Decimal `json:"cost_amount" binding:"required"`
	SaleAmount     *decimal.Decimal `json:"sale_amount" binding:"required"`
	VATRate        *decimal.Decimal `json:"vat_rate" binding:"required"`
	CommissionRate *decimal.Decimal `json:"commission_rate" binding:"required"`
	Currency       *string          `json:"currency" binding:"required"`
}

// BatchBookingRequest is the wire form of a batch calculation request.
type BatchBookingRequest struct {
	Bookings []BookingRequest `json:"bookings" binding:"required,dive"`
}

// BookingFinancialsResponse defines the financial figures returned for a booking.
// Amounts are exact until they are converted to float64 for this response.
type BookingFinancialsResponse struct {
	GrossProfit            float64 `json:"gross_profit" yaml:"gross_profit"`
	VATAmount              float64 `json:"vat_amount" yaml:"vat_amount"`
	NetBeforeVAT           float64 `json:"net_before_vat" yaml:"net_before_vat"`
	TotalWithVAT           float64 `json:"total_with_vat" yaml:"total_with_vat"`
	CommissionAmount       float64 `json:"commission_amount" yaml:"commission_amount"`
	NetProfit              float64 `json:"net_profit" yaml:"net_profit"`
	ProfitMarginPercentage float64 `json:"profit_margin_percentage" yaml:"profit_margin_percentage"`
}

// JournalEntryResponse is one journal line.
type JournalEntryResponse struct {
	AccountCode string  `json:"account_code" yaml:"account_code"`
	AccountName string  `json:"account_name" yaml:"account_name"`
	Debit       float64 `json:"debit" yaml:"debit"`
	Credit      float64 `json:"credit" yaml:"credit"`
	Description string  `json:"description" yaml:"description"`
}

// JournalEntriesResponse is the journal generated for a booking.
type JournalEntriesResponse struct {
	Entries     []JournalEntryResponse `json:"entries" yaml:"entries"`
	TotalDebit  float64                `json:"total_debit" yaml:"total_debit"`
	TotalCredit float64                `json:"total_credit" yaml:"total_credit"`
	IsBalanced  bool                   `json:"is_balanced" yaml:"is_balanced"`
}

// BatchSummaryResponse aggregates a batch.
type BatchSummaryResponse struct {
	TotalCost           float64 `json:"total_cost" yaml:"total_cost"`
	TotalRevenue        float64 `json:"total_revenue" yaml:"total_revenue"`
	TotalProfit         float64 `json:"total_profit" yaml:"total_profit"`
	TotalVAT            float64 `json:"total_vat" yaml:"total_vat"`
	TotalCommission     float64 `json:"total_commission" yaml:"total_commission"`
	AverageProfitMargin float64 `json:"average_profit_margin" yaml:"average_profit_margin"`
	BookingCount        int     `json:"booking_count" yaml:"booking_count"`
}

// BatchBookingResponse is returned for a batch calculation.
type BatchBookingResponse struct {
	Results []BookingFinancialsResponse `json:"results" yaml:"results"`
	Summary BatchSummaryResponse        `json:"summary" yaml:"summary"`
}

// ErrorResponse is the body returned whenever a call fails.
type ErrorResponse struct {
	Error string `json:"error" yaml:"error"`
}
