package domain

import "github.com/shopspring/decimal"

// BatchSummary aggregates the bookings of a batch that calculated successfully.
type BatchSummary struct {
	TotalCost           decimal.Decimal `json:"total_cost"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalProfit         decimal.Decimal `json:"total_profit"`
	TotalVAT            decimal.Decimal `json:"total_vat"`
	TotalCommission     decimal.Decimal `json:"total_commission"`
	AverageProfitMargin decimal.Decimal `json:"average_profit_margin"`
	BookingCount        int             `json:"booking_count"`
}

// BatchFailure records a booking that was left out of a batch.
type BatchFailure struct {
	Index int   // position in the input sequence
	Err   error // reason the booking was skipped
}

// BatchResult is the outcome of a batch calculation. Results keep the input order
// of the bookings that succeeded.
type BatchResult struct {
	Results  []BookingFinancials `json:"results"`
	Summary  BatchSummary        `json:"summary"`
	Failures []BatchFailure      `json:"-"`
}
