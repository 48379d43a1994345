package mapping

import (
	"fmt"

	"github.com/SscSPs/booking_ledger_engine/internal/core/domain"
	"github.com/SscSPs/booking_ledger_engine/internal/dto"
	"github.com/shopspring/decimal"
)

// ToDomainBookingInput converts a decoded booking request into a normalized domain booking.
// Fields left nil by the caller become zero.
func ToDomainBookingInput(req dto.BookingRequest) domain.BookingInput {
	currency := ""
	if req.Currency != nil {
		currency = *req.Currency
	}
	return domain.NewBookingInput(
		derefDecimal(req.CostAmount),
		derefDecimal(req.SaleAmount),
		derefDecimal(req.VATRate),
		derefDecimal(req.CommissionRate),
		currency,
	)
}

// ToDomainBookingInputs converts the bookings of a batch request, preserving order.
func ToDomainBookingInputs(req dto.BatchBookingRequest) []domain.BookingInput {
	inputs := make([]domain.BookingInput, len(req.Bookings))
	for i, b := range req.Bookings {
		inputs[i] = ToDomainBookingInput(b)
	}
	return inputs
}

// ToBookingFinancialsResponse converts calculated financials to their wire form.
// The second return value lists the fields that were written as zero because they
// could not be represented.
func ToBookingFinancialsResponse(f domain.BookingFinancials) (dto.BookingFinancialsResponse, []string) {
	c := &wireConverter{}
	resp := toBookingFinancialsResponse(c, "", f)
	return resp, c.defaulted
}

func toBookingFinancialsResponse(c *wireConverter, prefix string, f domain.BookingFinancials) dto.BookingFinancialsResponse {
	return dto.BookingFinancialsResponse{
		GrossProfit:            c.amount(prefix+"gross_profit", f.GrossProfit),
		VATAmount:              c.amount(prefix+"vat_amount", f.VATAmount),
		NetBeforeVAT:           c.amount(prefix+"net_before_vat", f.NetBeforeVAT),
		TotalWithVAT:           c.amount(prefix+"total_with_vat", f.TotalWithVAT),
		CommissionAmount:       c.amount(prefix+"commission_amount", f.CommissionAmount),
		NetProfit:              c.amount(prefix+"net_profit", f.NetProfit),
		ProfitMarginPercentage: c.amount(prefix+"profit_margin_percentage", f.ProfitMarginPercentage),
	}
}

// ToJournalEntriesResponse converts a generated journal to its wire form.
func ToJournalEntriesResponse(j domain.JournalEntries) (dto.JournalEntriesResponse, []string) {
	c := &wireConverter{}
	entries := make([]dto.JournalEntryResponse, len(j.Entries))
	for i, e := range j.Entries {
		prefix := fmt.Sprintf("entries[%d].", i)
		entries[i] = dto.JournalEntryResponse{
			AccountCode: e.AccountCode,
			AccountName: e.AccountName,
			Debit:       c.amount(prefix+"debit", e.Debit),
			Credit:      c.amount(prefix+"credit", e.Credit),
			Description: e.Description,
		}
	}

	resp := dto.JournalEntriesResponse{
		Entries:     entries,
		TotalDebit:  c.amount("total_debit", j.TotalDebit),
		TotalCredit: c.amount("total_credit", j.TotalCredit),
		IsBalanced:  j.IsBalanced,
	}
	return resp, c.defaulted
}

// ToBatchBookingResponse converts a batch result to its wire form. Skipped bookings
// are not part of the wire schema.
func ToBatchBookingResponse(r domain.BatchResult) (dto.BatchBookingResponse, []string) {
	c := &wireConverter{}
	results := make([]dto.BookingFinancialsResponse, len(r.Results))
	for i, f := range r.Results {
		results[i] = toBookingFinancialsResponse(c, fmt.Sprintf("results[%d].", i), f)
	}

	s := r.Summary
	resp := dto.BatchBookingResponse{
		Results: results,
		Summary: dto.BatchSummaryResponse{
			TotalCost:           c.amount("summary.total_cost", s.TotalCost),
			TotalRevenue:        c.amount("summary.total_revenue", s.TotalRevenue),
			TotalProfit:         c.amount("summary.total_profit", s.TotalProfit),
			TotalVAT:            c.amount("summary.total_vat", s.TotalVAT),
			TotalCommission:     c.amount("summary.total_commission", s.TotalCommission),
			AverageProfitMargin: c.amount("summary.average_profit_margin", s.AverageProfitMargin),
			BookingCount:        s.BookingCount,
		},
	}
	return resp, c.defaulted
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
