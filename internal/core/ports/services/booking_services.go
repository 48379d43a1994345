package services

import (
	"context"

	"github.com/SscSPs/booking_ledger_engine/internal/core/domain"
)

// BookingCalculatorSvc computes the financial figures of a single booking.
type BookingCalculatorSvc interface {
	// CalculateBookingFinancials derives profit, VAT, commission and margin for a booking.
	CalculateBookingFinancials(ctx context.Context, input domain.BookingInput) (*domain.BookingFinancials, error)
}

// JournalGeneratorSvc derives the double-entry journal of a booking.
type JournalGeneratorSvc interface {
	// GenerateJournalEntries builds the five-line journal for a booking.
	GenerateJournalEntries(ctx context.Context, input domain.BookingInput) (*domain.JournalEntries, error)
}

// BatchCalculatorSvc aggregates many bookings.
type BatchCalculatorSvc interface {
	// CalculateBatch calculates every booking and folds the successful ones into a summary.
	// Individual booking failures are reported in the result, never as an error.
	CalculateBatch(ctx context.Context, inputs []domain.BookingInput) (*domain.BatchResult, error)
}

// BookingSvcFacade combines all booking calculation interfaces.
type BookingSvcFacade interface {
	BookingCalculatorSvc
	JournalGeneratorSvc
	BatchCalculatorSvc
}
