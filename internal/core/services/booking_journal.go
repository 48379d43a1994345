package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/booking_ledger_engine/internal/core/domain"
	"github.com/SscSPs/booking_ledger_engine/internal/middleware"
	"github.com/SscSPs/booking_ledger_engine/internal/utils/accounting"
)

// GenerateJournalEntries builds the journal for a booking in a fixed order:
// receivable, revenue, VAT payable, cost of sales, payable.
func (s *bookingService) GenerateJournalEntries(ctx context.Context, input domain.BookingInput) (*domain.JournalEntries, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := input.Validate(); err != nil {
		logger.Warn("Invalid booking for journal generation", slog.String("error", err.Error()))
		return nil, err
	}

	netBeforeVAT, vatAmount, err := accounting.SplitVATInclusive(input.SaleAmount, input.VATRate)
	if err != nil {
		logger.Warn("Journal could not be generated", slog.String("error", err.Error()))
		return nil, fmt.Errorf("generate journal entries: %w", err)
	}

	entries := []domain.JournalEntry{
		domain.NewDebitEntry(domain.AccountsReceivable, input.SaleAmount, "Customer invoice for booking"),
		domain.NewCreditEntry(domain.SalesRevenue, netBeforeVAT, "Revenue from booking (net of VAT)"),
		domain.NewCreditEntry(domain.VATPayable, vatAmount, "VAT collected on sale"),
		domain.NewDebitEntry(domain.CostOfSales, input.CostAmount, "Cost paid to supplier"),
		domain.NewCreditEntry(domain.AccountsPayable, input.CostAmount, "Amount due to supplier"),
	}

	if err := accounting.ValidateJournalBalance(entries, domain.BookingChart()); err != nil {
		logger.Error("Generated journal failed balance check", slog.String("error", err.Error()))
		return nil, fmt.Errorf("generate journal entries: %w", err)
	}

	journal := domain.NewJournalEntries(entries)
	logger.Debug("Journal generated",
		slog.String("total_debit", journal.TotalDebit.String()),
		slog.String("total_credit", journal.TotalCredit.String()),
	)
	return &journal, nil
}
