package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/booking_ledger_engine/internal/core/domain"
	"github.com/SscSPs/booking_ledger_engine/internal/middleware"
	"github.com/SscSPs/booking_ledger_engine/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CalculateBatch calculates each booking independently and folds the successful ones
// into a summary. A booking that fails is skipped and recorded in Failures.
func (s *bookingService) CalculateBatch(ctx context.Context, inputs []domain.BookingInput) (*domain.BatchResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	result := &domain.BatchResult{
		Results: make([]domain.BookingFinancials, 0, len(inputs)),
	}
	totalCost := decimal.Zero
	totalRevenue := decimal.Zero
	totalProfit := decimal.Zero
	totalVAT := decimal.Zero
	totalCommission := decimal.Zero

	for i, input := range inputs {
		financials, err := calculateFinancials(input)
		if err != nil {
			logger.Warn("Skipping booking in batch",
				slog.Int("index", i),
				slog.String("error", err.Error()),
			)
			result.Failures = append(result.Failures, domain.BatchFailure{Index: i, Err: err})
			continue
		}

		totalCost = totalCost.Add(input.CostAmount)
		totalRevenue = totalRevenue.Add(input.SaleAmount)
		totalProfit = totalProfit.Add(financials.NetProfit)
		totalVAT = totalVAT.Add(financials.VATAmount)
		totalCommission = totalCommission.Add(financials.CommissionAmount)
		result.Results = append(result.Results, financials)
	}

	// Weighted by revenue, not the mean of the individual margins.
	result.Summary = domain.BatchSummary{
		TotalCost:           totalCost,
		TotalRevenue:        totalRevenue,
		TotalProfit:         totalProfit,
		TotalVAT:            totalVAT,
		TotalCommission:     totalCommission,
		AverageProfitMargin: accounting.RatioPercentage(totalProfit, totalRevenue),
		BookingCount:        len(result.Results),
	}

	logger.Debug("Batch calculated",
		slog.Int("input_count", len(inputs)),
		slog.Int("booking_count", result.Summary.BookingCount),
		slog.Int("skipped", len(result.Failures)),
	)
	return result, nil
}
