package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/booking_ledger_engine/internal/apperrors"
	"github.com/SscSPs/booking_ledger_engine/internal/core/domain"
	portssvc "github.com/SscSPs/booking_ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/booking_ledger_engine/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func booking(cost, sale, vatRate, commissionRate string) domain.BookingInput {
	return domain.NewBookingInput(dec(cost), dec(sale), dec(vatRate), dec(commissionRate), "usd")
}

// --- Test Suite ---
type BookingServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service portssvc.BookingSvcFacade
}

func (suite *BookingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.service = services.NewBookingService()
}

func (suite *BookingServiceTestSuite) assertDecimal(expected string, actual decimal.Decimal, field string) {
	suite.Truef(dec(expected).Equal(actual), "%s: expected %s, got %s", field, expected, actual.String())
}

// --- Financial calculator ---

func (suite *BookingServiceTestSuite) TestCalculateBookingFinancials_Example() {
	financials, err := suite.service.CalculateBookingFinancials(suite.ctx, booking("1000", "1500", "5", "10"))

	suite.Require().NoError(err)
	suite.Require().NotNil(financials)
	suite.assertDecimal("500", financials.GrossProfit, "gross_profit")
	suite.assertDecimal("1428.5714285714285714", financials.NetBeforeVAT, "net_before_vat")
	suite.assertDecimal("71.4285714285714286", financials.VATAmount, "vat_amount")
	suite.assertDecimal("1500", financials.TotalWithVAT, "total_with_vat")
	suite.assertDecimal("50", financials.CommissionAmount, "commission_amount")
	suite.assertDecimal("450", financials.NetProfit, "net_profit")
	suite.assertDecimal("30", financials.ProfitMarginPercentage, "profit_margin_percentage")
}

func (suite *BookingServiceTestSuite) TestCalculateBookingFinancials_VATIdentity() {
	inputs := []domain.BookingInput{
		booking("1000", "1500", "5", "10"),
		booking("0", "0.01", "7.7", "0"),
		booking("250.75", "333.33", "19", "12.5"),
		booking("10", "99999999.99", "21", "3"),
		booking("5", "1", "300", "50"),
		booking("1", "10", "-50", "0"),
	}

	for _, input := range inputs {
		financials, err := suite.service.CalculateBookingFinancials(suite.ctx, input)
		suite.Require().NoError(err)
		suite.Truef(financials.NetBeforeVAT.Add(financials.VATAmount).Equal(input.SaleAmount),
			"net + vat != sale for sale %s vat %s", input.SaleAmount, input.VATRate)
	}
}

func (suite *BookingServiceTestSuite) TestCalculateBookingFinancials_ZeroSaleHasZeroMargin() {
	financials, err := suite.service.CalculateBookingFinancials(suite.ctx, booking("100", "0", "5", "10"))

	suite.Require().NoError(err)
	suite.assertDecimal("-100", financials.GrossProfit, "gross_profit")
	suite.assertDecimal("-10", financials.CommissionAmount, "commission_amount")
	suite.assertDecimal("-90", financials.NetProfit, "net_profit")
	suite.True(financials.ProfitMarginPercentage.IsZero())
}

func (suite *BookingServiceTestSuite) TestCalculateBookingFinancials_LossGivesNegativeCommission() {
	financials, err := suite.service.CalculateBookingFinancials(suite.ctx, booking("1200", "1000", "0", "10"))

	suite.Require().NoError(err)
	suite.assertDecimal("-200", financials.GrossProfit, "gross_profit")
	suite.assertDecimal("-20", financials.CommissionAmount, "commission_amount")
	suite.assertDecimal("-180", financials.NetProfit, "net_profit")
	suite.assertDecimal("-18", financials.ProfitMarginPercentage, "profit_margin_percentage")
}

func (suite *BookingServiceTestSuite) TestCalculateBookingFinancials_ZeroVATDivisor() {
	financials, err := suite.service.CalculateBookingFinancials(suite.ctx, booking("1000", "1500", "-100", "10"))

	suite.Require().Error(err)
	suite.Nil(financials)
	suite.ErrorIs(err, apperrors.ErrDivisionByZero)
}

func (suite *BookingServiceTestSuite) TestCalculateBookingFinancials_FineRatesStayExact() {
	financials, err := suite.service.CalculateBookingFinancials(suite.ctx, booking("1400", "1500", "-99.99999999999999999", "0.0000000000000001"))

	suite.Require().NoError(err)
	suite.assertDecimal("15000000000000000000000", financials.NetBeforeVAT, "net_before_vat")
	suite.assertDecimal("0.0000000000000001", financials.CommissionAmount, "commission_amount")
	suite.assertDecimal("99.9999999999999999", financials.NetProfit, "net_profit")
}

func (suite *BookingServiceTestSuite) TestCalculateBookingFinancials_BlankCurrency() {
	input := domain.NewBookingInput(dec("1"), dec("2"), dec("0"), dec("0"), "   ")

	financials, err := suite.service.CalculateBookingFinancials(suite.ctx, input)

	suite.Require().Error(err)
	suite.Nil(financials)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Journal generator ---

func (suite *BookingServiceTestSuite) TestGenerateJournalEntries_Example() {
	journal, err := suite.service.GenerateJournalEntries(suite.ctx, booking("1000", "1500", "5", "10"))

	suite.Require().NoError(err)
	suite.Require().Len(journal.Entries, 5)

	wantCodes := []string{"1201", "4101", "2301", "5101", "2101"}
	for i, code := range wantCodes {
		suite.Equal(code, journal.Entries[i].AccountCode)
	}

	suite.Equal("Accounts Receivable - Customers", journal.Entries[0].AccountName)
	suite.assertDecimal("1500", journal.Entries[0].Debit, "receivable debit")
	suite.True(journal.Entries[0].Credit.IsZero())
	suite.assertDecimal("1428.5714285714285714", journal.Entries[1].Credit, "revenue credit")
	suite.assertDecimal("71.4285714285714286", journal.Entries[2].Credit, "vat credit")
	suite.assertDecimal("1000", journal.Entries[3].Debit, "cost of sales debit")
	suite.assertDecimal("1000", journal.Entries[4].Credit, "payable credit")
	suite.Equal(domain.Credit, journal.Entries[4].Type())

	suite.assertDecimal("2500", journal.TotalDebit, "total_debit")
	suite.assertDecimal("2500", journal.TotalCredit, "total_credit")
	suite.True(journal.IsBalanced)
}

func (suite *BookingServiceTestSuite) TestGenerateJournalEntries_AlwaysBalanced() {
	inputs := []domain.BookingInput{
		booking("0", "0", "0", "0"),
		booking("333.33", "1000.01", "13", "7"),
		booking("1500", "1000", "5", "10"),
		booking("0.01", "0.03", "3", "0"),
		booking("-50", "-70", "21", "5"),
	}

	for _, input := range inputs {
		journal, err := suite.service.GenerateJournalEntries(suite.ctx, input)
		suite.Require().NoError(err)
		suite.True(journal.TotalDebit.Equal(journal.TotalCredit), "debits must equal credits exactly")
		suite.True(journal.IsBalanced)
	}
}

func (suite *BookingServiceTestSuite) TestGenerateJournalEntries_MatchesCalculatorVAT() {
	input := booking("120", "777.77", "17.5", "4")

	financials, err := suite.service.CalculateBookingFinancials(suite.ctx, input)
	suite.Require().NoError(err)
	journal, err := suite.service.GenerateJournalEntries(suite.ctx, input)
	suite.Require().NoError(err)

	suite.True(financials.NetBeforeVAT.Equal(journal.Entries[1].Credit))
	suite.True(financials.VATAmount.Equal(journal.Entries[2].Credit))
}

func (suite *BookingServiceTestSuite) TestGenerateJournalEntries_ZeroVATDivisor() {
	journal, err := suite.service.GenerateJournalEntries(suite.ctx, booking("1000", "1500", "-100", "0"))

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrDivisionByZero)
}

// --- Batch aggregator ---

func (suite *BookingServiceTestSuite) TestCalculateBatch_RevenueWeightedMargin() {
	// A: margin 50% on revenue 200; B: margin 10% on revenue 1000.
	inputs := []domain.BookingInput{
		booking("100", "200", "0", "0"),
		booking("900", "1000", "0", "0"),
	}

	result, err := suite.service.CalculateBatch(suite.ctx, inputs)

	suite.Require().NoError(err)
	suite.Require().Len(result.Results, 2)
	suite.assertDecimal("50", result.Results[0].ProfitMarginPercentage, "margin A")
	suite.assertDecimal("10", result.Results[1].ProfitMarginPercentage, "margin B")

	summary := result.Summary
	suite.Equal(2, summary.BookingCount)
	suite.assertDecimal("1000", summary.TotalCost, "total_cost")
	suite.assertDecimal("1200", summary.TotalRevenue, "total_revenue")
	suite.assertDecimal("200", summary.TotalProfit, "total_profit")

	want := dec("200").Div(dec("1200")).Mul(decimal.NewFromInt(100))
	suite.True(want.Equal(summary.AverageProfitMargin), "got %s", summary.AverageProfitMargin)
	suite.False(summary.AverageProfitMargin.Equal(dec("30")), "must not be the simple mean of margins")
}

func (suite *BookingServiceTestSuite) TestCalculateBatch_SkipsFailingBooking() {
	inputs := []domain.BookingInput{
		booking("1000", "1500", "5", "10"),
		booking("50", "100", "-100", "10"),
		domain.NewBookingInput(dec("1"), dec("2"), dec("0"), dec("0"), ""),
		booking("200", "400", "0", "0"),
	}

	result, err := suite.service.CalculateBatch(suite.ctx, inputs)

	suite.Require().NoError(err)
	suite.Require().Len(result.Results, 2)
	suite.assertDecimal("450", result.Results[0].NetProfit, "first result")
	suite.assertDecimal("200", result.Results[1].NetProfit, "second result")

	suite.Require().Len(result.Failures, 2)
	suite.Equal(1, result.Failures[0].Index)
	suite.ErrorIs(result.Failures[0].Err, apperrors.ErrDivisionByZero)
	suite.Equal(2, result.Failures[1].Index)
	suite.ErrorIs(result.Failures[1].Err, apperrors.ErrValidation)

	summary := result.Summary
	suite.Equal(2, summary.BookingCount)
	suite.assertDecimal("1200", summary.TotalCost, "total_cost")
	suite.assertDecimal("1900", summary.TotalRevenue, "total_revenue")
	suite.assertDecimal("650", summary.TotalProfit, "total_profit")
	suite.assertDecimal("71.4285714285714286", summary.TotalVAT, "total_vat")
	suite.assertDecimal("50", summary.TotalCommission, "total_commission")
}

func (suite *BookingServiceTestSuite) TestCalculateBatch_Empty() {
	result, err := suite.service.CalculateBatch(suite.ctx, nil)

	suite.Require().NoError(err)
	suite.NotNil(result.Results)
	suite.Empty(result.Results)
	suite.Equal(0, result.Summary.BookingCount)
	suite.True(result.Summary.AverageProfitMargin.IsZero())
	suite.True(result.Summary.TotalRevenue.IsZero())
}

func TestBookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}
