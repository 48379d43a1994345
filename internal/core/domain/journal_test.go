package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalEntry_Type(t *testing.T) {
	assert.Equal(t, Debit, NewDebitEntry(CostOfSales, decimal.Zero, "").Type())
	assert.Equal(t, Credit, NewCreditEntry(VATPayable, decimal.Zero, "").Type())

	// Without an explicit side the amounts decide.
	assert.Equal(t, Credit, JournalEntry{Credit: decimal.NewFromInt(5)}.Type())
	assert.Equal(t, Debit, JournalEntry{Debit: decimal.NewFromInt(5)}.Type())
}

func TestJournalEntry_Amount(t *testing.T) {
	assert.True(t, NewCreditEntry(SalesRevenue, decimal.NewFromInt(7), "").Amount().Equal(decimal.NewFromInt(7)))
	assert.True(t, NewDebitEntry(AccountsReceivable, decimal.NewFromInt(9), "").Amount().Equal(decimal.NewFromInt(9)))
}

func TestNewJournalEntries(t *testing.T) {
	tests := []struct {
		name         string
		debit        string
		credit       string
		wantBalanced bool
	}{
		{name: "equal", debit: "100", credit: "100", wantBalanced: true},
		{name: "within tolerance", debit: "100", credit: "99.995", wantBalanced: true},
		{name: "at tolerance", debit: "100", credit: "99.99", wantBalanced: false},
		{name: "off", debit: "100", credit: "90", wantBalanced: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journal := NewJournalEntries([]JournalEntry{
				NewDebitEntry(AccountsReceivable, decimal.RequireFromString(tt.debit), ""),
				NewCreditEntry(SalesRevenue, decimal.RequireFromString(tt.credit), ""),
			})

			assert.True(t, journal.TotalDebit.Equal(decimal.RequireFromString(tt.debit)))
			assert.True(t, journal.TotalCredit.Equal(decimal.RequireFromString(tt.credit)))
			assert.Equal(t, tt.wantBalanced, journal.IsBalanced)
		})
	}
}

func TestBookingInput_Validate(t *testing.T) {
	input := NewBookingInput(decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, " eur ")
	assert.Equal(t, "EUR", input.Currency)
	assert.NoError(t, input.Validate())

	blank := NewBookingInput(decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, "\t")
	assert.Error(t, blank.Validate())
}
