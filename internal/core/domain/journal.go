package domain

import "github.com/shopspring/decimal"

// balanceTolerance is the largest debit/credit difference still reported as balanced.
var balanceTolerance = decimal.New(1, -2)

// JournalEntry is a single line of a booking journal. Only one of Debit and Credit is set.
type JournalEntry struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
	Side        TransactionType `json:"-"`
}

// NewDebitEntry creates a debit line against the given account.
func NewDebitEntry(account LedgerAccount, amount decimal.Decimal, description string) JournalEntry {
	return JournalEntry{
		AccountCode: account.Code,
		AccountName: account.Name,
		Debit:       amount,
		Credit:      decimal.Zero,
		Description: description,
		Side:        Debit,
	}
}

// NewCreditEntry creates a credit line against the given account.
func NewCreditEntry(account LedgerAccount, amount decimal.Decimal, description string) JournalEntry {
	return JournalEntry{
		AccountCode: account.Code,
		AccountName: account.Name,
		Debit:       decimal.Zero,
		Credit:      amount,
		Description: description,
		Side:        Credit,
	}
}

// Type reports the side of the entry. Lines built without a side are inferred from
// their amounts, a line with no credit amount being a debit.
func (e JournalEntry) Type() TransactionType {
	if e.Side != "" {
		return e.Side
	}
	if e.Credit.IsZero() {
		return Debit
	}
	return Credit
}

// Amount returns the value on the entry's side.
func (e JournalEntry) Amount() decimal.Decimal {
	if e.Type() == Credit {
		return e.Credit
	}
	return e.Debit
}

// JournalEntries is the ordered journal derived from one booking, with its totals.
type JournalEntries struct {
	Entries     []JournalEntry  `json:"entries"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	IsBalanced  bool            `json:"is_balanced"`
}

// NewJournalEntries totals the given entries. The totals are always derived
// from the entries and never supplied by the caller.
func NewJournalEntries(entries []JournalEntry) JournalEntries {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}

	return JournalEntries{
		Entries:     entries,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		IsBalanced:  totalDebit.Sub(totalCredit).Abs().LessThan(balanceTolerance),
	}
}
