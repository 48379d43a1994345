package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// LedgerAccount is one account of the fixed booking chart.
type LedgerAccount struct {
	Code string      `json:"code"`
	Name string      `json:"name"`
	Type AccountType `json:"type"`
}

// Accounts touched by a booking journal.
var (
	AccountsReceivable = LedgerAccount{Code: "1201", Name: "Accounts Receivable - Customers", Type: Asset}
	AccountsPayable    = LedgerAccount{Code: "2101", Name: "Accounts Payable - Suppliers", Type: Liability}
	VATPayable         = LedgerAccount{Code: "2301", Name: "VAT Payable", Type: Liability}
	SalesRevenue       = LedgerAccount{Code: "4101", Name: "Sales Revenue - Tourism Services", Type: Income}
	CostOfSales        = LedgerAccount{Code: "5101", Name: "Cost of Sales - Tourism Services", Type: Expense}
)

// BookingChart returns the account types of the booking chart keyed by account code.
func BookingChart() map[string]AccountType {
	return map[string]AccountType{
		AccountsReceivable.Code: AccountsReceivable.Type,
		AccountsPayable.Code:    AccountsPayable.Type,
		VATPayable.Code:         VATPayable.Type,
		SalesRevenue.Code:       SalesRevenue.Type,
		CostOfSales.Code:        CostOfSales.Type,
	}
}
