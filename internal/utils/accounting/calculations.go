package accounting

import (
	"fmt"

	"github.com/SscSPs/booking_ledger_engine/internal/apperrors"
	"github.com/SscSPs/booking_ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percentage returns rate percent of amount. The result is exact.
func Percentage(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(percentToFraction(rate))
}

// percentToFraction converts a percentage into a fraction without rounding.
func percentToFraction(rate decimal.Decimal) decimal.Decimal {
	return rate.Shift(-2)
}

// RatioPercentage returns numerator/denominator expressed as a percentage.
// A denominator that is not positive yields zero.
func RatioPercentage(numerator, denominator decimal.Decimal) decimal.Decimal {
	if !denominator.IsPositive() {
		return decimal.Zero
	}
	return numerator.Div(denominator).Mul(hundred)
}

// SplitVATInclusive backs the net amount and the VAT portion out of a gross amount that
// already includes VAT at vatRate percent. net + vat equals gross exactly.
// This is the only VAT formula used by the calculator and the journal generator.
func SplitVATInclusive(gross, vatRate decimal.Decimal) (net decimal.Decimal, vat decimal.Decimal, err error) {
	divisor := decimal.NewFromInt(1).Add(percentToFraction(vatRate))
	if divisor.IsZero() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: VAT divisor is zero for vat_rate %s", apperrors.ErrDivisionByZero, vatRate.String())
	}

	net = gross.Div(divisor)
	vat = gross.Sub(net)
	return net, vat, nil
}

// CalculateSignedAmount applies the correct sign to a journal line based on account type and side.
func CalculateSignedAmount(entry domain.JournalEntry, accountType domain.AccountType) (decimal.Decimal, error) {
	var isDebit bool
	switch entry.Type() {
	case domain.Debit:
		isDebit = true
	case domain.Credit:
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type '%s' for account %s", entry.Type(), entry.AccountCode)
	}

	signedAmount := entry.Amount()

	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to ASSET/EXPENSE -> Negative (-)
	// DEBIT to LIABILITY/EQUITY/INCOME -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/INCOME -> Positive (+)
	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Income:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account %s", accountType, entry.AccountCode)
	}
	return signedAmount, nil
}

// isDebitNormal reports whether a debit increases the balance of accounts of this type.
func isDebitNormal(accountType domain.AccountType) bool {
	return accountType == domain.Asset || accountType == domain.Expense
}

// ValidateJournalBalance checks that every line posts to a known account with only one side set
// and that the journal keeps the accounting equation: the signed change of asset and expense
// accounts equals the signed change of liability, equity and income accounts exactly.
func ValidateJournalBalance(entries []domain.JournalEntry, accountTypes map[string]domain.AccountType) error {
	if len(entries) < 2 {
		return fmt.Errorf("journal must have at least two entries")
	}

	sum := decimal.Zero
	for i, entry := range entries {
		accountType, ok := accountTypes[entry.AccountCode]
		if !ok {
			return fmt.Errorf("account type not found for account code %s (entry %d)", entry.AccountCode, i)
		}
		if !entry.Debit.IsZero() && !entry.Credit.IsZero() {
			return fmt.Errorf("entry %d for account %s has both debit and credit set", i, entry.AccountCode)
		}

		signedAmount, err := CalculateSignedAmount(entry, accountType)
		if err != nil {
			return fmt.Errorf("error calculating signed amount for entry %d: %w", i, err)
		}

		if isDebitNormal(accountType) {
			sum = sum.Add(signedAmount)
		} else {
			sum = sum.Sub(signedAmount)
		}
	}

	if !sum.IsZero() {
		return fmt.Errorf("journal entries do not balance to zero: sum is %s", sum.String())
	}
	return nil
}
