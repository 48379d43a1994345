package mapping

import (
	"fmt"
	"math"

	"github.com/SscSPs/booking_ledger_engine/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ToWireAmount converts an exact decimal into the float64 used on the wire.
// This is the only place where precision may be lost. A value that does not fit
// in a finite float64 is written as 0 and reported with apperrors.ErrConversion.
func ToWireAmount(d decimal.Decimal) (float64, error) {
	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrConversion, d.String())
	}
	return f, nil
}

// FromWireAmount converts a float64 into a decimal. NaN and infinities become zero
// and are reported with apperrors.ErrConversion.
func FromWireAmount(f float64) (decimal.Decimal, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrConversion, f)
	}
	return decimal.NewFromFloat(f), nil
}

// wireConverter converts many amounts and remembers which fields fell back to zero.
type wireConverter struct {
	defaulted []string
}

func (c *wireConverter) amount(field string, d decimal.Decimal) float64 {
	f, err := ToWireAmount(d)
	if err != nil {
		c.defaulted = append(c.defaulted, field)
	}
	return f
}
