package reports

import (
	"github.com/shopspring/decimal"
)

// SafeRatio returns numerator / denominator, or 0 when denominator <= 0.
// A missing baseline reports "no change" instead of infinity.
func SafeRatio(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.GreaterThan(decimal.Zero) {
		return numerator.Div(denominator)
	}
	return decimal.Zero
}

// average is a null-safe AVG accumulator: no samples reads as 0.
type average struct {
	sum   decimal.Decimal
	count int64
}

func (a *average) add(v decimal.Decimal) {
	a.sum = a.sum.Add(v)
	a.count++
}

func (a *average) merge(other *average) {
	if other == nil {
		return
	}
	a.sum = a.sum.Add(other.sum)
	a.count += other.count
}

func (a *average) value() decimal.Decimal {
	if a == nil || a.count == 0 {
		return decimal.Zero
	}
	return a.sum.Div(decimal.NewFromInt(a.count))
}

// matchesFilter implements optional-filter semantics: an unset filter
// matches everything, a set one matches only the exact value.
// resolved is false when the row's dimension reference did not resolve.
func matchesFilter(filter *string, value string, resolved bool) bool {
	if filter == nil {
		return true
	}
	return resolved && value == *filter
}
