// Package tax implements federal and state income tax, the Social
// Security provisional-income taxability approximation, and IRMAA
// surcharge lookup (plus risk classification), per spec.md §4.5.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/registry"
)

// FederalTax walks the bracket schedule in order, accumulating
// min(income, maxIncome) - minIncome times rate until income is
// exhausted, per spec.md §4.5. Rounded to cents.
func FederalTax(taxableIncome decimal.Decimal, brackets []registry.Bracket) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, b := range brackets {
		if taxableIncome.LessThanOrEqual(b.MinIncome) {
			break
		}
		upper := b.MaxIncome
		var taxableInBracket decimal.Decimal
		if b.Unbounded || taxableIncome.LessThanOrEqual(upper) {
			taxableInBracket = taxableIncome.Sub(b.MinIncome)
		} else {
			taxableInBracket = upper.Sub(b.MinIncome)
		}
		total = total.Add(taxableInBracket.Mul(b.Rate))
	}
	return total.Round(2)
}
