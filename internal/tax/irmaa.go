package tax

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/registry"
)

// IRMAAWarningDistance is the MAGI distance (in dollars) from the next
// surcharge tier within which a year is classified Warning rather than
// Safe.
const IRMAAWarningDistance = 10000

// IRMAASurcharge finds the tier whose [minMAGI, maxMAGI) contains magi and
// returns tier.monthlyMaxSurcharge x 12, per spec.md §4.5. No matching
// tier returns zero.
func IRMAASurcharge(magi decimal.Decimal, tiers []registry.IRMAATier) decimal.Decimal {
	for _, tier := range tiers {
		if magi.LessThan(tier.MinMAGI) {
			continue
		}
		if tier.Unbounded || magi.LessThan(tier.MaxMAGI) {
			return tier.MonthlyMaxSurcharge.Mul(decimal.NewFromInt(12))
		}
	}
	return decimal.Zero
}

// RiskTier classifies how close a year's MAGI sits to crossing into a
// higher IRMAA surcharge tier: Safe, Warning (within IRMAAWarningDistance
// of the next tier), or Breach (already in a surcharge-bearing tier).
type RiskTier string

const (
	RiskSafe    RiskTier = "Safe"
	RiskWarning RiskTier = "Warning"
	RiskBreach  RiskTier = "Breach"
)

// ClassifyIRMAARisk reports the risk tier for magi against tiers and the
// dollar distance to the next tier boundary (zero once already breached).
func ClassifyIRMAARisk(magi decimal.Decimal, tiers []registry.IRMAATier) (RiskTier, decimal.Decimal) {
	if len(tiers) == 0 {
		return RiskSafe, decimal.Zero
	}

	for i, tier := range tiers {
		if magi.LessThan(tier.MinMAGI) {
			continue
		}
		if tier.Unbounded || magi.LessThan(tier.MaxMAGI) {
			if tier.MonthlyMaxSurcharge.IsPositive() {
				return RiskBreach, decimal.Zero
			}
			// Still in the zero-surcharge tier; measure distance to the
			// next tier's threshold.
			if i+1 < len(tiers) {
				distance := tiers[i+1].MinMAGI.Sub(magi)
				if distance.LessThanOrEqual(decimal.NewFromInt(IRMAAWarningDistance)) {
					return RiskWarning, distance
				}
				return RiskSafe, distance
			}
			return RiskSafe, decimal.Zero
		}
	}
	return RiskSafe, decimal.Zero
}
