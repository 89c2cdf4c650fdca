// Package fers implements FERS eligibility classification, the annuity
// formula (including the 1.0%/1.1% multiplier rule and MRA+10 reduction),
// and the Special Retirement Supplement, per spec.md §4.3.
package fers

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/pkg/dateutil"
)

// ClassifyEligibility classifies retirement eligibility given age-at-retirement
// (decimal years) and years of creditable service. Ties prefer unreduced
// forms over reduced forms.
func ClassifyEligibility(ageAtRetirement float64, serviceYears float64, birthYear int) domain.EligibilityClass {
	mra := dateutil.MinimumRetirementAgeDecimal(birthYear)

	switch {
	case ageAtRetirement >= 62 && serviceYears >= 5:
		return domain.EligibilityAge62Plus5
	case ageAtRetirement >= 60 && serviceYears >= 20:
		return domain.EligibilityAge60Plus20
	case ageAtRetirement >= mra && serviceYears >= 30:
		return domain.EligibilityMRAPlus30
	case ageAtRetirement >= mra && serviceYears >= 10:
		return domain.EligibilityMRAPlus10
	default:
		return domain.EligibilityNone
	}
}

// AnnuityMultiplier returns 1.1% when age >= 62 and service >= 20, else 1.0%.
func AnnuityMultiplier(ageAtRetirement float64, serviceYears float64) decimal.Decimal {
	if ageAtRetirement >= 62 && serviceYears >= 20 {
		return decimal.NewFromFloat(0.011)
	}
	return decimal.NewFromFloat(0.010)
}

// MRA10ReductionRate is the per-full-year-under-62 reduction applied to
// MRA+10-reduced annuities.
const MRA10ReductionRate = 0.05

// GrossAnnuity computes High-3 x service-years x multiplier, applying the
// MRA+10 reduction (5% per full year under 62, floored at zero) when
// eligibility is MRA+10-reduced.
func GrossAnnuity(high3 decimal.Decimal, serviceYears float64, ageAtRetirement float64, eligibility domain.EligibilityClass) decimal.Decimal {
	multiplier := AnnuityMultiplier(ageAtRetirement, serviceYears)
	base := high3.Mul(decimal.NewFromFloat(serviceYears)).Mul(multiplier)

	if eligibility != domain.EligibilityMRAPlus10 {
		return base
	}

	yearsUnder62 := 62 - int(ageAtRetirement)
	if yearsUnder62 <= 0 {
		return base
	}
	reduction := decimal.NewFromFloat(float64(yearsUnder62) * MRA10ReductionRate)
	factor := decimal.NewFromInt(1).Sub(reduction)
	if factor.IsNegative() {
		factor = decimal.Zero
	}
	return base.Mul(factor)
}

// SupplementEligible reports whether the Special Retirement Supplement
// applies at the given age: only when age < 62 and eligibility is MRA+30
// or Age60+20.
func SupplementEligible(age int, eligibility domain.EligibilityClass) bool {
	if age >= 62 {
		return false
	}
	return eligibility == domain.EligibilityMRAPlus30 || eligibility == domain.EligibilityAge60Plus20
}

// AnnualSupplement computes the Special Retirement Supplement:
// estimatedSSAt62Monthly x min(federalServiceYears, 40) / 40 x 12.
func AnnualSupplement(estimatedSSAt62Monthly decimal.Decimal, federalServiceYears float64) decimal.Decimal {
	cappedYears := federalServiceYears
	if cappedYears > 40 {
		cappedYears = 40
	}
	fraction := decimal.NewFromFloat(cappedYears).Div(decimal.NewFromInt(40))
	return estimatedSSAt62Monthly.Mul(fraction).Mul(decimal.NewFromInt(12))
}
