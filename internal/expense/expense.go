// Package expense implements the annual expense projection: category
// summation, inflation compounding, and the Blanchett retirement
// spending smile curve, per spec.md §4.6.
package expense

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/engineerr"
)

const (
	defaultGoGoEndAge       = 75
	defaultGoSlowEndAge     = 85
)

var (
	defaultGoSlowMultiplier = decimal.NewFromFloat(0.85)
	defaultNoGoMultiplier   = decimal.NewFromFloat(0.75)
)

// BaseAnnualExpenses sums every category's annual amount.
func BaseAnnualExpenses(categories []domain.ExpenseCategory) decimal.Decimal {
	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(c.AnnualAmount)
	}
	return total
}

// PhaseMultiplier returns the Blanchett smile-curve multiplier for age,
// using profile.SmileCurve overrides when present and sensible defaults
// otherwise. Returns 1.0 when the smile curve is disabled.
func PhaseMultiplier(profile domain.ExpenseProfile, age int) decimal.Decimal {
	if !profile.SmileCurveEnabled {
		return decimal.NewFromInt(1)
	}

	goGoEnd := defaultGoGoEndAge
	goSlowEnd := defaultGoSlowEndAge
	goSlowMult := defaultGoSlowMultiplier
	noGoMult := defaultNoGoMultiplier

	if sc := profile.SmileCurve; sc != nil {
		if sc.GoGoEndAge != 0 {
			goGoEnd = sc.GoGoEndAge
		}
		if sc.GoSlowEndAge != 0 {
			goSlowEnd = sc.GoSlowEndAge
		}
		if !sc.GoSlowMultiplier.IsZero() {
			goSlowMult = sc.GoSlowMultiplier
		}
		if !sc.NoGoMultiplier.IsZero() {
			noGoMult = sc.NoGoMultiplier
		}
	}

	switch {
	case age < goGoEnd:
		return decimal.NewFromInt(1)
	case age < goSlowEnd:
		return goSlowMult
	default:
		return noGoMult
	}
}

// AnnualExpenses computes expenses(y) = base x (1+inflationRate)^(y-baseYear)
// x phaseMultiplier(age), per spec.md §4.6. Emits a warning (not an error)
// when inflationRate falls outside [0.01, 0.06].
func AnnualExpenses(profile domain.ExpenseProfile, projectionYear, age int) (decimal.Decimal, []engineerr.Warning) {
	var warnings []engineerr.Warning
	low := decimal.NewFromFloat(0.01)
	high := decimal.NewFromFloat(0.06)
	if profile.InflationRate.LessThan(low) || profile.InflationRate.GreaterThan(high) {
		warnings = append(warnings, engineerr.NewWarning(engineerr.WarnAssumptionOutOfTypicalRange, "expense inflation rate outside [0.01, 0.06]"))
	}

	base := BaseAnnualExpenses(profile.Categories)
	yearsElapsed := projectionYear - profile.BaseYear
	inflationFactor := decimal.NewFromInt(1).Add(profile.InflationRate).Pow(decimal.NewFromInt(int64(yearsElapsed)))
	multiplier := PhaseMultiplier(profile, age)

	return base.Mul(inflationFactor).Mul(multiplier).Round(2), warnings
}

// ResolvedParams carries the scalar form of an expense profile a resolved
// SimulationConfig holds, once category totals have already been summed
// at resolution time.
type ResolvedParams struct {
	Base              decimal.Decimal
	BaseYear          int
	InflationRate     decimal.Decimal
	SmileCurveEnabled bool
	SmileCurve        domain.SmileCurveParams
}

// AnnualExpensesFromResolved is AnnualExpenses's counterpart for a
// SimulationConfig, whose ExpenseBase is already the summed base-year
// total rather than a category list.
func AnnualExpensesFromResolved(p ResolvedParams, projectionYear, age int) (decimal.Decimal, []engineerr.Warning) {
	profile := domain.ExpenseProfile{
		BaseYear:          p.BaseYear,
		InflationRate:     p.InflationRate,
		SmileCurveEnabled: p.SmileCurveEnabled,
		SmileCurve:        &p.SmileCurve,
	}
	var warnings []engineerr.Warning
	if p.InflationRate.LessThan(decimal.NewFromFloat(0.01)) || p.InflationRate.GreaterThan(decimal.NewFromFloat(0.06)) {
		warnings = append(warnings, engineerr.NewWarning(engineerr.WarnAssumptionOutOfTypicalRange, "expense inflation rate outside [0.01, 0.06]"))
	}
	yearsElapsed := projectionYear - p.BaseYear
	inflationFactor := decimal.NewFromInt(1).Add(p.InflationRate).Pow(decimal.NewFromInt(int64(yearsElapsed)))
	multiplier := PhaseMultiplier(profile, age)
	return p.Base.Mul(inflationFactor).Mul(multiplier).Round(2), warnings
}
