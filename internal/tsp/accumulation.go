package tsp

import (
	"github.com/shopspring/decimal"
)

// ContributionLimits holds the annual IRS 402(g) elective deferral limit
// and the age-50 catch-up limit for a given year. Defaults approximate the
// 2024 figures; callers projecting future years should scale these the
// same way the registry scales the GS pay table.
type ContributionLimits struct {
	ElectiveDeferralLimit decimal.Decimal
	CatchUpLimit          decimal.Decimal
}

// DefaultContributionLimits returns the 2024 IRS 402(g) limits.
func DefaultContributionLimits() ContributionLimits {
	return ContributionLimits{
		ElectiveDeferralLimit: decimal.NewFromInt(23000),
		CatchUpLimit:          decimal.NewFromInt(7500),
	}
}

// MatchEligiblePercent is the agency-match-eligible contribution percent:
// the lesser of the employee's own contribution percent and 5%, per
// spec.md §4.4.
func MatchEligiblePercent(employeeContributionPercent decimal.Decimal) decimal.Decimal {
	cap := decimal.NewFromFloat(0.05)
	if employeeContributionPercent.LessThan(cap) {
		return employeeContributionPercent
	}
	return cap
}

// AgencyMatchPercent is the 1% automatic contribution plus the
// match-eligible percent (at most 5%), per spec.md §4.4. The automatic
// 1% is paid regardless of employee contribution.
func AgencyMatchPercent(employeeContributionPercent decimal.Decimal) decimal.Decimal {
	automatic := decimal.NewFromFloat(0.01)
	return automatic.Add(MatchEligiblePercent(employeeContributionPercent))
}

// AccumulationYearInput bundles the per-year inputs to AccumulateYear.
type AccumulationYearInput struct {
	Salary                      decimal.Decimal
	TraditionalPercent          decimal.Decimal
	RothPercent                 decimal.Decimal
	Age                         int
	CatchUpElected              bool
	TrueUpEnabled               bool
	Limits                      ContributionLimits
}

// AccumulationYearResult reports the dollar amounts contributed in a year.
type AccumulationYearResult struct {
	EmployeeTraditional decimal.Decimal
	EmployeeRoth        decimal.Decimal
	AgencyMatch         decimal.Decimal
	CappedByLimit       bool
}

// AccumulateYear computes one year's employee and agency-match
// contributions, per spec.md §4.4. The combined employee Traditional and
// Roth contribution is capped at the elective deferral limit (plus
// catch-up when age >= 50 and elected). Agency match is always deposited
// to Traditional. Without true-up, hitting the cap mid-year means no
// further match accrues on the capped portion; with true-up, the full
// match is paid on the uncapped requested percentage regardless.
func AccumulateYear(in AccumulationYearInput) AccumulationYearResult {
	limit := in.Limits.ElectiveDeferralLimit
	if in.Age >= 50 && in.CatchUpElected {
		limit = limit.Add(in.Limits.CatchUpLimit)
	}

	requestedTrad := in.Salary.Mul(in.TraditionalPercent)
	requestedRoth := in.Salary.Mul(in.RothPercent)
	requestedTotal := requestedTrad.Add(requestedRoth)

	actualTotal := requestedTotal
	capped := false
	if actualTotal.GreaterThan(limit) {
		actualTotal = limit
		capped = true
	}

	var actualTrad, actualRoth decimal.Decimal
	if requestedTotal.IsZero() {
		actualTrad, actualRoth = decimal.Zero, decimal.Zero
	} else if capped {
		tradShare := requestedTrad.Div(requestedTotal)
		actualTrad = actualTotal.Mul(tradShare)
		actualRoth = actualTotal.Sub(actualTrad)
	} else {
		actualTrad, actualRoth = requestedTrad, requestedRoth
	}

	matchPercent := AgencyMatchPercent(in.TraditionalPercent.Add(in.RothPercent))
	match := in.Salary.Mul(matchPercent)
	if capped && !in.TrueUpEnabled {
		// Without true-up, match tracks the same capped fraction the
		// employee actually contributed.
		fraction := actualTotal.Div(requestedTotal)
		match = match.Mul(fraction)
	}

	return AccumulationYearResult{
		EmployeeTraditional: actualTrad.Round(2),
		EmployeeRoth:        actualRoth.Round(2),
		AgencyMatch:         match.Round(2),
		CappedByLimit:       capped,
	}
}
