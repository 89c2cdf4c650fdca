// Package validate implements the pre-integrator input sanity checks
// spec.md §4.9/§7 describes: InvalidInput errors block computation before
// the integrator runs, while a handful of assumption checks surface as
// warnings the caller may choose to act on.
package validate

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/engineerr"
)

// lowInflation and highInflation bound the "typical" assumption range
// spec.md §4.6/§7 uses for AssumptionOutOfTypicalRange.
var (
	lowInflation  = decimal.NewFromFloat(0.01)
	highInflation = decimal.NewFromFloat(0.06)
)

// Config validates a fully-resolved SimulationConfig, returning the first
// InvalidInput violation encountered and any accumulated warnings.
func Config(cfg domain.SimulationConfig) ([]engineerr.Warning, error) {
	var warnings []engineerr.Warning

	if cfg.RetirementAge.IsNegative() {
		return nil, engineerr.NewInvalidInput("retirement_age", cfg.RetirementAge, "must not be negative")
	}
	if cfg.EndAge <= 0 {
		return nil, engineerr.NewInvalidInput("end_age", cfg.EndAge, "must be positive")
	}
	retirementAgeFloat, _ := cfg.RetirementAge.Float64()
	if float64(cfg.EndAge) < retirementAgeFloat {
		return nil, engineerr.NewInvalidInput("end_age", cfg.EndAge, "must not be before retirement age")
	}
	if cfg.TSPBalanceAtRetirement.IsNegative() {
		return nil, engineerr.NewInvalidInput("tsp_balance_at_retirement", cfg.TSPBalanceAtRetirement, "must not be negative")
	}
	if cfg.TraditionalFraction.IsNegative() || cfg.TraditionalFraction.GreaterThan(decimal.NewFromInt(1)) {
		return nil, engineerr.NewInvalidInput("traditional_fraction", cfg.TraditionalFraction, "must be between 0 and 1")
	}
	if cfg.HighRiskFraction.IsNegative() || cfg.HighRiskFraction.GreaterThan(decimal.NewFromInt(1)) {
		return nil, engineerr.NewInvalidInput("high_risk_fraction", cfg.HighRiskFraction, "must be between 0 and 1")
	}
	if cfg.WithdrawalRate.IsNegative() {
		return nil, engineerr.NewInvalidInput("withdrawal_rate", cfg.WithdrawalRate, "must not be negative")
	}
	if cfg.TimeStepYears != 1 && cfg.TimeStepYears != 2 {
		return nil, engineerr.NewInvalidInput("time_step_years", cfg.TimeStepYears, "must be 1 or 2")
	}
	if cfg.High3Salary.IsNegative() {
		return nil, engineerr.NewInvalidInput("high3_salary", cfg.High3Salary, "must not be negative")
	}
	if cfg.CreditableServiceYears.IsNegative() {
		return nil, engineerr.NewInvalidInput("creditable_service_years", cfg.CreditableServiceYears, "must not be negative")
	}
	if kind := cfg.WithdrawalStrategy.Kind; kind == domain.StrategyCustom {
		sum := cfg.WithdrawalStrategy.CustomTraditionalPct.Add(cfg.WithdrawalStrategy.CustomRothPct)
		if !sum.Equal(decimal.NewFromInt(1)) {
			return nil, engineerr.NewInvalidInput("withdrawal_strategy.custom", sum, "custom traditional+roth percentages must sum to 1")
		}
	}

	if cfg.InflationRate.LessThan(lowInflation) || cfg.InflationRate.GreaterThan(highInflation) {
		warnings = append(warnings, engineerr.NewWarning(engineerr.WarnAssumptionOutOfTypicalRange,
			"inflation rate outside [0.01, 0.06]"))
	}
	if cfg.COLARate.LessThan(decimal.Zero) || cfg.COLARate.GreaterThan(highInflation) {
		warnings = append(warnings, engineerr.NewWarning(engineerr.WarnAssumptionOutOfTypicalRange,
			"COLA rate outside [0, 0.06]"))
	}

	return warnings, nil
}

// CareerProfile validates the invariants spec.md §3 states for a
// CareerProfile and its constituent events: the earliest event must be a
// hire, events must be sorted strictly increasing by effective date with
// no two sharing a date, and grade/step must fall within the GS ranges
// the registry understands.
func CareerProfile(profile domain.CareerProfile) error {
	if len(profile.Events) == 0 {
		return engineerr.NewInvalidInput("career_profile.events", nil, "at least one event (a hire) is required")
	}
	if profile.Events[0].Kind != domain.EventHire {
		return engineerr.NewInvalidInput("career_profile.events[0].kind", profile.Events[0].Kind, "the earliest event must be a hire")
	}
	for i, ev := range profile.Events {
		if ev.Grade != 0 && (ev.Grade < 1 || ev.Grade > 15) {
			return engineerr.NewInvalidInput("career_profile.events[].grade", ev.Grade, "grade must be between 1 and 15")
		}
		if ev.Step != 0 && (ev.Step < 1 || ev.Step > 10) {
			return engineerr.NewInvalidInput("career_profile.events[].step", ev.Step, "step must be between 1 and 10")
		}
		if ev.ExplicitSalary.IsNegative() {
			return engineerr.NewInvalidInput("career_profile.events[].explicit_salary", ev.ExplicitSalary, "must not be negative")
		}
		if i == 0 {
			continue
		}
		prev := profile.Events[i-1]
		if !ev.EffectiveDate.After(prev.EffectiveDate) {
			return engineerr.NewInvalidInput("career_profile.events[].effective_date", ev.EffectiveDate,
				"events must be sorted strictly increasing by effective date; no two may share a date")
		}
	}
	return nil
}

// TSPContributionEvent validates a single contribution election, emitting
// a CatchUpIneligibleAge warning (not an error) when catch-up is elected
// under age 50, per spec.md §7.
func TSPContributionEvent(ev domain.TSPContributionEvent, ageAtEffectiveDate int) ([]engineerr.Warning, error) {
	if ev.TraditionalPercent.IsNegative() {
		return nil, engineerr.NewInvalidInput("tsp_contribution_event.traditional_percent", ev.TraditionalPercent, "must not be negative")
	}
	if ev.RothPercent.IsNegative() {
		return nil, engineerr.NewInvalidInput("tsp_contribution_event.roth_percent", ev.RothPercent, "must not be negative")
	}
	var warnings []engineerr.Warning
	if ev.CatchUpEnabled && ageAtEffectiveDate < 50 {
		warnings = append(warnings, engineerr.NewWarning(engineerr.WarnCatchUpIneligibleAge,
			"catch-up contributions elected before age 50"))
	}
	return warnings, nil
}

// ExpenseProfile validates the base-year expense profile; inflation-range
// checks are emitted by internal/expense.AnnualExpenses per year rather
// than here, since the rate itself is otherwise a valid (if atypical)
// input.
func ExpenseProfile(profile domain.ExpenseProfile) error {
	for _, c := range profile.Categories {
		if c.AnnualAmount.IsNegative() {
			return engineerr.NewInvalidInput("expense_profile.categories[].annual_amount", c.AnnualAmount, "must not be negative")
		}
	}
	if profile.BaseYear <= 0 {
		return engineerr.NewInvalidInput("expense_profile.base_year", profile.BaseYear, "must be a valid calendar year")
	}
	return nil
}

// TSPSnapshot validates a point-in-time account balance.
func TSPSnapshot(snap domain.TSPSnapshot) error {
	if snap.TraditionalBalance.IsNegative() {
		return engineerr.NewInvalidInput("tsp_snapshot.traditional_balance", snap.TraditionalBalance, "must not be negative")
	}
	if snap.RothBalance.IsNegative() {
		return engineerr.NewInvalidInput("tsp_snapshot.roth_balance", snap.RothBalance, "must not be negative")
	}
	sum := decimal.Zero
	for _, a := range snap.Allocation {
		if a.Percent.IsNegative() {
			return engineerr.NewInvalidInput("tsp_snapshot.allocation[].percent", a.Percent, "must not be negative")
		}
		sum = sum.Add(a.Percent)
	}
	if len(snap.Allocation) > 0 && !sum.Equal(decimal.NewFromInt(100)) {
		return engineerr.NewInvalidInput("tsp_snapshot.allocation", sum, "fund percentages must sum to 100")
	}
	return nil
}
