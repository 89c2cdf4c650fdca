// Package projection implements the annual projection integrator, per
// spec.md §4.7: the per-year composition of income, taxes, withdrawals,
// and balance evolution, plus the resolution step that turns a raw
// SimulationInput into the frozen SimulationConfig the integrator
// consumes.
package projection

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/career"
	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/engineerr"
	"github.com/rgehrsitz/fersproj/internal/expense"
	"github.com/rgehrsitz/fersproj/internal/fers"
	"github.com/rgehrsitz/fersproj/internal/registry"
)

// SickLeaveHoursPerYear is the OPM conversion factor: 2,087 hours of
// unused sick leave credits one year of additional FERS service.
const SickLeaveHoursPerYear = 2087.0

// Resolved bundles the fully-resolved SimulationConfig together with the
// derived facts (eligibility classification, salary history) the caller
// may want to inspect alongside the config itself.
type Resolved struct {
	Config      domain.SimulationConfig
	Eligibility domain.EligibilityClass
	SalaryHistory []domain.SalaryYear
}

// ResolveConfig assembles the frozen SimulationConfig the integrator
// consumes from a raw SimulationInput, per spec.md §6: it runs the career
// pay model to derive High-3 and creditable service, classifies FERS
// eligibility, and carries the assumptions and TSP/expense inputs through
// into their resolved numeric form.
func ResolveConfig(reg *registry.Registry, in domain.SimulationInput) (Resolved, []engineerr.Warning, error) {
	var warnings []engineerr.Warning

	retirementYear := in.Assumptions.RetirementDate.Year()

	history, payWarnings, err := career.BuildSalaryHistory(reg, in.CareerProfile, retirementYear, decimal.NewFromFloat(0.02))
	if err != nil {
		return Resolved{}, nil, err
	}
	warnings = append(warnings, payWarnings...)

	high3 := career.ComputeHigh3(history)

	scd, err := career.DeriveEffectiveSCD(in.CareerProfile.Events)
	if err != nil {
		return Resolved{}, nil, err
	}
	_, _, _, serviceYears := career.CreditableService(scd, in.Assumptions.RetirementDate)
	serviceYears += float64(in.MilitaryServiceDays) / 365.25
	if sickHours, _ := in.SickLeaveHoursAtRetirement.Float64(); sickHours > 0 {
		serviceYears += sickHours / SickLeaveHoursPerYear
	}

	birthYear := in.BirthDate.Year()
	_, _, _, ageAtRetirement := career.CreditableService(in.BirthDate, in.Assumptions.RetirementDate)
	eligibility := fers.ClassifyEligibility(ageAtRetirement, serviceYears, birthYear)

	endAge := int(ageAtRetirement) + in.Assumptions.RetirementHorizonYears

	var tspTotal, tradBalance decimal.Decimal
	for _, snap := range in.TSPSnapshots {
		if snap.AsOf.After(in.Assumptions.RetirementDate) {
			continue
		}
		tspTotal = snap.TraditionalBalance.Add(snap.RothBalance)
		tradBalance = snap.TraditionalBalance
	}
	traditionalFraction := decimal.NewFromFloat(0.5)
	if tspTotal.IsPositive() {
		traditionalFraction = tradBalance.Div(tspTotal)
	}

	expenseBase := expense.BaseAnnualExpenses(in.ExpenseProfile.Categories)

	taxProfile := domain.TaxProfile{FilingStatus: domain.FilingSingle}
	if in.TaxProfile != nil {
		taxProfile = *in.TaxProfile
	}

	claimingAge := int(ageAtRetirement)
	if claimingAge < 62 {
		claimingAge = 62
	}
	if in.SSClaimingAgeOverride != nil {
		claimingAge = *in.SSClaimingAgeOverride
	}

	withdrawalStrategy := domain.WithdrawalStrategy{Kind: domain.StrategyProportional}
	if in.WithdrawalStrategyOverride != nil {
		withdrawalStrategy = *in.WithdrawalStrategyOverride
	}

	cfg := domain.SimulationConfig{
		BirthYear:              birthYear,
		RetirementYear:         retirementYear,
		RetirementAge:          decimal.NewFromFloat(ageAtRetirement),
		EndAge:                 endAge,
		High3Salary:            high3,
		CreditableServiceYears: decimal.NewFromFloat(serviceYears),
		TSPBalanceAtRetirement: tspTotal,
		TraditionalFraction:    traditionalFraction,
		HighRiskFraction:       decimal.NewFromFloat(0.6),
		HighRiskReturn:         in.Assumptions.TSPGrowthRateHigh,
		LowRiskReturn:          in.Assumptions.TSPGrowthRateLow,
		WithdrawalRate:         in.Assumptions.TSPWithdrawalRate,
		WithdrawalStrategy:     withdrawalStrategy,
		ExpenseBase:            expenseBase,
		ExpenseBaseYear:        in.ExpenseProfile.BaseYear,
		SmileCurveEnabled:      in.ExpenseProfile.SmileCurveEnabled,
		COLARate:               in.Assumptions.COLARate,
		InflationRate:          in.ExpenseProfile.InflationRate,
		TimeStepYears:          1,
		SSClaimingAge:          claimingAge,
		SSMonthlyAt62:          in.Assumptions.SSMonthlyEstimateAt62,
		EstimatedSSAt62Monthly: in.Assumptions.SSMonthlyEstimateAt62,
		TaxProfile:             taxProfile,
	}
	if in.ExpenseProfile.SmileCurve != nil {
		cfg.SmileCurve = *in.ExpenseProfile.SmileCurve
	}

	return Resolved{Config: cfg, Eligibility: eligibility, SalaryHistory: history}, warnings, nil
}
