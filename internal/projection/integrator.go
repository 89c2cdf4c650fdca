package projection

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/engineerr"
	"github.com/rgehrsitz/fersproj/internal/expense"
	"github.com/rgehrsitz/fersproj/internal/fers"
	"github.com/rgehrsitz/fersproj/internal/registry"
	"github.com/rgehrsitz/fersproj/internal/tax"
	"github.com/rgehrsitz/fersproj/internal/tsp"
	"github.com/rgehrsitz/fersproj/internal/tsp/sequencing"
	"github.com/rgehrsitz/fersproj/pkg/dateutil"
)

// Engine runs the deterministic annual projection against a registry of
// regulatory tables, per spec.md §4.7.
type Engine struct {
	Registry *registry.Registry
}

// NewEngine builds an Engine bound to reg.
func NewEngine(reg *registry.Registry) *Engine {
	return &Engine{Registry: reg}
}

// ssClaimingFactor linearly interpolates the Social Security claiming
// factor between the three anchor points spec.md §4.7 step 4 states:
// 0.70 at 62, 1.00 at 67, 1.24 at 70. Ages outside [62, 70] clamp to the
// nearest anchor.
func ssClaimingFactor(claimAge int) decimal.Decimal {
	switch {
	case claimAge <= 62:
		return decimal.NewFromFloat(0.70)
	case claimAge >= 70:
		return decimal.NewFromFloat(1.24)
	case claimAge <= 67:
		step := decimal.NewFromFloat(0.30).Div(decimal.NewFromInt(5))
		return decimal.NewFromFloat(0.70).Add(step.Mul(decimal.NewFromInt(int64(claimAge - 62))))
	default:
		step := decimal.NewFromFloat(0.24).Div(decimal.NewFromInt(3))
		return decimal.NewFromFloat(1.00).Add(step.Mul(decimal.NewFromInt(int64(claimAge - 67))))
	}
}

// marginalBracket finds the bracket containing taxableIncome and the
// dollar distance to its upper boundary (zero when the bracket is
// unbounded), per spec.md §4.7 step 10.
func marginalBracket(taxableIncome decimal.Decimal, brackets []registry.Bracket) (rate, headroom decimal.Decimal) {
	for _, b := range brackets {
		if taxableIncome.LessThan(b.MinIncome) {
			continue
		}
		if b.Unbounded || taxableIncome.LessThan(b.MaxIncome) {
			if b.Unbounded {
				return b.Rate, decimal.Zero
			}
			return b.Rate, b.MaxIncome.Sub(taxableIncome)
		}
	}
	if len(brackets) == 0 {
		return decimal.Zero, decimal.Zero
	}
	last := brackets[len(brackets)-1]
	return last.Rate, decimal.Zero
}

// bracketCeilingFor returns the upper bound of the bracket containing
// ordinaryIncome, used as the tax-bracket-fill strategy's headroom
// ceiling, per spec.md §4.4 step 3.
func bracketCeilingFor(ordinaryIncome decimal.Decimal, brackets []registry.Bracket) decimal.Decimal {
	for _, b := range brackets {
		if ordinaryIncome.LessThan(b.MinIncome) {
			continue
		}
		if b.Unbounded {
			return ordinaryIncome.Add(decimal.NewFromInt(1_000_000_000))
		}
		if ordinaryIncome.LessThan(b.MaxIncome) {
			return b.MaxIncome
		}
	}
	return ordinaryIncome
}

// Run executes the deterministic per-year projection from cfg.RetirementYear
// through cfg.EndAge, per spec.md §4.7, and returns the assembled
// FullSimulationResult.
func (e *Engine) Run(cfg domain.SimulationConfig) (domain.FullSimulationResult, error) {
	eligibility := fers.ClassifyEligibility(mustFloat(cfg.RetirementAge), mustFloat(cfg.CreditableServiceYears), cfg.BirthYear)
	grossAnnuity := fers.GrossAnnuity(cfg.High3Salary, mustFloat(cfg.CreditableServiceYears), mustFloat(cfg.RetirementAge), eligibility)

	buckets := tsp.InitializeAtRetirement(cfg.TSPBalanceAtRetirement, cfg.TraditionalFraction, cfg.HighRiskFraction)
	strategy := sequencing.New(sequencing.Kind(cfg.WithdrawalStrategy.Kind), cfg.WithdrawalStrategy.CustomTraditionalPct)

	retirementAgeInt := int(mustFloat(cfg.RetirementAge))
	numYears := cfg.EndAge - retirementAgeInt + 1
	if numYears < 0 {
		numYears = 0
	}

	var (
		years            []domain.YearResult
		warnings         []engineerr.Warning
		firstDepletion   *int
		lifetimeIncome   decimal.Decimal
		lifetimeTax      decimal.Decimal
		lifetimeAfterTax decimal.Decimal
		lifetimeExpenses decimal.Decimal
		balanceAt85      decimal.Decimal
	)

	claimingYear := cfg.BirthYear + cfg.SSClaimingAge

	for i := 0; i < numYears; i++ {
		year := cfg.RetirementYear + i
		age := retirementAgeInt + i

		smileMultiplier := decimal.NewFromInt(1)
		totalExpenses, expWarnings := expense.AnnualExpensesFromResolved(expense.ResolvedParams{
			Base:              cfg.ExpenseBase,
			BaseYear:          cfg.ExpenseBaseYear,
			InflationRate:     cfg.InflationRate,
			SmileCurveEnabled: cfg.SmileCurveEnabled,
			SmileCurve:        cfg.SmileCurve,
		}, year, age)
		warnings = append(warnings, expWarnings...)
		if cfg.SmileCurveEnabled {
			smileMultiplier = expense.PhaseMultiplier(domain.ExpenseProfile{SmileCurveEnabled: true, SmileCurve: &cfg.SmileCurve}, age)
		}

		colaFactor := decimal.NewFromInt(1).Add(cfg.COLARate).Pow(decimal.NewFromInt(int64(i)))
		annuity := grossAnnuity.Mul(colaFactor).Round(2)

		var supplement decimal.Decimal
		if fers.SupplementEligible(age, eligibility) {
			supplement = fers.AnnualSupplement(cfg.EstimatedSSAt62Monthly, mustFloat(cfg.CreditableServiceYears)).Round(2)
		}

		var ssGross decimal.Decimal
		if age >= cfg.SSClaimingAge {
			factor := ssClaimingFactor(cfg.SSClaimingAge)
			monthlyAtClaim := cfg.SSMonthlyAt62.Mul(factor)
			annualAtClaim := monthlyAtClaim.Mul(decimal.NewFromInt(12))
			colaYears := year - claimingYear
			if colaYears < 0 {
				colaYears = 0
			}
			ssCola := decimal.NewFromInt(1).Add(cfg.COLARate).Pow(decimal.NewFromInt(int64(colaYears)))
			ssGross = annualAtClaim.Mul(ssCola).Round(2)
		}

		// Planned withdrawal and RMD floor, per spec.md §4.4 steps 1-2.
		plannedWithdrawal := tsp.PlannedWithdrawal(cfg.TSPBalanceAtRetirement, cfg.WithdrawalRate, cfg.COLARate, i)
		isRMDYear := dateutil.IsRMDYear(cfg.BirthYear, age)
		rmdFloor := tsp.RMDFloor(buckets.TotalTraditional(), e.Registry.RMDDivisor(age), isRMDYear)

		ordinaryIncomeExSS := annuity.Add(supplement)
		brackets := e.Registry.FederalBrackets(year, cfg.TaxProfile.FilingStatus)
		ctx := sequencing.StrategyContext{
			TraditionalBalance:       buckets.TotalTraditional(),
			RothBalance:              buckets.TotalRoth(),
			PlannedWithdrawal:        plannedWithdrawal,
			CurrentOrdinaryIncome:    ordinaryIncomeExSS,
			BracketCeiling:           bracketCeilingFor(ordinaryIncomeExSS, brackets),
			CustomTraditionalPercent: cfg.WithdrawalStrategy.CustomTraditionalPct,
		}

		substeps := 1
		if cfg.TimeStepYears == 2 {
			substeps = 2
		}
		divisor := decimal.NewFromInt(int64(substeps))
		subHighROI := cfg.HighRiskReturn.Div(divisor)
		subLowROI := cfg.LowRiskReturn.Div(divisor)

		var tradWithdrawn, rothWithdrawn decimal.Decimal
		rmdSatisfied := true
		for s := 0; s < substeps; s++ {
			subCtx := ctx
			subCtx.PlannedWithdrawal = plannedWithdrawal.Div(divisor)
			subCtx.TraditionalBalance = buckets.TotalTraditional()
			subCtx.RothBalance = buckets.TotalRoth()
			subRMDFloor := rmdFloor.Div(divisor)

			result := tsp.WithdrawYear(buckets, strategy, subCtx, subRMDFloor, subHighROI, subLowROI, subHighROI, subLowROI)
			buckets = result.Buckets
			tradWithdrawn = tradWithdrawn.Add(result.TraditionalWithdrawn)
			rothWithdrawn = rothWithdrawn.Add(result.RothWithdrawn)
			rmdSatisfied = rmdSatisfied && result.RMDSatisfied
		}

		provisionalIncome := tax.ProvisionalIncome(ordinaryIncomeExSS.Add(tradWithdrawn), decimal.Zero, ssGross)
		taxableSSFraction := tax.TaxableSSFraction(cfg.TaxProfile.FilingStatus, provisionalIncome)
		taxableSS := ssGross.Mul(taxableSSFraction).Round(2)

		agi := ordinaryIncomeExSS.Add(tradWithdrawn).Add(taxableSS)

		deduction := cfg.TaxProfile.Deduction.ItemizedAmount
		if cfg.TaxProfile.Deduction.UseStandard || deduction.IsZero() {
			deduction = e.Registry.StandardDeduction(year, cfg.TaxProfile.FilingStatus)
		}
		taxableIncome := agi.Sub(deduction)
		if taxableIncome.IsNegative() {
			taxableIncome = decimal.Zero
		}

		federalTax := tax.FederalTax(taxableIncome, brackets)

		stateRule, stateWarnings := e.Registry.StateTaxRule(cfg.TaxProfile.StateCode, year)
		warnings = append(warnings, stateWarnings...)
		stateTax := tax.StateTax(stateRule, annuity, tradWithdrawn, supplement.Add(taxableSS))

		var irmaaSurcharge decimal.Decimal
		var irmaaRiskTier domain.IRMAARiskTier
		if cfg.TaxProfile.ModelIRMAA {
			tiers := e.Registry.IRMAATiers(year, cfg.TaxProfile.FilingStatus)
			irmaaSurcharge = tax.IRMAASurcharge(agi, tiers)
			risk, _ := tax.ClassifyIRMAARisk(agi, tiers)
			irmaaRiskTier = domain.IRMAARiskTier(risk)
		}

		marginalRate, headroom := marginalBracket(taxableIncome, brackets)

		grossIncome := annuity.Add(supplement).Add(ssGross).Add(tradWithdrawn).Add(rothWithdrawn)
		afterTaxIncome := grossIncome.Sub(federalTax).Sub(stateTax).Sub(irmaaSurcharge)
		surplus := grossIncome.Sub(totalExpenses)
		afterTaxSurplus := afterTaxIncome.Sub(totalExpenses)

		yr := domain.YearResult{
			Year:                     year,
			Age:                      age,
			Annuity:                  annuity,
			Supplement:               supplement,
			SocialSecurityGross:      ssGross,
			TaxableSSFraction:        taxableSSFraction,
			TSPWithdrawalTraditional: tradWithdrawn,
			TSPWithdrawalRoth:        rothWithdrawn,
			TaxableIncome:            taxableIncome,
			FederalTax:               federalTax,
			StateTax:                 stateTax,
			IRMAASurcharge:           irmaaSurcharge,
			IRMAARiskTier:            irmaaRiskTier,
			GrossIncome:              grossIncome,
			AfterTaxIncome:           afterTaxIncome,
			MarginalBracketRate:      marginalRate,
			BracketHeadroom:          headroom,
			SmileMultiplier:          smileMultiplier,
			TotalExpenses:            totalExpenses,
			TradHighBalance:          buckets.TradHigh,
			TradLowBalance:           buckets.TradLow,
			RothHighBalance:          buckets.RothHigh,
			RothLowBalance:           buckets.RothLow,
			RMDRequired:              rmdFloor,
			RMDSatisfied:             rmdSatisfied,
			Surplus:                  surplus,
			AfterTaxSurplus:          afterTaxSurplus,
		}
		years = append(years, yr)

		if firstDepletion == nil && yr.IsDepleted() {
			a := age
			firstDepletion = &a
		}
		if age == 85 {
			balanceAt85 = yr.TotalTSPBalance()
		}

		lifetimeIncome = lifetimeIncome.Add(grossIncome)
		lifetimeTax = lifetimeTax.Add(federalTax).Add(stateTax).Add(irmaaSurcharge)
		lifetimeAfterTax = lifetimeAfterTax.Add(afterTaxIncome)
		lifetimeExpenses = lifetimeExpenses.Add(totalExpenses)
	}

	warningStrings := make([]string, 0, len(warnings))
	for _, w := range warnings {
		warningStrings = append(warningStrings, w.String())
	}

	return domain.FullSimulationResult{
		Config:            cfg,
		Years:             years,
		FirstDepletionAge: firstDepletion,
		BalanceAtAge85:    balanceAt85,
		Lifetime: domain.LifetimeAggregates{
			TotalIncome:         lifetimeIncome,
			TotalTax:            lifetimeTax,
			TotalAfterTaxIncome: lifetimeAfterTax,
			TotalExpenses:       lifetimeExpenses,
		},
		Warnings: warningStrings,
	}, nil
}

func mustFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
