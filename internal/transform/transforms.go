package transform

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/domain"
)

// PostponeRetirement shifts the retirement date forward by Months.
type PostponeRetirement struct {
	Months int
}

func (t *PostponeRetirement) Name() string { return "postpone_retirement" }

func (t *PostponeRetirement) Description() string {
	return fmt.Sprintf("postpone retirement by %d months", t.Months)
}

func (t *PostponeRetirement) Validate(base domain.SimulationInput) error {
	if t.Months == 0 {
		return NewTransformError(t.Name(), "validate", "months must be non-zero", nil)
	}
	return nil
}

func (t *PostponeRetirement) Apply(base domain.SimulationInput) (domain.SimulationInput, error) {
	if err := t.Validate(base); err != nil {
		return domain.SimulationInput{}, err
	}
	modified := base
	modified.Assumptions.RetirementDate = base.Assumptions.RetirementDate.AddDate(0, t.Months, 0)
	return modified, nil
}

// DelaySSClaim overrides the Social Security claiming age.
type DelaySSClaim struct {
	Age int
}

func (t *DelaySSClaim) Name() string { return "delay_ss" }

func (t *DelaySSClaim) Description() string {
	return fmt.Sprintf("claim Social Security at age %d", t.Age)
}

func (t *DelaySSClaim) Validate(base domain.SimulationInput) error {
	if t.Age < 62 || t.Age > 70 {
		return NewTransformError(t.Name(), "validate", "claiming age must be between 62 and 70", nil)
	}
	return nil
}

func (t *DelaySSClaim) Apply(base domain.SimulationInput) (domain.SimulationInput, error) {
	if err := t.Validate(base); err != nil {
		return domain.SimulationInput{}, err
	}
	modified := base
	age := t.Age
	modified.SSClaimingAgeOverride = &age
	return modified, nil
}

// AdjustWithdrawalRate overrides the TSP withdrawal rate assumption.
type AdjustWithdrawalRate struct {
	Rate decimal.Decimal
}

func (t *AdjustWithdrawalRate) Name() string { return "adjust_withdrawal_rate" }

func (t *AdjustWithdrawalRate) Description() string {
	return fmt.Sprintf("set TSP withdrawal rate to %s", t.Rate)
}

func (t *AdjustWithdrawalRate) Validate(base domain.SimulationInput) error {
	if t.Rate.IsNegative() {
		return NewTransformError(t.Name(), "validate", "withdrawal rate cannot be negative", nil)
	}
	return nil
}

func (t *AdjustWithdrawalRate) Apply(base domain.SimulationInput) (domain.SimulationInput, error) {
	if err := t.Validate(base); err != nil {
		return domain.SimulationInput{}, err
	}
	modified := base
	modified.Assumptions.TSPWithdrawalRate = t.Rate
	return modified, nil
}

// SetWithdrawalStrategy overrides the TSP sequencing strategy used at
// resolution time.
type SetWithdrawalStrategy struct {
	Kind                 domain.WithdrawalStrategyKind
	CustomTraditionalPct decimal.Decimal
}

func (t *SetWithdrawalStrategy) Name() string { return "set_withdrawal_strategy" }

func (t *SetWithdrawalStrategy) Description() string {
	return fmt.Sprintf("set withdrawal strategy to %s", t.Kind)
}

func (t *SetWithdrawalStrategy) Validate(base domain.SimulationInput) error {
	switch t.Kind {
	case domain.StrategyProportional, domain.StrategyTraditionalFirst, domain.StrategyRothFirst, domain.StrategyTaxBracketFill, domain.StrategyCustom:
		return nil
	default:
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown strategy kind %q", t.Kind), nil)
	}
}

func (t *SetWithdrawalStrategy) Apply(base domain.SimulationInput) (domain.SimulationInput, error) {
	if err := t.Validate(base); err != nil {
		return domain.SimulationInput{}, err
	}
	modified := base
	strategy := domain.WithdrawalStrategy{Kind: t.Kind, CustomTraditionalPct: t.CustomTraditionalPct}
	modified.WithdrawalStrategyOverride = &strategy
	return modified, nil
}
