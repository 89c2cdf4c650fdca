package projection

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/registry"
)

func sampleConfig() domain.SimulationConfig {
	return domain.SimulationConfig{
		BirthYear:              1963,
		RetirementYear:         2026,
		RetirementAge:          decimal.NewFromInt(63),
		EndAge:                 90,
		High3Salary:            decimal.NewFromInt(120000),
		CreditableServiceYears: decimal.NewFromInt(30),
		TSPBalanceAtRetirement: decimal.NewFromInt(500000),
		TraditionalFraction:    decimal.NewFromFloat(0.8),
		HighRiskFraction:       decimal.NewFromFloat(0.6),
		HighRiskReturn:         decimal.NewFromFloat(0.07),
		LowRiskReturn:          decimal.NewFromFloat(0.03),
		WithdrawalRate:         decimal.NewFromFloat(0.04),
		WithdrawalStrategy:     domain.WithdrawalStrategy{Kind: domain.StrategyProportional},
		ExpenseBase:            decimal.NewFromInt(60000),
		ExpenseBaseYear:        2026,
		COLARate:               decimal.NewFromFloat(0.02),
		InflationRate:          decimal.NewFromFloat(0.025),
		TimeStepYears:          1,
		SSClaimingAge:          67,
		SSMonthlyAt62:          decimal.NewFromInt(2200),
		EstimatedSSAt62Monthly: decimal.NewFromInt(2200),
		TaxProfile:             domain.TaxProfile{FilingStatus: domain.FilingSingle, Deduction: domain.DeductionStrategy{UseStandard: true}},
	}
}

func TestEngineRunProducesOneYearPerAge(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	engine := NewEngine(reg)
	result, err := engine.Run(sampleConfig())
	require.NoError(t, err)
	assert.Len(t, result.Years, 28) // ages 63..90 inclusive
	assert.Equal(t, 63, result.Years[0].Age)
	assert.Equal(t, 90, result.Years[len(result.Years)-1].Age)
}

func TestEngineRunAnnuityAndBalanceNeverNegative(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	engine := NewEngine(reg)
	result, err := engine.Run(sampleConfig())
	require.NoError(t, err)
	for _, y := range result.Years {
		assert.True(t, y.Annuity.GreaterThanOrEqual(decimal.Zero))
		assert.True(t, y.TotalTSPBalance().GreaterThanOrEqual(decimal.Zero), "age %d balance went negative: %s", y.Age, y.TotalTSPBalance())
	}
}

func TestEngineRunSupplementEndsAt62(t *testing.T) {
	cfg := sampleConfig()
	cfg.RetirementAge = decimal.NewFromInt(55)
	cfg.CreditableServiceYears = decimal.NewFromInt(30)
	cfg.SSClaimingAge = 62
	reg := registry.NewDefaultRegistry()
	engine := NewEngine(reg)
	result, err := engine.Run(cfg)
	require.NoError(t, err)
	for _, y := range result.Years {
		if y.Age >= 62 {
			assert.True(t, y.Supplement.IsZero(), "age %d: supplement should stop at 62, got %s", y.Age, y.Supplement)
		}
	}
}

func TestEngineRunIsDeterministic(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	engine := NewEngine(reg)
	cfg := sampleConfig()
	a, err := engine.Run(cfg)
	require.NoError(t, err)
	b, err := engine.Run(cfg)
	require.NoError(t, err)
	require.Equal(t, len(a.Years), len(b.Years))
	for i := range a.Years {
		assert.True(t, a.Years[i].TotalTSPBalance().Equal(b.Years[i].TotalTSPBalance()))
		assert.True(t, a.Years[i].FederalTax.Equal(b.Years[i].FederalTax))
	}
}

func TestMarginalBracketFindsContainingBracket(t *testing.T) {
	brackets := []registry.Bracket{
		{MinIncome: decimal.Zero, MaxIncome: decimal.NewFromInt(10000), Rate: decimal.NewFromFloat(0.10)},
		{MinIncome: decimal.NewFromInt(10000), Unbounded: true, Rate: decimal.NewFromFloat(0.12)},
	}
	rate, headroom := marginalBracket(decimal.NewFromInt(5000), brackets)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.10)))
	assert.True(t, headroom.Equal(decimal.NewFromInt(5000)))

	rate, headroom = marginalBracket(decimal.NewFromInt(20000), brackets)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.12)))
	assert.True(t, headroom.IsZero())
}

func TestSSClaimingFactorAnchors(t *testing.T) {
	assert.True(t, ssClaimingFactor(62).Equal(decimal.NewFromFloat(0.70)))
	assert.True(t, ssClaimingFactor(67).Equal(decimal.NewFromFloat(1.00)))
	assert.True(t, ssClaimingFactor(70).Equal(decimal.NewFromFloat(1.24)))
	assert.True(t, ssClaimingFactor(61).Equal(decimal.NewFromFloat(0.70)))
	assert.True(t, ssClaimingFactor(75).Equal(decimal.NewFromFloat(1.24)))
}
