package projection

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/registry"
)

func TestBreakEvenWithdrawalRateConverges(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	engine := NewEngine(reg)
	cfg := sampleConfig()

	result, err := engine.BreakEvenWithdrawalRate(cfg, 80, decimal.NewFromFloat(0.001), decimal.NewFromFloat(0.15))
	require.NoError(t, err)
	assert.True(t, result.WithdrawalRate.GreaterThan(decimal.Zero))
	assert.True(t, result.WithdrawalRate.LessThanOrEqual(decimal.NewFromFloat(0.15)))
	assert.Greater(t, result.Iterations, 0)
}

func TestBreakEvenWithdrawalRateHigherRateDepletesEarlier(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	engine := NewEngine(reg)
	cfg := sampleConfig()

	lowRateResult, err := engine.Run(withRate(cfg, decimal.NewFromFloat(0.02)))
	require.NoError(t, err)
	highRateResult, err := engine.Run(withRate(cfg, decimal.NewFromFloat(0.10)))
	require.NoError(t, err)

	lowDepletion := 999
	if lowRateResult.FirstDepletionAge != nil {
		lowDepletion = *lowRateResult.FirstDepletionAge
	}
	highDepletion := 999
	if highRateResult.FirstDepletionAge != nil {
		highDepletion = *highRateResult.FirstDepletionAge
	}
	assert.LessOrEqual(t, highDepletion, lowDepletion)
}

func withRate(cfg domain.SimulationConfig, rate decimal.Decimal) domain.SimulationConfig {
	cfg.WithdrawalRate = rate
	return cfg
}
