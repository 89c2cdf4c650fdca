package tsp

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/fersproj/internal/tsp/sequencing"
)

func TestPlannedWithdrawalYearOne(t *testing.T) {
	got := PlannedWithdrawal(decimal.NewFromInt(400000), decimal.NewFromFloat(0.04), decimal.NewFromFloat(0.025), 0)
	assert.True(t, got.Equal(decimal.NewFromInt(16000)), "got %s", got)
}

func TestPlannedWithdrawalCompoundsWithCOLA(t *testing.T) {
	y0 := PlannedWithdrawal(decimal.NewFromInt(400000), decimal.NewFromFloat(0.04), decimal.NewFromFloat(0.025), 0)
	y1 := PlannedWithdrawal(decimal.NewFromInt(400000), decimal.NewFromFloat(0.04), decimal.NewFromFloat(0.025), 1)
	assert.True(t, y1.GreaterThan(y0))
}

func TestRMDFloorOnlyAppliesInRMDYear(t *testing.T) {
	assert.True(t, RMDFloor(decimal.NewFromInt(300000), decimal.NewFromFloat(26.5), false).IsZero())
	got := RMDFloor(decimal.NewFromInt(300000), decimal.NewFromFloat(26.5), true)
	expected := decimal.NewFromInt(300000).Div(decimal.NewFromFloat(26.5))
	assert.True(t, got.Equal(expected))
}

// RMD override with roth-first strategy, per spec.md §8: Traditional
// $300,000, Roth $100,000, planned withdrawal $12,000, rmdDivisor(73) =
// 26.5 => RMD = $11,320.75. Unconstrained roth-first would be roth=12000,
// trad=0; after override trad=11320.75, roth=679.25, rmdSatisfied=true.
func TestWithdrawYearRMDOverrideWithRothFirst(t *testing.T) {
	buckets := Buckets{TradLow: decimal.NewFromInt(300000), RothLow: decimal.NewFromInt(100000)}
	strategy := sequencing.New(sequencing.RothFirst, decimal.Zero)
	ctx := sequencing.StrategyContext{
		TraditionalBalance: buckets.TotalTraditional(),
		RothBalance:        buckets.TotalRoth(),
		PlannedWithdrawal:  decimal.NewFromInt(12000),
	}
	rmdFloor := RMDFloor(buckets.TotalTraditional(), decimal.NewFromFloat(26.5), true)
	require.True(t, rmdFloor.Round(2).Equal(decimal.NewFromFloat(11320.75)), "got %s", rmdFloor)

	result := WithdrawYear(buckets, strategy, ctx, rmdFloor, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)

	assert.True(t, result.TraditionalWithdrawn.Equal(decimal.NewFromFloat(11320.75)), "got %s", result.TraditionalWithdrawn)
	assert.True(t, result.RothWithdrawn.Equal(decimal.NewFromFloat(679.25)), "got %s", result.RothWithdrawn)
	assert.True(t, result.RMDSatisfied)
	assert.True(t, result.TotalWithdrawn.Equal(decimal.NewFromInt(12000)))
}

func TestWithdrawYearWithdrawalConservation(t *testing.T) {
	buckets := Buckets{TradLow: decimal.NewFromInt(50000), TradHigh: decimal.NewFromInt(50000), RothLow: decimal.NewFromInt(20000), RothHigh: decimal.NewFromInt(20000)}
	strategy := sequencing.New(sequencing.Proportional, decimal.Zero)
	ctx := sequencing.StrategyContext{
		TraditionalBalance: buckets.TotalTraditional(),
		RothBalance:        buckets.TotalRoth(),
		PlannedWithdrawal:  decimal.NewFromInt(10000),
	}
	result := WithdrawYear(buckets, strategy, ctx, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	assert.True(t, result.TotalWithdrawn.Equal(decimal.NewFromInt(10000)))
}

func TestWithdrawYearCapsAtAvailableBalance(t *testing.T) {
	buckets := Buckets{TradLow: decimal.NewFromInt(1000)}
	strategy := sequencing.New(sequencing.TraditionalFirst, decimal.Zero)
	ctx := sequencing.StrategyContext{
		TraditionalBalance: buckets.TotalTraditional(),
		RothBalance:        buckets.TotalRoth(),
		PlannedWithdrawal:  decimal.NewFromInt(50000),
	}
	result := WithdrawYear(buckets, strategy, ctx, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	assert.True(t, result.TotalWithdrawn.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.Buckets.Total().IsZero())
}

func TestWithdrawYearNeverGoesNegative(t *testing.T) {
	buckets := Buckets{}
	strategy := sequencing.New(sequencing.Proportional, decimal.Zero)
	ctx := sequencing.StrategyContext{PlannedWithdrawal: decimal.NewFromInt(5000)}
	result := WithdrawYear(buckets, strategy, ctx, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	assert.True(t, result.Buckets.Total().GreaterThanOrEqual(decimal.Zero))
	assert.True(t, result.Depleted)
}
