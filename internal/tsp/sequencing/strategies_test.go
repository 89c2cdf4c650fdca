package sequencing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProportionalSplitsByBalanceRatio(t *testing.T) {
	s := New(Proportional, decimal.Zero)
	split := s.Plan(StrategyContext{
		TraditionalBalance: decimal.NewFromInt(300000),
		RothBalance:        decimal.NewFromInt(100000),
		PlannedWithdrawal:  decimal.NewFromInt(16000),
	})
	assert.True(t, split.Traditional.Equal(decimal.NewFromInt(12000)), "got %s", split.Traditional)
	assert.True(t, split.Roth.Equal(decimal.NewFromInt(4000)), "got %s", split.Roth)
}

func TestTraditionalFirstExhaustsTraditional(t *testing.T) {
	s := New(TraditionalFirst, decimal.Zero)
	split := s.Plan(StrategyContext{
		TraditionalBalance: decimal.NewFromInt(5000),
		RothBalance:        decimal.NewFromInt(100000),
		PlannedWithdrawal:  decimal.NewFromInt(16000),
	})
	assert.True(t, split.Traditional.Equal(decimal.NewFromInt(5000)))
	assert.True(t, split.Roth.Equal(decimal.NewFromInt(11000)))
}

func TestRothFirstPlansAllRothWhenSufficient(t *testing.T) {
	s := New(RothFirst, decimal.Zero)
	split := s.Plan(StrategyContext{
		TraditionalBalance: decimal.NewFromInt(300000),
		RothBalance:        decimal.NewFromInt(100000),
		PlannedWithdrawal:  decimal.NewFromInt(12000),
	})
	assert.True(t, split.Roth.Equal(decimal.NewFromInt(12000)))
	assert.True(t, split.Traditional.IsZero())
}

func TestCustomSplitsByFixedPercent(t *testing.T) {
	s := New(Custom, decimal.NewFromFloat(0.7))
	split := s.Plan(StrategyContext{PlannedWithdrawal: decimal.NewFromInt(10000)})
	assert.True(t, split.Traditional.Equal(decimal.NewFromInt(7000)))
	assert.True(t, split.Roth.Equal(decimal.NewFromInt(3000)))
}

// Degenerate case: non-TSP income already exhausts the bracket ceiling,
// so all $10,000 comes from Roth.
func TestTaxBracketFillDegenerateAllRoth(t *testing.T) {
	s := New(TaxBracketFill, decimal.Zero)
	split := s.Plan(StrategyContext{
		TraditionalBalance:    decimal.NewFromInt(300000),
		RothBalance:           decimal.NewFromInt(100000),
		PlannedWithdrawal:     decimal.NewFromInt(10000),
		CurrentOrdinaryIncome: decimal.NewFromInt(47150),
		BracketCeiling:        decimal.NewFromInt(47150),
	})
	assert.True(t, split.Traditional.IsZero())
	assert.True(t, split.Roth.Equal(decimal.NewFromInt(10000)))
}

// With $7,150 of headroom: Traditional = 7150, Roth = 2850.
func TestTaxBracketFillPartialHeadroom(t *testing.T) {
	s := New(TaxBracketFill, decimal.Zero)
	split := s.Plan(StrategyContext{
		TraditionalBalance:    decimal.NewFromInt(300000),
		RothBalance:           decimal.NewFromInt(100000),
		PlannedWithdrawal:     decimal.NewFromInt(10000),
		CurrentOrdinaryIncome: decimal.NewFromInt(40000),
		BracketCeiling:        decimal.NewFromInt(47150),
	})
	assert.True(t, split.Traditional.Equal(decimal.NewFromInt(7150)), "got %s", split.Traditional)
	assert.True(t, split.Roth.Equal(decimal.NewFromInt(2850)), "got %s", split.Roth)
}

func TestUnknownKindFallsBackToProportional(t *testing.T) {
	s := New(Kind("bogus"), decimal.Zero)
	assert.Equal(t, Proportional, s.Name())
}
