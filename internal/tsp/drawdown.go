package tsp

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/tsp/sequencing"
)

// PlannedWithdrawal returns baseAnnualWithdrawal compounded by colaRate
// for yearsSinceRetirement years, per spec.md §4.4 step 1, where
// baseAnnualWithdrawal = initialTSP * withdrawalRate.
func PlannedWithdrawal(initialTSP, withdrawalRate, colaRate decimal.Decimal, yearsSinceRetirement int) decimal.Decimal {
	base := initialTSP.Mul(withdrawalRate)
	growth := decimal.NewFromInt(1).Add(colaRate).Pow(decimal.NewFromInt(int64(yearsSinceRetirement)))
	return base.Mul(growth)
}

// RMDFloor returns traditionalBalance / rmdDivisor when isRMDYear is true,
// else zero, per spec.md §4.4 step 2. Callers determine isRMDYear and
// rmdDivisor via pkg/dateutil.IsRMDYear and internal/registry.RMDDivisor.
func RMDFloor(traditionalBalance, rmdDivisor decimal.Decimal, isRMDYear bool) decimal.Decimal {
	if !isRMDYear || rmdDivisor.IsZero() {
		return decimal.Zero
	}
	return traditionalBalance.Div(rmdDivisor)
}

// DrawdownResult reports the outcome of one year's withdrawal sequence.
type DrawdownResult struct {
	Buckets             Buckets
	TraditionalWithdrawn decimal.Decimal
	RothWithdrawn        decimal.Decimal
	TotalWithdrawn       decimal.Decimal
	RMDSatisfied         bool
	Depleted             bool
}

// WithdrawYear executes spec.md §4.4's deterministic per-year drawdown
// sequence (steps 3-7): it asks the strategy for a requested split,
// applies the RMD override, caps each amount at the available balance in
// its tax bucket, withdraws low-risk before high-risk within each bucket,
// then applies growth to all four buckets.
func WithdrawYear(
	buckets Buckets,
	strategy sequencing.Strategy,
	ctx sequencing.StrategyContext,
	rmdFloor decimal.Decimal,
	tradHighROI, tradLowROI, rothHighROI, rothLowROI decimal.Decimal,
) DrawdownResult {
	requested := strategy.Plan(ctx)

	traditionalRequested := requested.Traditional
	rothRequested := requested.Roth
	rmdSatisfied := true

	if traditionalRequested.LessThan(rmdFloor) {
		excess := rmdFloor.Sub(traditionalRequested)
		traditionalRequested = rmdFloor
		rothRequested = rothRequested.Sub(excess)
		if rothRequested.LessThan(decimal.Zero) {
			rothRequested = decimal.Zero
		}
	}
	if traditionalRequested.GreaterThan(buckets.TotalTraditional()) {
		traditionalRequested = buckets.TotalTraditional()
	}
	if traditionalRequested.LessThan(rmdFloor) {
		// Traditional balance can't cover the floor; withdrawing it all is
		// the satisfied-zero case spec.md §4.9 describes.
		rmdSatisfied = true
	}

	newTradLow, newTradHigh, tradWithdrawn := WithdrawFromBucket(buckets.TradLow, buckets.TradHigh, traditionalRequested)
	newRothLow, newRothHigh, rothWithdrawn := WithdrawFromBucket(buckets.RothLow, buckets.RothHigh, rothRequested)

	updated := Buckets{
		TradLow:  newTradLow,
		TradHigh: newTradHigh,
		RothLow:  newRothLow,
		RothHigh: newRothHigh,
	}
	depleted := updated.IsDepleted()

	updated = updated.ApplyGrowth(tradHighROI, tradLowROI, rothHighROI, rothLowROI).ClampNonNegative()

	return DrawdownResult{
		Buckets:              updated,
		TraditionalWithdrawn: tradWithdrawn.Round(2),
		RothWithdrawn:        rothWithdrawn.Round(2),
		TotalWithdrawn:       tradWithdrawn.Add(rothWithdrawn).Round(2),
		RMDSatisfied:         rmdSatisfied,
		Depleted:             depleted,
	}
}
