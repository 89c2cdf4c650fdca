package projection

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/domain"
)

// BreakEvenResult reports the withdrawal rate the binary search converged
// on and the depletion age it produces at that rate.
type BreakEvenResult struct {
	WithdrawalRate decimal.Decimal
	DepletionAge   *int
	Iterations     int
}

// BreakEvenWithdrawalRate binary-searches the TSP withdrawal rate that
// makes the projection deplete at targetDepletionAge, per spec.md §4's
// supplemented break-even query. minRate/maxRate bound the search; a
// narrower window converges faster but may miss the target if it excludes
// the true root.
func (e *Engine) BreakEvenWithdrawalRate(cfg domain.SimulationConfig, targetDepletionAge int, minRate, maxRate decimal.Decimal) (BreakEvenResult, error) {
	const maxIterations = 50
	tolerance := decimal.NewFromFloat(0.25)

	var best BreakEvenResult
	for i := 0; i < maxIterations; i++ {
		testRate := minRate.Add(maxRate).Div(decimal.NewFromInt(2))

		testCfg := cfg
		testCfg.WithdrawalRate = testRate

		result, err := e.Run(testCfg)
		if err != nil {
			return BreakEvenResult{}, err
		}

		depletionAge := testCfg.EndAge
		if result.FirstDepletionAge != nil {
			depletionAge = *result.FirstDepletionAge
		}
		best = BreakEvenResult{WithdrawalRate: testRate, DepletionAge: result.FirstDepletionAge, Iterations: i + 1}

		diff := decimal.NewFromInt(int64(depletionAge - targetDepletionAge))
		if diff.Abs().LessThanOrEqual(tolerance) {
			return best, nil
		}

		if depletionAge < targetDepletionAge {
			// Depleting too early: the rate is too aggressive, lower it.
			maxRate = testRate
		} else {
			minRate = testRate
		}

		if maxRate.Sub(minRate).LessThan(decimal.NewFromFloat(0.0001)) {
			break
		}
	}

	return best, nil
}
