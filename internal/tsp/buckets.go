// Package tsp implements Thrift Savings Plan accumulation and drawdown:
// contribution limits, agency match, the dual-pot (Traditional/Roth) x
// dual-risk (high/low) balance model, and the deterministic per-year
// withdrawal sequence, per spec.md §4.4.
package tsp

import (
	"github.com/shopspring/decimal"
)

// Buckets holds the four balances that make up a TSP account: Traditional
// and Roth, each split into a high-risk and low-risk sleeve.
type Buckets struct {
	TradHigh decimal.Decimal
	TradLow  decimal.Decimal
	RothHigh decimal.Decimal
	RothLow  decimal.Decimal
}

// InitializeAtRetirement splits a lump TSP balance into the four buckets
// using the traditional/Roth split and the high/low-risk split, per
// spec.md §4.4.
func InitializeAtRetirement(totalBalance, traditionalPct, highRiskPct decimal.Decimal) Buckets {
	tradTotal := totalBalance.Mul(traditionalPct)
	rothTotal := totalBalance.Sub(tradTotal)
	return Buckets{
		TradHigh: tradTotal.Mul(highRiskPct),
		TradLow:  tradTotal.Sub(tradTotal.Mul(highRiskPct)),
		RothHigh: rothTotal.Mul(highRiskPct),
		RothLow:  rothTotal.Sub(rothTotal.Mul(highRiskPct)),
	}
}

// TotalTraditional returns TradHigh + TradLow.
func (b Buckets) TotalTraditional() decimal.Decimal {
	return b.TradHigh.Add(b.TradLow)
}

// TotalRoth returns RothHigh + RothLow.
func (b Buckets) TotalRoth() decimal.Decimal {
	return b.RothHigh.Add(b.RothLow)
}

// Total returns the sum of all four buckets.
func (b Buckets) Total() decimal.Decimal {
	return b.TotalTraditional().Add(b.TotalRoth())
}

// IsDepleted reports whether the total balance is zero or negative.
func (b Buckets) IsDepleted() bool {
	return !b.Total().IsPositive()
}

// ClampNonNegative floors every bucket at zero.
func (b Buckets) ClampNonNegative() Buckets {
	zero := decimal.Zero
	clamp := func(d decimal.Decimal) decimal.Decimal {
		if d.LessThan(zero) {
			return zero
		}
		return d
	}
	return Buckets{
		TradHigh: clamp(b.TradHigh),
		TradLow:  clamp(b.TradLow),
		RothHigh: clamp(b.RothHigh),
		RothLow:  clamp(b.RothLow),
	}
}

// ApplyGrowth compounds each bucket at its own rate of return, per
// spec.md §4.4 step 7.
func (b Buckets) ApplyGrowth(tradHighROI, tradLowROI, rothHighROI, rothLowROI decimal.Decimal) Buckets {
	one := decimal.NewFromInt(1)
	return Buckets{
		TradHigh: b.TradHigh.Mul(one.Add(tradHighROI)),
		TradLow:  b.TradLow.Mul(one.Add(tradLowROI)),
		RothHigh: b.RothHigh.Mul(one.Add(rothHighROI)),
		RothLow:  b.RothLow.Mul(one.Add(rothLowROI)),
	}
}

// WithdrawFromBucket removes amount from a tax bucket's low-risk sleeve
// first, then its high-risk sleeve, per spec.md §4.4 step 6. It returns
// the updated (low, high) balances and the amount actually withdrawn
// (capped at what was available).
func WithdrawFromBucket(low, high, amount decimal.Decimal) (newLow, newHigh, withdrawn decimal.Decimal) {
	available := low.Add(high)
	if amount.GreaterThan(available) {
		amount = available
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return low, high, decimal.Zero
	}
	fromLow := amount
	if fromLow.GreaterThan(low) {
		fromLow = low
	}
	fromHigh := amount.Sub(fromLow)
	newLow = low.Sub(fromLow)
	newHigh = high.Sub(fromHigh)
	return newLow, newHigh, amount
}
