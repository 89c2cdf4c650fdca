// Package sequencing implements the withdrawal-strategy interface and the
// concrete strategies (proportional, traditional-first, roth-first,
// custom, tax-bracket-fill) that decide how a planned annual withdrawal
// splits across the Traditional and Roth TSP pools, per spec.md §4.4.
package sequencing

import "github.com/shopspring/decimal"

// Kind identifies which strategy produced a RequestedSplit.
type Kind string

const (
	Proportional   Kind = "proportional"
	TraditionalFirst Kind = "traditional-first"
	RothFirst      Kind = "roth-first"
	Custom         Kind = "custom"
	TaxBracketFill Kind = "tax-bracket-fill"
)

// StrategyContext carries the inputs a strategy needs to split a planned
// withdrawal between Traditional and Roth, before the RMD override and
// balance caps are applied by the caller.
type StrategyContext struct {
	TraditionalBalance decimal.Decimal
	RothBalance        decimal.Decimal
	PlannedWithdrawal  decimal.Decimal

	// CurrentOrdinaryIncome is non-TSP ordinary income already accrued
	// this year (annuity, SS taxable portion, etc.), used by
	// tax-bracket-fill to find remaining bracket headroom.
	CurrentOrdinaryIncome decimal.Decimal
	// BracketCeiling is the upper bound of the target federal bracket
	// (the prior year's inflation-adjusted schedule, per spec.md §4.4).
	BracketCeiling decimal.Decimal

	// CustomTraditionalPercent is used only by the Custom strategy.
	CustomTraditionalPercent decimal.Decimal
}

// RequestedSplit is a strategy's proposed Traditional/Roth withdrawal,
// before RMD override and balance capping.
type RequestedSplit struct {
	Traditional decimal.Decimal
	Roth        decimal.Decimal
}

// Strategy decides how a planned withdrawal splits across Traditional
// and Roth balances.
type Strategy interface {
	Name() Kind
	Plan(ctx StrategyContext) RequestedSplit
}

// New constructs the named strategy. customTraditionalPercent is only
// used when kind is Custom. Unknown kinds fall back to Proportional.
func New(kind Kind, customTraditionalPercent decimal.Decimal) Strategy {
	switch kind {
	case TraditionalFirst:
		return traditionalFirstStrategy{}
	case RothFirst:
		return rothFirstStrategy{}
	case Custom:
		return customStrategy{traditionalPercent: customTraditionalPercent}
	case TaxBracketFill:
		return taxBracketFillStrategy{}
	default:
		return proportionalStrategy{}
	}
}
