package sequencing

import "github.com/shopspring/decimal"

// proportionalStrategy splits the planned withdrawal by the current
// Traditional/Roth balance ratio.
type proportionalStrategy struct{}

func (proportionalStrategy) Name() Kind { return Proportional }

func (proportionalStrategy) Plan(ctx StrategyContext) RequestedSplit {
	total := ctx.TraditionalBalance.Add(ctx.RothBalance)
	if total.IsZero() {
		return RequestedSplit{}
	}
	tradShare := ctx.TraditionalBalance.Div(total)
	trad := ctx.PlannedWithdrawal.Mul(tradShare)
	return RequestedSplit{Traditional: trad, Roth: ctx.PlannedWithdrawal.Sub(trad)}
}

// traditionalFirstStrategy exhausts Traditional before drawing Roth.
type traditionalFirstStrategy struct{}

func (traditionalFirstStrategy) Name() Kind { return TraditionalFirst }

func (traditionalFirstStrategy) Plan(ctx StrategyContext) RequestedSplit {
	trad := ctx.PlannedWithdrawal
	if trad.GreaterThan(ctx.TraditionalBalance) {
		trad = ctx.TraditionalBalance
	}
	roth := ctx.PlannedWithdrawal.Sub(trad)
	return RequestedSplit{Traditional: trad, Roth: roth}
}

// rothFirstStrategy exhausts Roth before drawing Traditional.
type rothFirstStrategy struct{}

func (rothFirstStrategy) Name() Kind { return RothFirst }

func (rothFirstStrategy) Plan(ctx StrategyContext) RequestedSplit {
	roth := ctx.PlannedWithdrawal
	if roth.GreaterThan(ctx.RothBalance) {
		roth = ctx.RothBalance
	}
	trad := ctx.PlannedWithdrawal.Sub(roth)
	return RequestedSplit{Traditional: trad, Roth: roth}
}

// customStrategy splits by a fixed Traditional percentage supplied by the
// caller's configuration.
type customStrategy struct {
	traditionalPercent decimal.Decimal
}

func (customStrategy) Name() Kind { return Custom }

func (s customStrategy) Plan(ctx StrategyContext) RequestedSplit {
	trad := ctx.PlannedWithdrawal.Mul(s.traditionalPercent)
	return RequestedSplit{Traditional: trad, Roth: ctx.PlannedWithdrawal.Sub(trad)}
}

// taxBracketFillStrategy draws Traditional only up to the remaining
// headroom in the current federal bracket, then draws the remainder from
// Roth, per spec.md §4.4 step 3.
type taxBracketFillStrategy struct{}

func (taxBracketFillStrategy) Name() Kind { return TaxBracketFill }

func (taxBracketFillStrategy) Plan(ctx StrategyContext) RequestedSplit {
	headroom := ctx.BracketCeiling.Sub(ctx.CurrentOrdinaryIncome)
	if headroom.LessThan(decimal.Zero) {
		headroom = decimal.Zero
	}

	trad := ctx.PlannedWithdrawal
	if trad.GreaterThan(headroom) {
		trad = headroom
	}
	if trad.GreaterThan(ctx.TraditionalBalance) {
		trad = ctx.TraditionalBalance
	}
	roth := ctx.PlannedWithdrawal.Sub(trad)
	return RequestedSplit{Traditional: trad, Roth: roth}
}
