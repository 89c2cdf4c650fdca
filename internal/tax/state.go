package tax

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/registry"
)

// StateTax computes state income tax per spec.md §4.5: zero if the state
// has no income tax, else a flat rate applied to gross minus any exempted
// annuity and TSP withdrawal amounts, floored at zero.
func StateTax(rule registry.StateRule, grossAnnuity, tspWithdrawal, otherStateTaxableIncome decimal.Decimal) decimal.Decimal {
	if rule.NoIncomeTax {
		return decimal.Zero
	}
	taxable := otherStateTaxableIncome
	if !rule.ExemptsFERSAnnuity {
		taxable = taxable.Add(grossAnnuity)
	}
	if !rule.ExemptsTSPWithdrawals {
		taxable = taxable.Add(tspWithdrawal)
	}
	if taxable.LessThan(decimal.Zero) {
		taxable = decimal.Zero
	}
	return taxable.Mul(rule.ApproximateFlatRate).Round(2)
}
