package tax

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/domain"
)

// provisionalIncomeTiers holds (lowerThreshold, upperThreshold) per filing
// status, per spec.md §4.5's IRC §86 two-tier approximation.
var provisionalIncomeTiers = map[domain.FilingStatus][2]decimal.Decimal{
	domain.FilingSingle:          {decimal.NewFromInt(25000), decimal.NewFromInt(34000)},
	domain.FilingHeadOfHousehold: {decimal.NewFromInt(25000), decimal.NewFromInt(34000)},
	domain.FilingMarriedJoint:    {decimal.NewFromInt(32000), decimal.NewFromInt(44000)},
}

// ProvisionalIncome = AGI + tax-exempt interest + 0.5 x annual SS benefit.
func ProvisionalIncome(agi, taxExemptInterest, annualSSBenefit decimal.Decimal) decimal.Decimal {
	return agi.Add(taxExemptInterest).Add(annualSSBenefit.Mul(decimal.NewFromFloat(0.5)))
}

// TaxableSSFraction returns the taxable fraction of Social Security
// benefits for the given filing status and provisional income, per
// spec.md §4.5's two-tier table. married-separate is always 0.85.
func TaxableSSFraction(filingStatus domain.FilingStatus, provisionalIncome decimal.Decimal) decimal.Decimal {
	if filingStatus == domain.FilingMarriedSeparate {
		return decimal.NewFromFloat(0.85)
	}
	tiers, ok := provisionalIncomeTiers[filingStatus]
	if !ok {
		tiers = provisionalIncomeTiers[domain.FilingSingle]
	}
	l1, l2 := tiers[0], tiers[1]
	switch {
	case provisionalIncome.LessThanOrEqual(l1):
		return decimal.Zero
	case provisionalIncome.LessThanOrEqual(l2):
		return decimal.NewFromFloat(0.5)
	default:
		return decimal.NewFromFloat(0.85)
	}
}

// TaxableSocialSecurity applies TaxableSSFraction to the annual benefit.
func TaxableSocialSecurity(filingStatus domain.FilingStatus, annualSSBenefit, agi, taxExemptInterest decimal.Decimal) decimal.Decimal {
	pi := ProvisionalIncome(agi, taxExemptInterest, annualSSBenefit)
	fraction := TaxableSSFraction(filingStatus, pi)
	return annualSSBenefit.Mul(fraction).Round(2)
}
