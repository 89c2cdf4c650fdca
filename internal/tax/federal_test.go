package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/registry"
)

func singleBrackets2024() []registry.Bracket {
	d := func(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
	return []registry.Bracket{
		{MinIncome: d(0), MaxIncome: d(11600), Rate: d(0.10)},
		{MinIncome: d(11600), MaxIncome: d(47150), Rate: d(0.12)},
		{MinIncome: d(47150), MaxIncome: d(100525), Rate: d(0.22)},
		{MinIncome: d(100525), MaxIncome: d(191950), Rate: d(0.24)},
		{MinIncome: d(191950), MaxIncome: d(243725), Rate: d(0.32)},
		{MinIncome: d(243725), MaxIncome: d(609350), Rate: d(0.35)},
		{MinIncome: d(609350), Unbounded: true, Rate: d(0.37)},
	}
}

func TestFederalTaxZeroIncome(t *testing.T) {
	got := FederalTax(decimal.Zero, singleBrackets2024())
	assert.True(t, got.IsZero())
}

func TestFederalTaxWithinFirstBracket(t *testing.T) {
	got := FederalTax(decimal.NewFromInt(10000), singleBrackets2024())
	assert.True(t, got.Equal(decimal.NewFromInt(1000)), "got %s", got)
}

func TestFederalTaxAcrossMultipleBrackets(t *testing.T) {
	// 11600 @ 10% = 1160; (47150-11600) @ 12% = 4266; (50000-47150) @ 22% = 627
	got := FederalTax(decimal.NewFromInt(50000), singleBrackets2024())
	expected := decimal.NewFromFloat(1160).Add(decimal.NewFromFloat(4266)).Add(decimal.NewFromFloat(627))
	assert.True(t, got.Equal(expected), "got %s want %s", got, expected)
}

func TestFederalTaxTopUnboundedBracket(t *testing.T) {
	got := FederalTax(decimal.NewFromInt(1000000), singleBrackets2024())
	assert.True(t, got.GreaterThan(decimal.NewFromInt(240000)))
}

func TestProvisionalIncomeAndSSFraction(t *testing.T) {
	pi := ProvisionalIncome(decimal.NewFromInt(20000), decimal.Zero, decimal.NewFromInt(20000))
	assert.True(t, pi.Equal(decimal.NewFromInt(30000)))
}

func TestTaxableSSFractionTiers(t *testing.T) {
	assert.True(t, TaxableSSFraction(domain.FilingSingle, decimal.NewFromInt(20000)).IsZero())
	assert.True(t, TaxableSSFraction(domain.FilingSingle, decimal.NewFromInt(30000)).Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, TaxableSSFraction(domain.FilingSingle, decimal.NewFromInt(40000)).Equal(decimal.NewFromFloat(0.85)))
	assert.True(t, TaxableSSFraction(domain.FilingMarriedSeparate, decimal.Zero).Equal(decimal.NewFromFloat(0.85)))
}
