package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/fersproj/internal/registry"
)

func sampleIRMAATiers() []registry.IRMAATier {
	d := func(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
	return []registry.IRMAATier{
		{MinMAGI: d(0), MaxMAGI: d(103000), MonthlyMaxSurcharge: d(0)},
		{MinMAGI: d(103000), MaxMAGI: d(129000), MonthlyMaxSurcharge: d(69.90)},
		{MinMAGI: d(129000), Unbounded: true, MonthlyMaxSurcharge: d(174.70)},
	}
}

func TestIRMAASurchargeZeroSurchargeTier(t *testing.T) {
	got := IRMAASurcharge(decimal.NewFromInt(50000), sampleIRMAATiers())
	assert.True(t, got.IsZero())
}

func TestIRMAASurchargeMiddleTier(t *testing.T) {
	got := IRMAASurcharge(decimal.NewFromInt(110000), sampleIRMAATiers())
	expected := decimal.NewFromFloat(69.90).Mul(decimal.NewFromInt(12))
	assert.True(t, got.Equal(expected), "got %s", got)
}

func TestIRMAASurchargeUnboundedTopTier(t *testing.T) {
	got := IRMAASurcharge(decimal.NewFromInt(900000), sampleIRMAATiers())
	expected := decimal.NewFromFloat(174.70).Mul(decimal.NewFromInt(12))
	assert.True(t, got.Equal(expected))
}

func TestClassifyIRMAARiskSafe(t *testing.T) {
	tier, distance := ClassifyIRMAARisk(decimal.NewFromInt(50000), sampleIRMAATiers())
	assert.Equal(t, RiskSafe, tier)
	assert.True(t, distance.GreaterThan(decimal.NewFromInt(IRMAAWarningDistance)))
}

func TestClassifyIRMAARiskWarningNearBoundary(t *testing.T) {
	tier, distance := ClassifyIRMAARisk(decimal.NewFromInt(100000), sampleIRMAATiers())
	assert.Equal(t, RiskWarning, tier)
	assert.True(t, distance.LessThanOrEqual(decimal.NewFromInt(IRMAAWarningDistance)))
}

func TestClassifyIRMAARiskBreach(t *testing.T) {
	tier, distance := ClassifyIRMAARisk(decimal.NewFromInt(110000), sampleIRMAATiers())
	assert.Equal(t, RiskBreach, tier)
	assert.True(t, distance.IsZero())
}
