package registry

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/engineerr"
)

func TestGSBasePayExactYear(t *testing.T) {
	r := NewDefaultRegistry()
	pay, err := r.GSBasePay(12, 5, 2024, d(0.02))
	require.NoError(t, err)
	assert.True(t, pay.IsPositive())
}

func TestGSBasePayOutOfRangeGrade(t *testing.T) {
	r := NewDefaultRegistry()
	_, err := r.GSBasePay(16, 1, 2024, d(0.02))
	var oor *engineerr.OutOfRange
	require.ErrorAs(t, err, &oor)
}

func TestGSBasePayProjectsForwardYear(t *testing.T) {
	r := NewDefaultRegistry()
	pay2025, err := r.GSBasePay(9, 1, 2025, d(0.02))
	require.NoError(t, err)
	pay2030, err := r.GSBasePay(9, 1, 2030, d(0.02))
	require.NoError(t, err)
	assert.True(t, pay2030.GreaterThan(pay2025))
}

func TestLocalityRateUnknownFallsBackToRUS(t *testing.T) {
	r := NewDefaultRegistry()
	rate, warnings := r.LocalityRate("nonexistent-locality", 2024)
	require.Len(t, warnings, 1)
	assert.Equal(t, engineerr.WarnUnknownLocality, warnings[0].Kind)
	rus, _ := r.LocalityRate("rus", 2024)
	assert.True(t, rate.Equal(rus))
}

func TestLocalityRateCaseInsensitive(t *testing.T) {
	r := NewDefaultRegistry()
	lower, w1 := r.LocalityRate("dcb", 2024)
	upper, w2 := r.LocalityRate("DCB", 2024)
	assert.Empty(t, w1)
	assert.Empty(t, w2)
	assert.True(t, lower.Equal(upper))
}

func TestFederalBracketsBoundaryYears(t *testing.T) {
	r := NewDefaultRegistry()
	early := r.FederalBrackets(2000, domain.FilingSingle)
	late := r.FederalBrackets(2099, domain.FilingSingle)
	require.NotEmpty(t, early)
	require.NotEmpty(t, late)
}

func TestRMDDivisorBoundaryAges(t *testing.T) {
	r := NewDefaultRegistry()
	assert.True(t, r.RMDDivisor(50).Equal(r.RMDDivisor(72)))
	assert.True(t, r.RMDDivisor(200).Equal(r.RMDDivisor(115)))
	assert.True(t, r.RMDDivisor(73).Equal(decimal.NewFromFloat(26.5)))
}

func TestStateTaxRuleUnknownState(t *testing.T) {
	r := NewDefaultRegistry()
	rule, warnings := r.StateTaxRule("ZZ", 2024)
	require.Len(t, warnings, 1)
	assert.Equal(t, engineerr.WarnUnknownState, warnings[0].Kind)
	assert.False(t, rule.NoIncomeTax)
	assert.True(t, rule.ApproximateFlatRate.Equal(d(0.05)))
}

func TestStateTaxRuleKnownExemptions(t *testing.T) {
	r := NewDefaultRegistry()
	rule, warnings := r.StateTaxRule("PA", 2024)
	assert.Empty(t, warnings)
	assert.True(t, rule.ExemptsFERSAnnuity)
	assert.True(t, rule.ExemptsTSPWithdrawals)
}

func TestStateTaxRuleNoStateSelected(t *testing.T) {
	r := NewDefaultRegistry()
	rule, warnings := r.StateTaxRule("", 2024)
	assert.Empty(t, warnings)
	assert.True(t, rule.NoIncomeTax)
}
