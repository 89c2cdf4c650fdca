package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundBankersRounding(t *testing.T) {
	m, err := NewFromString("2.005")
	require.NoError(t, err)
	assert.Equal(t, "2.00", m.Round().String())

	m, err = NewFromString("2.015")
	require.NoError(t, err)
	assert.Equal(t, "2.02", m.Round().String())
}

func TestAnnualMonthlyRoundTrip(t *testing.T) {
	m := New(1000)
	assert.True(t, m.Annual().Equal(New(12000)))
	assert.True(t, m.Annual().Monthly().Equal(m))
}

func TestArithmetic(t *testing.T) {
	a := New(100)
	b := New(40)
	assert.True(t, a.Add(b).Equal(New(140)))
	assert.True(t, a.Sub(b).Equal(New(60)))
	assert.True(t, a.Mul(decimal.NewFromFloat(0.5)).Equal(New(50)))
}

func TestClampNonNegative(t *testing.T) {
	m := New(-5)
	assert.True(t, m.ClampNonNegative().IsZero())
	assert.True(t, New(5).ClampNonNegative().Equal(New(5)))
}

func TestMinMaxSum(t *testing.T) {
	a, b := New(10), New(20)
	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, Max(a, b).Equal(b))
	assert.True(t, Sum(a, b, New(5)).Equal(New(35)))
}
