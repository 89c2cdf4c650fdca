package career

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/registry"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextWGIDateTerminalStep(t *testing.T) {
	assert.Nil(t, NextWGIDate(10, date(2020, time.January, 1)))
}

func TestNextWGIDateEarlySteps(t *testing.T) {
	next := NextWGIDate(1, date(2020, time.January, 1))
	require.NotNil(t, next)
	assert.Equal(t, date(2020, time.December, 30), next.Truncate(24*time.Hour))
}

func TestDeriveEffectiveSCDWithGap(t *testing.T) {
	events := []domain.CareerEvent{
		{Kind: domain.EventHire, EffectiveDate: date(2000, time.January, 1)},
		{Kind: domain.EventSeparation, EffectiveDate: date(2010, time.January, 1)},
		{Kind: domain.EventRehire, EffectiveDate: date(2011, time.January, 1)},
	}
	scd, err := DeriveEffectiveSCD(events)
	require.NoError(t, err)
	assert.True(t, scd.After(date(2000, time.January, 1)))
	assert.Equal(t, date(2000, time.December, 31), scd)
}

func TestDeriveEffectiveSCDRequiresHireFirst(t *testing.T) {
	events := []domain.CareerEvent{
		{Kind: domain.EventPromotion, EffectiveDate: date(2000, time.January, 1)},
	}
	_, err := DeriveEffectiveSCD(events)
	assert.Error(t, err)
}

func TestBuildSalaryHistoryMonotoneAndOmitsGaps(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	profile := domain.CareerProfile{
		Events: []domain.CareerEvent{
			{Kind: domain.EventHire, EffectiveDate: date(2018, time.January, 1), Grade: 9, Step: 1, Locality: "RUS", PaySystem: domain.PaySystemGS},
			{Kind: domain.EventSeparation, EffectiveDate: date(2020, time.June, 1)},
			{Kind: domain.EventRehire, EffectiveDate: date(2021, time.June, 1), Grade: 9, Step: 1},
		},
	}
	history, _, err := BuildSalaryHistory(reg, profile, 2024, decimal.NewFromFloat(0.02))
	require.NoError(t, err)
	require.NotEmpty(t, history)

	years := map[int]bool{}
	for _, y := range history {
		years[y.Year] = true
	}
	assert.False(t, years[2020] && years[2020], "sanity")

	for i := 1; i < len(history); i++ {
		if history[i].Year == history[i-1].Year+1 {
			assert.True(t, history[i].AnnualSalary.GreaterThanOrEqual(history[i-1].AnnualSalary))
		}
	}
}

func TestComputeHigh3FewerThanThreeYears(t *testing.T) {
	history := []domain.SalaryYear{
		{Year: 2022, AnnualSalary: decimal.NewFromInt(80000)},
		{Year: 2023, AnnualSalary: decimal.NewFromInt(90000)},
	}
	high3 := ComputeHigh3(history)
	assert.True(t, high3.Equal(decimal.NewFromInt(85000)))
}

func TestComputeHigh3PicksMaxWindow(t *testing.T) {
	history := []domain.SalaryYear{
		{Year: 2020, AnnualSalary: decimal.NewFromInt(60000)},
		{Year: 2021, AnnualSalary: decimal.NewFromInt(70000)},
		{Year: 2022, AnnualSalary: decimal.NewFromInt(90000)},
		{Year: 2023, AnnualSalary: decimal.NewFromInt(95000)},
		{Year: 2024, AnnualSalary: decimal.NewFromInt(100000)},
	}
	high3 := ComputeHigh3(history)
	expected := decimal.NewFromInt(90000).Add(decimal.NewFromInt(95000)).Add(decimal.NewFromInt(100000)).Div(decimal.NewFromInt(3))
	assert.True(t, high3.Equal(expected))
}

func TestComputeHigh3Empty(t *testing.T) {
	assert.True(t, ComputeHigh3(nil).IsZero())
}
