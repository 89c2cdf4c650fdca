package projection

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/engineerr"
	"github.com/rgehrsitz/fersproj/internal/registry"
)

func sampleInput() domain.SimulationInput {
	hire := time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC)
	retire := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	return domain.SimulationInput{
		BirthDate: time.Date(1963, 3, 15, 0, 0, 0, 0, time.UTC),
		CareerProfile: domain.CareerProfile{
			Events: []domain.CareerEvent{
				{Kind: domain.EventHire, EffectiveDate: hire, Grade: 12, Step: 1, Locality: "DCB", PaySystem: domain.PaySystemGS},
			},
			RetirementSCD: hire,
		},
		TSPSnapshots: []domain.TSPSnapshot{
			{AsOf: retire, TraditionalBalance: decimal.NewFromInt(400000), RothBalance: decimal.NewFromInt(100000)},
		},
		ExpenseProfile: domain.ExpenseProfile{
			BaseYear:      2026,
			Categories:    []domain.ExpenseCategory{{Category: "housing", AnnualAmount: decimal.NewFromInt(30000)}},
			InflationRate: decimal.NewFromFloat(0.025),
		},
		Assumptions: domain.CareerAssumptions{
			RetirementDate:         retire,
			TSPGrowthRateHigh:      decimal.NewFromFloat(0.07),
			TSPGrowthRateLow:       decimal.NewFromFloat(0.03),
			COLARate:               decimal.NewFromFloat(0.02),
			RetirementHorizonYears: 25,
			TSPWithdrawalRate:      decimal.NewFromFloat(0.04),
			SSMonthlyEstimateAt62:  decimal.NewFromInt(2200),
		},
	}
}

func TestResolveConfigDerivesHigh3AndEligibility(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	resolved, warnings, err := ResolveConfig(reg, sampleInput())
	require.NoError(t, err)
	// Pay years 1995-2026 with tables only for 2024 and 2025: one
	// year-outside-tables warning for each of the other 30 years.
	assert.Len(t, warnings, 30)
	for _, w := range warnings {
		assert.Equal(t, engineerr.WarnYearOutsideKnownTables, w.Kind)
	}
	assert.True(t, resolved.Config.High3Salary.GreaterThan(decimal.Zero))
	assert.True(t, resolved.Config.CreditableServiceYears.GreaterThan(decimal.NewFromInt(29)))
	assert.Equal(t, domain.EligibilityAge62Plus5, resolved.Eligibility)
}

func TestResolveConfigComputesTraditionalFraction(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	resolved, _, err := ResolveConfig(reg, sampleInput())
	require.NoError(t, err)
	assert.True(t, resolved.Config.TraditionalFraction.Equal(decimal.NewFromFloat(0.8)), "got %s", resolved.Config.TraditionalFraction)
	assert.True(t, resolved.Config.TSPBalanceAtRetirement.Equal(decimal.NewFromInt(500000)))
}

func TestResolveConfigClaimingAgeDefaultsToAtLeast62(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	in := sampleInput()
	in.BirthDate = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	resolved, _, err := ResolveConfig(reg, in)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, resolved.Config.SSClaimingAge, 62)
}
