package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	p := NewInputParser()
	assert.NotNil(t, p)
}

func TestLoadScenario_FileNotFound(t *testing.T) {
	p := NewInputParser()
	_, err := p.LoadScenario("/no/such/scenario.yaml")
	require.Error(t, err)
}

func TestLoadScenario_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	yamlContent := `
label: "Test Scenario"
birth_date: 1965-03-15T00:00:00Z
career_profile:
  leave_scd: 2000-01-01T00:00:00Z
  retirement_scd: 2000-01-01T00:00:00Z
  events:
    - kind: hire
      effective_date: 2000-01-01T00:00:00Z
      grade: 12
      step: 1
      locality: "RUS"
      pay_system: GS
assumptions:
  retirement_date: 2026-06-30T00:00:00Z
  tsp_growth_rate_high: "0.07"
  tsp_growth_rate_low: "0.03"
  cola_rate: "0.02"
  retirement_horizon_years: 30
  tsp_withdrawal_rate: "0.04"
  ss_monthly_estimate_at_62: "1800"
expense_profile:
  base_year: 2026
  inflation_rate: "0.025"
  categories:
    - category: housing
      annual_amount: "18000"
tsp_snapshots:
  - as_of: 2026-06-30T00:00:00Z
    traditional_balance: "500000"
    roth_balance: "100000"
    allocation:
      - fund: C
        percent: "1.0"
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))

	p := NewInputParser()
	in, err := p.LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Scenario", in.Label)
	assert.Len(t, in.CareerProfile.Events, 1)
	assert.Equal(t, 30, in.Assumptions.RetirementHorizonYears)
}

func TestLoadScenario_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: valid: yaml: ["), 0o644))

	p := NewInputParser()
	_, err := p.LoadScenario(path)
	require.Error(t, err)
}

func TestLoadRegulatoryConfig_FileNotFound(t *testing.T) {
	p := NewInputParser()
	_, err := p.LoadRegulatoryConfig("/no/such/regulatory.yaml")
	require.Error(t, err)
}

func TestLoadRegulatoryConfig_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regulatory.yaml")
	yamlContent := `
metadata:
  data_year: 2026
  last_updated: "2026-01-01"
years:
  2026:
    gs_base_pay:
      12:
        1: "70000"
    locality_rates:
      RUS: "0.1659"
    federal_brackets:
      single:
        - min_income: "0"
          max_income: "11000"
          rate: "0.10"
        - min_income: "11000"
          max_income: "0"
          unbounded: true
          rate: "0.12"
    standard_deductions:
      single: "14600"
    irmaa_tiers:
      single:
        - min_magi: "0"
          max_magi: "103000"
          monthly_max_surcharge: "0"
rmd_divisors:
  73: "26.5"
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))

	p := NewInputParser()
	reg, err := p.LoadRegulatoryConfig(path)
	require.NoError(t, err)
	assert.NotNil(t, reg)
}
