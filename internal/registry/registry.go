// Package registry implements the year-keyed, read-only rate and table
// lookups spec.md §4.1 describes: GS base pay, locality rates, federal tax
// brackets and standard deductions, IRMAA tiers, RMD divisors, and state
// tax rules. Every lookup is a pure function of the registry's loaded
// tables; a missing exact-year table never silently returns zero.
package registry

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/engineerr"
)

// Bracket is a single federal (or state, if ever tiered) tax bracket.
type Bracket struct {
	MinIncome  decimal.Decimal `yaml:"min_income" json:"min_income"`
	MaxIncome  decimal.Decimal `yaml:"max_income" json:"max_income"`
	Unbounded  bool            `yaml:"unbounded" json:"unbounded"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
}

// IRMAATier is a single Medicare IRMAA surcharge tier.
type IRMAATier struct {
	MinMAGI             decimal.Decimal `yaml:"min_magi" json:"min_magi"`
	MaxMAGI             decimal.Decimal `yaml:"max_magi" json:"max_magi"`
	Unbounded           bool            `yaml:"unbounded" json:"unbounded"`
	MonthlyMaxSurcharge decimal.Decimal `yaml:"monthly_max_surcharge" json:"monthly_max_surcharge"`
}

// StateRule is a state's flat-rate approximation of its tax treatment of
// retirement income, per spec.md §4.5 and the Open Question it records
// about eventually needing per-bracket state tables.
type StateRule struct {
	NoIncomeTax           bool            `yaml:"no_income_tax" json:"no_income_tax"`
	ExemptsFERSAnnuity    bool            `yaml:"exempts_fers_annuity" json:"exempts_fers_annuity"`
	ExemptsTSPWithdrawals bool            `yaml:"exempts_tsp_withdrawals" json:"exempts_tsp_withdrawals"`
	ApproximateFlatRate   decimal.Decimal `yaml:"approximate_flat_rate" json:"approximate_flat_rate"`
	Source                string          `yaml:"source" json:"source"`
}

// defaultUnknownStateRule is returned for states the registry has no data
// for, per spec.md §4.1.
var defaultUnknownStateRule = StateRule{
	NoIncomeTax:         false,
	ApproximateFlatRate: decimal.NewFromFloat(0.05),
}

// GSTable maps grade (1-15) to step (1-10) to annual base pay.
type GSTable map[int]map[int]decimal.Decimal

// yearData holds everything the registry knows for a single payYear.
type yearData struct {
	GSBasePay          GSTable
	LocalityRates      map[string]decimal.Decimal
	FederalBrackets    map[domain.FilingStatus][]Bracket
	StandardDeductions map[domain.FilingStatus]decimal.Decimal
	IRMAATiers         map[domain.FilingStatus][]IRMAATier
}

// YearData is the regulatory data known for a single pay/tax year.
type YearData struct {
	GSBasePay          map[int]map[int]decimal.Decimal         `yaml:"gs_base_pay"`
	LocalityRates      map[string]decimal.Decimal              `yaml:"locality_rates"`
	FederalBrackets    map[domain.FilingStatus][]Bracket       `yaml:"federal_brackets"`
	StandardDeductions map[domain.FilingStatus]decimal.Decimal `yaml:"standard_deductions"`
	IRMAATiers         map[domain.FilingStatus][]IRMAATier     `yaml:"irmaa_tiers"`
}

// Config is the YAML-loadable shape of the registry's regulatory data,
// following the year-keyed bundle style of the teacher's
// domain.RegulatoryConfig.
type Config struct {
	Metadata struct {
		DataYear    int    `yaml:"data_year"`
		LastUpdated string `yaml:"last_updated"`
	} `yaml:"metadata"`
	Years       map[int]YearData        `yaml:"years"`
	States      map[string]StateRule    `yaml:"states"`
	RMDDivisors map[int]decimal.Decimal `yaml:"rmd_divisors"`
}

// Registry is the assembled, read-only lookup store. It replaces the
// teacher's process-wide formula registry with an explicit value passed
// into every module that needs a lookup, per spec.md §9.
type Registry struct {
	years       map[int]yearData
	knownYears  []int // sorted ascending
	states      map[string]StateRule
	rmdDivisors map[int]decimal.Decimal
	minRMDAge   int
	maxRMDAge   int
}

// Load builds a Registry from a parsed Config.
func Load(cfg Config) *Registry {
	r := &Registry{
		years:       make(map[int]yearData),
		states:      cfg.States,
		rmdDivisors: cfg.RMDDivisors,
	}
	for year, yd := range cfg.Years {
		gs := GSTable{}
		for grade, steps := range yd.GSBasePay {
			gs[grade] = map[int]decimal.Decimal{}
			for step, pay := range steps {
				gs[grade][step] = pay
			}
		}
		r.years[year] = yearData{
			GSBasePay:          gs,
			LocalityRates:      yd.LocalityRates,
			FederalBrackets:    yd.FederalBrackets,
			StandardDeductions: yd.StandardDeductions,
			IRMAATiers:         yd.IRMAATiers,
		}
		r.knownYears = append(r.knownYears, year)
	}
	sort.Ints(r.knownYears)

	for age := range r.rmdDivisors {
		if r.minRMDAge == 0 || age < r.minRMDAge {
			r.minRMDAge = age
		}
		if age > r.maxRMDAge {
			r.maxRMDAge = age
		}
	}
	return r
}

// LoadYAML parses YAML bytes into a Config and builds a Registry.
func LoadYAML(data []byte) (*Registry, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing regulatory config: %w", err)
	}
	return Load(cfg), nil
}

// nearestKnownYear returns the latest known year <= target, or the
// earliest known year if target precedes all known years. ok is false if
// the registry has no years loaded at all.
func (r *Registry) nearestKnownYear(target int) (year int, ok bool) {
	if len(r.knownYears) == 0 {
		return 0, false
	}
	if target <= r.knownYears[0] {
		return r.knownYears[0], true
	}
	best := r.knownYears[0]
	for _, y := range r.knownYears {
		if y <= target {
			best = y
		}
	}
	return best, true
}

// GSBasePay looks up base pay for (grade, step) in payYear. If the exact
// year is known, return that cell. Otherwise start from the latest known
// table year <= payYear and compound assumedAnnualIncrease for the
// remaining gap. Fails with OutOfRange when grade/step is outside 1-15/1-10.
func (r *Registry) GSBasePay(grade, step, payYear int, assumedAnnualIncrease decimal.Decimal) (decimal.Decimal, error) {
	if grade < 1 || grade > 15 {
		return decimal.Zero, engineerr.NewOutOfRange("gsBasePay.grade", grade)
	}
	if step < 1 || step > 10 {
		return decimal.Zero, engineerr.NewOutOfRange("gsBasePay.step", step)
	}

	if yd, ok := r.years[payYear]; ok {
		if base, ok := yd.GSBasePay[grade][step]; ok {
			return base, nil
		}
	}

	baseYear, ok := r.nearestKnownYear(payYear)
	if !ok {
		return decimal.Zero, engineerr.NewOutOfRange("gsBasePay.year", payYear)
	}
	yd, ok := r.years[baseYear]
	if !ok {
		return decimal.Zero, engineerr.NewOutOfRange("gsBasePay.year", payYear)
	}
	base, ok := yd.GSBasePay[grade][step]
	if !ok {
		return decimal.Zero, engineerr.NewOutOfRange("gsBasePay.cell", fmt.Sprintf("grade=%d step=%d", grade, step))
	}

	gap := payYear - baseYear
	if gap <= 0 {
		return base, nil
	}
	factor := decimal.NewFromInt(1).Add(assumedAnnualIncrease)
	scaled := base
	for i := 0; i < gap; i++ {
		scaled = scaled.Mul(factor)
	}
	return scaled, nil
}

// LocalityRate looks up the locality percentage for code in payYear,
// case-insensitively. Falls back to the most recent prior year with data,
// then to the RUS rate for unrecognized codes, emitting UnknownLocality.
func (r *Registry) LocalityRate(code string, payYear int) (decimal.Decimal, []engineerr.Warning) {
	var warnings []engineerr.Warning
	upper := normalizeLocality(code)

	year, ok := r.nearestKnownYear(payYear)
	if !ok {
		return decimal.Zero, append(warnings, engineerr.NewWarning(engineerr.WarnYearOutsideKnownTables, "no locality tables loaded"))
	}
	yd := r.years[year]
	if rate, ok := findLocality(yd.LocalityRates, upper); ok {
		if year != payYear {
			warnings = append(warnings, engineerr.NewWarning(engineerr.WarnYearOutsideKnownTables,
				fmt.Sprintf("locality table for %d projected from %d", payYear, year)))
		}
		return rate, warnings
	}

	rus, ok := findLocality(yd.LocalityRates, normalizeLocality(domain.DefaultLocality))
	warnings = append(warnings, engineerr.NewWarning(engineerr.WarnUnknownLocality,
		fmt.Sprintf("locality %q not found for year %d, using %s", code, payYear, domain.DefaultLocality)))
	if !ok {
		return decimal.Zero, warnings
	}
	return rus, warnings
}

func normalizeLocality(code string) string {
	out := make([]byte, len(code))
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

func findLocality(rates map[string]decimal.Decimal, upperCode string) (decimal.Decimal, bool) {
	for code, rate := range rates {
		if normalizeLocality(code) == upperCode {
			return rate, true
		}
	}
	return decimal.Zero, false
}

// FederalBrackets returns the bracket schedule for year/filingStatus. Years
// before the earliest known table use the earliest; years after the latest
// use the latest.
func (r *Registry) FederalBrackets(year int, filingStatus domain.FilingStatus) []Bracket {
	y, ok := r.clampToLatestKnown(year)
	if !ok {
		return nil
	}
	return r.years[y].FederalBrackets[filingStatus]
}

// StandardDeduction returns the standard deduction for year/filingStatus,
// using the same boundary rule as FederalBrackets.
func (r *Registry) StandardDeduction(year int, filingStatus domain.FilingStatus) decimal.Decimal {
	y, ok := r.clampToLatestKnown(year)
	if !ok {
		return decimal.Zero
	}
	return r.years[y].StandardDeductions[filingStatus]
}

// IRMAATiers returns the IRMAA tier schedule for year/filingStatus.
func (r *Registry) IRMAATiers(year int, filingStatus domain.FilingStatus) []IRMAATier {
	y, ok := r.clampToLatestKnown(year)
	if !ok {
		return nil
	}
	return r.years[y].IRMAATiers[filingStatus]
}

// clampToLatestKnown clamps target to [earliest, latest] known year.
func (r *Registry) clampToLatestKnown(target int) (int, bool) {
	if len(r.knownYears) == 0 {
		return 0, false
	}
	if target <= r.knownYears[0] {
		return r.knownYears[0], true
	}
	latest := r.knownYears[len(r.knownYears)-1]
	if target >= latest {
		return latest, true
	}
	return r.nearestKnownYear(target)
}

// RMDDivisor returns the IRS Uniform Lifetime Table divisor for age. Ages
// below the earliest tabulated age use the earliest entry; ages above the
// latest use the latest entry (spec.md §4.1: age<72 -> age-72 divisor,
// age>115 -> age-115 divisor, generalized to whatever table is loaded).
func (r *Registry) RMDDivisor(age int) decimal.Decimal {
	if len(r.rmdDivisors) == 0 {
		return decimal.Zero
	}
	if age < r.minRMDAge {
		age = r.minRMDAge
	}
	if age > r.maxRMDAge {
		age = r.maxRMDAge
	}
	return r.rmdDivisors[age]
}

// StateTaxRule returns the state rule for stateCode/year. Unknown states
// default to {noIncomeTax=false, flatRate=0.05, noExemptions} and emit
// UnknownState.
func (r *Registry) StateTaxRule(stateCode string, year int) (StateRule, []engineerr.Warning) {
	if stateCode == "" {
		return StateRule{NoIncomeTax: true, Source: "no state selected"}, nil
	}
	upper := normalizeLocality(stateCode)
	for code, rule := range r.states {
		if normalizeLocality(code) == upper {
			return rule, nil
		}
	}
	return defaultUnknownStateRule, []engineerr.Warning{
		engineerr.NewWarning(engineerr.WarnUnknownState, fmt.Sprintf("state %q not found, using flat 5%% default", stateCode)),
	}
}
