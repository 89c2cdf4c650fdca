package registry

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/domain"
)

// NewDefaultRegistry builds a Registry seeded with representative 2024/2025
// regulatory data. It exists so callers have a working registry without
// first authoring a regulatory.yaml document; production use is expected to
// call LoadYAML against a maintained table instead.
func NewDefaultRegistry() *Registry {
	return Load(defaultConfig())
}

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// generateGSTable approximates the OPM General Schedule base pay table: a
// per-grade starting rate and a roughly 2.6%-per-step progression within a
// grade, consistent with the published table's shape. It is not bit-exact
// against any single statutory year; the registry's year-to-year scaling
// rule (§4.1) is what the engine actually exercises.
func generateGSTable(gradeOneStepOne float64, gradeGrowth, stepGrowth float64) GSTable {
	table := GSTable{}
	for grade := 1; grade <= 15; grade++ {
		table[grade] = map[int]decimal.Decimal{}
		gradeBase := gradeOneStepOne
		for g := 1; g < grade; g++ {
			gradeBase *= 1 + gradeGrowth
		}
		stepPay := gradeBase
		for step := 1; step <= 10; step++ {
			table[grade][step] = d(stepPay).Round(2)
			stepPay *= 1 + stepGrowth
		}
	}
	return table
}

func defaultConfig() Config {
	cfg := Config{
		Years: map[int]YearData{},
		States: map[string]StateRule{
			"FL": {NoIncomeTax: true, Source: "no state income tax"},
			"TX": {NoIncomeTax: true, Source: "no state income tax"},
			"VA": {ApproximateFlatRate: d(0.0575), Source: "approximate flat rate"},
			"PA": {ApproximateFlatRate: d(0.0307), ExemptsFERSAnnuity: true, ExemptsTSPWithdrawals: true, Source: "PA exempts retirement income"},
			"MD": {ApproximateFlatRate: d(0.0475), Source: "approximate flat rate"},
		},
		RMDDivisors: map[int]decimal.Decimal{
			72: d(27.4), 73: d(26.5), 74: d(25.5), 75: d(24.6), 76: d(23.7),
			77: d(22.9), 78: d(22.0), 79: d(21.1), 80: d(20.2), 81: d(19.4),
			82: d(18.5), 83: d(17.7), 84: d(16.8), 85: d(16.0), 86: d(15.2),
			87: d(14.4), 88: d(13.7), 89: d(12.9), 90: d(12.2), 91: d(11.5),
			92: d(10.8), 93: d(10.1), 94: d(9.5), 95: d(8.9), 96: d(8.4),
			97: d(7.8), 98: d(7.3), 99: d(6.8), 100: d(6.4), 101: d(6.0),
			102: d(5.6), 103: d(5.2), 104: d(4.9), 105: d(4.6), 106: d(4.3),
			107: d(4.1), 108: d(3.9), 109: d(3.7), 110: d(3.5), 111: d(3.4),
			112: d(3.3), 113: d(3.1), 114: d(3.0), 115: d(2.9),
		},
	}

	gs2024 := generateGSTable(22000, 0.085, 0.026)
	gs2025 := generateGSTable(22660, 0.085, 0.026) // ~3% nationwide bump

	locality2024 := map[string]decimal.Decimal{
		"RUS":                d(0.1701),
		"DCB":                d(0.3348), // Washington-Baltimore-Arlington
		"NYC":                d(0.3654),
		"SFO":                d(0.4489),
		"ATL":                d(0.2341),
		"SEA":                d(0.2634),
	}
	locality2025 := map[string]decimal.Decimal{
		"RUS": d(0.1744), "DCB": d(0.3394), "NYC": d(0.3712), "SFO": d(0.4551), "ATL": d(0.2382), "SEA": d(0.2680),
	}

	brackets2024Single := []Bracket{
		{MinIncome: d(0), MaxIncome: d(11600), Rate: d(0.10)},
		{MinIncome: d(11600), MaxIncome: d(47150), Rate: d(0.12)},
		{MinIncome: d(47150), MaxIncome: d(100525), Rate: d(0.22)},
		{MinIncome: d(100525), MaxIncome: d(191950), Rate: d(0.24)},
		{MinIncome: d(191950), MaxIncome: d(243725), Rate: d(0.32)},
		{MinIncome: d(243725), MaxIncome: d(609350), Rate: d(0.35)},
		{MinIncome: d(609350), Unbounded: true, Rate: d(0.37)},
	}
	brackets2024MFJ := []Bracket{
		{MinIncome: d(0), MaxIncome: d(23200), Rate: d(0.10)},
		{MinIncome: d(23200), MaxIncome: d(94300), Rate: d(0.12)},
		{MinIncome: d(94300), MaxIncome: d(201050), Rate: d(0.22)},
		{MinIncome: d(201050), MaxIncome: d(383900), Rate: d(0.24)},
		{MinIncome: d(383900), MaxIncome: d(487450), Rate: d(0.32)},
		{MinIncome: d(487450), MaxIncome: d(731200), Rate: d(0.35)},
		{MinIncome: d(731200), Unbounded: true, Rate: d(0.37)},
	}

	irmaa2024Single := []IRMAATier{
		{MinMAGI: d(0), MaxMAGI: d(103000), MonthlyMaxSurcharge: d(0)},
		{MinMAGI: d(103000), MaxMAGI: d(129000), MonthlyMaxSurcharge: d(69.90)},
		{MinMAGI: d(129000), MaxMAGI: d(161000), MonthlyMaxSurcharge: d(174.70)},
		{MinMAGI: d(161000), MaxMAGI: d(193000), MonthlyMaxSurcharge: d(279.50)},
		{MinMAGI: d(193000), MaxMAGI: d(500000), MonthlyMaxSurcharge: d(384.30)},
		{MinMAGI: d(500000), Unbounded: true, MonthlyMaxSurcharge: d(419.30)},
	}
	irmaa2024MFJ := []IRMAATier{
		{MinMAGI: d(0), MaxMAGI: d(206000), MonthlyMaxSurcharge: d(0)},
		{MinMAGI: d(206000), MaxMAGI: d(258000), MonthlyMaxSurcharge: d(69.90)},
		{MinMAGI: d(258000), MaxMAGI: d(322000), MonthlyMaxSurcharge: d(174.70)},
		{MinMAGI: d(322000), MaxMAGI: d(386000), MonthlyMaxSurcharge: d(279.50)},
		{MinMAGI: d(386000), MaxMAGI: d(750000), MonthlyMaxSurcharge: d(384.30)},
		{MinMAGI: d(750000), Unbounded: true, MonthlyMaxSurcharge: d(419.30)},
	}

	years := map[int]YearData{
		2024: {
			GSBasePay:     gs2024,
			LocalityRates: locality2024,
			FederalBrackets: map[domain.FilingStatus][]Bracket{
				domain.FilingSingle:       brackets2024Single,
				domain.FilingHeadOfHousehold: brackets2024Single,
				domain.FilingMarriedJoint: brackets2024MFJ,
			},
			StandardDeductions: map[domain.FilingStatus]decimal.Decimal{
				domain.FilingSingle:          d(14600),
				domain.FilingHeadOfHousehold: d(21900),
				domain.FilingMarriedJoint:    d(29200),
				domain.FilingMarriedSeparate: d(14600),
			},
			IRMAATiers: map[domain.FilingStatus][]IRMAATier{
				domain.FilingSingle:          irmaa2024Single,
				domain.FilingHeadOfHousehold: irmaa2024Single,
				domain.FilingMarriedJoint:    irmaa2024MFJ,
			},
		},
		2025: {
			GSBasePay:          gs2025,
			LocalityRates:      locality2025,
			FederalBrackets:    map[domain.FilingStatus][]Bracket{domain.FilingSingle: brackets2024Single, domain.FilingHeadOfHousehold: brackets2024Single, domain.FilingMarriedJoint: brackets2024MFJ},
			StandardDeductions: map[domain.FilingStatus]decimal.Decimal{domain.FilingSingle: d(15000), domain.FilingHeadOfHousehold: d(22500), domain.FilingMarriedJoint: d(30000), domain.FilingMarriedSeparate: d(15000)},
			IRMAATiers:         map[domain.FilingStatus][]IRMAATier{domain.FilingSingle: irmaa2024Single, domain.FilingHeadOfHousehold: irmaa2024Single, domain.FilingMarriedJoint: irmaa2024MFJ},
		},
	}
	cfg.Years = years
	return cfg
}
