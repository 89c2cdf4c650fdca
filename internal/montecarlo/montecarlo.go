// Package montecarlo implements the N-trial stochastic wrapper around the
// deterministic TSP drawdown, per spec.md §4.8: independent per-trial
// return sampling via Box-Muller, percentile aggregation, and success-rate
// reporting. Every random draw goes through an injected source so runs are
// reproducible under a fixed seed, per spec.md §5.
package montecarlo

import (
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/fers"
	"github.com/rgehrsitz/fersproj/internal/registry"
	"github.com/rgehrsitz/fersproj/internal/tsp"
	"github.com/rgehrsitz/fersproj/internal/tsp/sequencing"
	"github.com/rgehrsitz/fersproj/pkg/dateutil"
)

// HighRiskSigma and LowRiskSigma are the standard deviations spec.md §4.8
// prescribes for the per-year normal return draws.
var (
	HighRiskSigma = 0.16
	LowRiskSigma  = 0.05
)

// DefaultNumTrials is the default Monte Carlo trial count, per spec.md §4.8.
const DefaultNumTrials = 1000

// RandSource is the injectable PRNG contract: anything that can produce a
// uniform [0,1) draw. *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// boxMuller draws one standard-normal sample from two independent uniform
// draws on src, per spec.md §4.8.
func boxMuller(src RandSource) float64 {
	u1 := src.Float64()
	u2 := src.Float64()
	if u1 <= 0 {
		u1 = 1e-12
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func sampleNormal(src RandSource, mean decimal.Decimal, sigma float64) decimal.Decimal {
	z := boxMuller(src)
	meanF, _ := mean.Float64()
	return decimal.NewFromFloat(meanF + sigma*z)
}

// trialResult carries one trial's per-age balances and, if the trial
// depleted, the age at which it first did.
type trialResult struct {
	balancesByAge map[int]decimal.Decimal
	depletionAge  *int
}

// Run executes numTrials independent stochastic trials of cfg's TSP
// drawdown, fanning trials out across goroutines (spec.md §5: the Monte
// Carlo wrapper is embarrassingly parallel across trials; each trial owns
// its own PRNG stream seeded from the root seed and the trial index).
// Aggregation runs single-threaded after every trial completes.
func Run(reg *registry.Registry, cfg domain.SimulationConfig, numTrials int, seed int64) domain.MonteCarloResult {
	if numTrials <= 0 {
		numTrials = DefaultNumTrials
	}

	eligibility := fers.ClassifyEligibility(mustFloat(cfg.RetirementAge), mustFloat(cfg.CreditableServiceYears), cfg.BirthYear)
	retirementAgeInt := int(mustFloat(cfg.RetirementAge))
	numYears := cfg.EndAge - retirementAgeInt + 1
	if numYears < 0 {
		numYears = 0
	}

	results := make([]trialResult, numTrials)

	var wg sync.WaitGroup
	for t := 0; t < numTrials; t++ {
		wg.Add(1)
		go func(trialIdx int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(trialIdx)))
			results[trialIdx] = runTrial(reg, cfg, eligibility, retirementAgeInt, numYears, rng)
		}(t)
	}
	wg.Wait()

	return aggregate(results, retirementAgeInt, numYears, numTrials, seed)
}

func runTrial(reg *registry.Registry, cfg domain.SimulationConfig, eligibility domain.EligibilityClass, retirementAgeInt, numYears int, rng RandSource) trialResult {
	buckets := tsp.InitializeAtRetirement(cfg.TSPBalanceAtRetirement, cfg.TraditionalFraction, cfg.HighRiskFraction)
	strategy := sequencing.New(sequencing.Kind(cfg.WithdrawalStrategy.Kind), cfg.WithdrawalStrategy.CustomTraditionalPct)

	balances := make(map[int]decimal.Decimal, numYears)
	var depletionAge *int
	depleted := false

	for i := 0; i < numYears; i++ {
		age := retirementAgeInt + i

		if depleted {
			balances[age] = decimal.Zero
			continue
		}

		highROI := sampleNormal(rng, cfg.HighRiskReturn, HighRiskSigma)
		lowROI := sampleNormal(rng, cfg.LowRiskReturn, LowRiskSigma)

		var supplement decimal.Decimal
		if fers.SupplementEligible(age, eligibility) {
			supplement = fers.AnnualSupplement(cfg.EstimatedSSAt62Monthly, mustFloat(cfg.CreditableServiceYears))
		}

		plannedWithdrawal := tsp.PlannedWithdrawal(cfg.TSPBalanceAtRetirement, cfg.WithdrawalRate, cfg.COLARate, i)
		isRMDYear := dateutil.IsRMDYear(cfg.BirthYear, age)
		rmdFloor := tsp.RMDFloor(buckets.TotalTraditional(), reg.RMDDivisor(age), isRMDYear)

		ctx := sequencing.StrategyContext{
			TraditionalBalance:       buckets.TotalTraditional(),
			RothBalance:              buckets.TotalRoth(),
			PlannedWithdrawal:        plannedWithdrawal,
			CurrentOrdinaryIncome:    supplement,
			BracketCeiling:           supplement.Add(decimal.NewFromInt(1_000_000_000)),
			CustomTraditionalPercent: cfg.WithdrawalStrategy.CustomTraditionalPct,
		}

		result := tsp.WithdrawYear(buckets, strategy, ctx, rmdFloor, highROI, lowROI, highROI, lowROI)
		buckets = result.Buckets

		total := buckets.Total()
		balances[age] = total
		if total.LessThanOrEqual(decimal.Zero) {
			depleted = true
			a := age
			depletionAge = &a
		}
	}

	return trialResult{balancesByAge: balances, depletionAge: depletionAge}
}

// aggregate computes P10/P25/P50/P75/P90 percentile bands and success
// rates per age, plus the overall success rate and median depletion age,
// per spec.md §4.8.
func aggregate(results []trialResult, retirementAgeInt, numYears, numTrials int, seed int64) domain.MonteCarloResult {
	bands := make([]domain.PercentileBand, 0, numYears)

	var endAgeSuccessRate decimal.Decimal
	for i := 0; i < numYears; i++ {
		age := retirementAgeInt + i
		samples := make([]decimal.Decimal, numTrials)
		successCount := 0
		for t, r := range results {
			v := r.balancesByAge[age]
			samples[t] = v
			if v.IsPositive() {
				successCount++
			}
		}
		sort.Slice(samples, func(i, j int) bool { return samples[i].LessThan(samples[j]) })

		successRate := decimal.Zero
		if numTrials > 0 {
			successRate = decimal.NewFromInt(int64(successCount)).Div(decimal.NewFromInt(int64(numTrials)))
		}

		band := domain.PercentileBand{
			Age:         age,
			P10:         percentile(samples, 0.10),
			P25:         percentile(samples, 0.25),
			P50:         percentile(samples, 0.50),
			P75:         percentile(samples, 0.75),
			P90:         percentile(samples, 0.90),
			SuccessRate: successRate,
		}
		bands = append(bands, band)
		if i == numYears-1 {
			endAgeSuccessRate = successRate
		}
	}

	var successAt85 decimal.Decimal
	for _, b := range bands {
		if b.Age == 85 {
			successAt85 = b.SuccessRate
		}
	}

	var depletionAges []int
	for _, r := range results {
		if r.depletionAge != nil {
			depletionAges = append(depletionAges, *r.depletionAge)
		}
	}
	medianDepletion := medianInt(depletionAges)

	return domain.MonteCarloResult{
		RunID:              uuid.New(),
		NumTrials:          numTrials,
		Seed:               seed,
		Bands:              bands,
		OverallSuccessRate: endAgeSuccessRate,
		SuccessRateAtAge85: successAt85,
		MedianDepletionAge: medianDepletion,
	}
}

// percentile linearly interpolates between the two nearest ranks of a
// pre-sorted sample slice, per spec.md §4.8. Returns zero on an empty
// slice.
func percentile(sorted []decimal.Decimal, p float64) decimal.Decimal {
	n := len(sorted)
	if n == 0 {
		return decimal.Zero
	}
	if n == 1 {
		return sorted[0]
	}
	idx := p * float64(n-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper {
		return sorted[lower]
	}
	frac := decimal.NewFromFloat(idx - float64(lower))
	return sorted[lower].Add(sorted[upper].Sub(sorted[lower]).Mul(frac))
}

func medianInt(values []int) *int {
	if len(values) == 0 {
		return nil
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)
	n := len(sorted)
	var m int
	if n%2 == 1 {
		m = sorted[n/2]
	} else {
		m = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return &m
}

func mustFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
