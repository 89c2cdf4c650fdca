// Package career implements the GS/LEO/Title38 career and pay progression
// model: within-grade-increase timing, Service Computation Date and
// creditable service, per-year salary history, and High-3 derivation, per
// spec.md §4.2.
package career

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/engineerr"
	"github.com/rgehrsitz/fersproj/internal/registry"
)

// wgiWaitWeeks maps the current step to the number of weeks until the next
// step, per spec.md §4.2. Step 10 is terminal (no further WGI).
var wgiWaitWeeks = map[int]int{
	1: 52, 2: 52, 3: 52,
	4: 104, 5: 104, 6: 104,
	7: 156, 8: 156, 9: 156,
}

// NextWGIDate returns the date the employee advances from currentStep,
// given the date they started that step, or nil if the step is terminal.
// Non-pay-status time may toll the waiting period in reality; per spec.md
// §4.2 this is an explicit Open Question the core does not model.
func NextWGIDate(currentStep int, stepStart time.Time) *time.Time {
	weeks, ok := wgiWaitWeeks[currentStep]
	if !ok {
		return nil
	}
	next := stepStart.AddDate(0, 0, weeks*7)
	return &next
}

// CreditableService computes the calendar-exact (years, months, days) and
// fractional-year difference between start and end.
func CreditableService(start, end time.Time) (years, months, days int, fractionalYears float64) {
	return creditableServiceDayBorrow(start, end)
}

// creditableServiceDayBorrow is the same day-arithmetic-with-month-borrowing
// algorithm as pkg/dateutil.CreditableService, kept local so the career
// package's public contract does not leak the dateutil dependency further
// than necessary.
func creditableServiceDayBorrow(start, end time.Time) (int, int, int, float64) {
	if end.Before(start) {
		return 0, 0, 0, 0
	}
	y := end.Year() - start.Year()
	m := int(end.Month()) - int(start.Month())
	d := end.Day() - start.Day()
	if d < 0 {
		m--
		firstOfThisMonth := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
		lastOfPrevMonth := firstOfThisMonth.AddDate(0, 0, -1)
		d += lastOfPrevMonth.Day()
	}
	if m < 0 {
		y--
		m += 12
	}
	fractionalYears := float64(y) + float64(m)/12 + float64(d)/365.25
	return y, m, d, fractionalYears
}

// DeriveEffectiveSCD returns the hire date advanced by the total number of
// days spent in separation gaps (the time between a separation and its
// rehire), per spec.md §4.2. The result is never earlier than the hire
// date.
func DeriveEffectiveSCD(events []domain.CareerEvent) (time.Time, error) {
	sorted := sortedEvents(events)
	if len(sorted) == 0 || sorted[0].Kind != domain.EventHire {
		return time.Time{}, engineerr.NewInvalidInput("events[0].kind", "", "the earliest event must be a hire")
	}

	hireDate := sorted[0].EffectiveDate
	scd := hireDate
	var openSeparation *time.Time
	for _, ev := range sorted[1:] {
		switch ev.Kind {
		case domain.EventSeparation:
			if openSeparation != nil {
				return time.Time{}, engineerr.NewInvalidInput("events", ev, "separation without a preceding rehire")
			}
			t := ev.EffectiveDate
			openSeparation = &t
		case domain.EventRehire:
			if openSeparation == nil {
				return time.Time{}, engineerr.NewInvalidInput("events", ev, "rehire without a preceding separation")
			}
			gapDays := int(ev.EffectiveDate.Sub(*openSeparation).Hours() / 24)
			scd = scd.AddDate(0, 0, gapDays)
			openSeparation = nil
		}
	}
	if scd.Before(hireDate) {
		scd = hireDate
	}
	return scd, nil
}

func sortedEvents(events []domain.CareerEvent) []domain.CareerEvent {
	out := make([]domain.CareerEvent, len(events))
	copy(out, events)
	sort.Slice(out, func(i, j int) bool {
		return out[i].EffectiveDate.Before(out[j].EffectiveDate)
	})
	return out
}

// payState tracks the evolving (grade, step, locality, paySystem,
// explicitSalary) tuple as career events are replayed in date order.
type payState struct {
	grade          int
	step           int
	locality       string
	paySystem      domain.PaySystem
	explicitSalary decimal.Decimal
	stepStart      time.Time
	inSeparation   bool
}

// BuildSalaryHistory projects one SalaryYear row per pay-status calendar
// year, from hire through throughYear, per spec.md §4.2. Years in a
// separation gap are omitted entirely.
func BuildSalaryHistory(reg *registry.Registry, profile domain.CareerProfile, throughYear int, assumedAnnualIncrease decimal.Decimal) ([]domain.SalaryYear, []engineerr.Warning, error) {
	events := sortedEvents(profile.Events)
	if len(events) == 0 || events[0].Kind != domain.EventHire {
		return nil, nil, engineerr.NewInvalidInput("events[0].kind", "", "the earliest event must be a hire")
	}

	var warnings []engineerr.Warning
	state := payState{
		grade:     events[0].Grade,
		step:      events[0].Step,
		locality:  events[0].Locality,
		paySystem: events[0].PaySystem,
		stepStart: events[0].EffectiveDate,
	}
	if state.locality == "" {
		state.locality = domain.DefaultLocality
	}

	hireYear := events[0].EffectiveDate.Year()
	eventIdx := 1

	var history []domain.SalaryYear
	for year := hireYear; year <= throughYear; year++ {
		// Apply every event effective within this year, in order.
		for eventIdx < len(events) && events[eventIdx].EffectiveDate.Year() <= year {
			ev := events[eventIdx]
			switch ev.Kind {
			case domain.EventPromotion:
				state.grade = ev.Grade
				if ev.Step != 0 {
					state.step = ev.Step
				}
				state.stepStart = ev.EffectiveDate
			case domain.EventStepIncrease:
				state.step = ev.Step
				state.stepStart = ev.EffectiveDate
			case domain.EventLocalityChange:
				state.locality = ev.Locality
			case domain.EventSeparation:
				state.inSeparation = true
			case domain.EventRehire:
				state.inSeparation = false
				if ev.Grade != 0 {
					state.grade = ev.Grade
				}
				if ev.Step != 0 {
					state.step = ev.Step
				}
				state.stepStart = ev.EffectiveDate
			}
			if ev.PaySystem != "" {
				state.paySystem = ev.PaySystem
			}
			if !ev.ExplicitSalary.IsZero() {
				state.explicitSalary = ev.ExplicitSalary
			}
			eventIdx++
		}

		// Apply any WGI due within this year (simplified: single check per
		// year since WGI waits are measured in whole years or more).
		if next := NextWGIDate(state.step, state.stepStart); next != nil {
			if next.Year() == year && state.step < 10 {
				state.step++
				state.stepStart = *next
			}
		}

		if state.inSeparation {
			continue
		}

		salary, title38Override, yearWarnings, err := computeAnnualSalary(reg, state, year, assumedAnnualIncrease)
		if err != nil {
			return nil, warnings, err
		}
		warnings = append(warnings, yearWarnings...)

		history = append(history, domain.SalaryYear{
			Year:            year,
			AnnualSalary:    salary,
			Grade:           state.grade,
			Step:            state.step,
			Locality:        state.locality,
			PaySystem:       state.paySystem,
			Title38Override: title38Override,
		})
	}

	return history, warnings, nil
}

func computeAnnualSalary(reg *registry.Registry, state payState, year int, assumedAnnualIncrease decimal.Decimal) (decimal.Decimal, bool, []engineerr.Warning, error) {
	if state.paySystem == domain.PaySystemTitle38 {
		return state.explicitSalary, true, nil, nil
	}

	base, err := reg.GSBasePay(state.grade, state.step, year, assumedAnnualIncrease)
	if err != nil {
		return decimal.Zero, false, nil, err
	}
	localityRate, warnings := reg.LocalityRate(state.locality, year)
	salary := base.Mul(decimal.NewFromInt(1).Add(localityRate))

	if state.paySystem == domain.PaySystemLEO {
		salary = salary.Mul(decimal.NewFromFloat(1 + domain.LEOAvailabilityPayRate))
	}
	return salary, false, warnings, nil
}

// ComputeHigh3 returns the maximum average annual salary over any
// contiguous 36-month (three-calendar-year) window. With fewer than three
// years of history, return the simple average; with zero years, return
// zero. The first maximal window wins on ties.
func ComputeHigh3(history []domain.SalaryYear) decimal.Decimal {
	if len(history) == 0 {
		return decimal.Zero
	}
	sorted := make([]domain.SalaryYear, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })

	if len(sorted) < 3 {
		total := decimal.Zero
		for _, y := range sorted {
			total = total.Add(y.AnnualSalary)
		}
		return total.Div(decimal.NewFromInt(int64(len(sorted))))
	}

	best := decimal.Zero
	found := false
	for i := 0; i+3 <= len(sorted); i++ {
		window := sorted[i].AnnualSalary.Add(sorted[i+1].AnnualSalary).Add(sorted[i+2].AnnualSalary)
		avg := window.Div(decimal.NewFromInt(3))
		if !found || avg.GreaterThan(best) {
			best = avg
			found = true
		}
	}
	return best
}
