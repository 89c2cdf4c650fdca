// Package dateutil centralizes the calendar arithmetic the FERS rules
// depend on: age, years of service, MRA/FRA birth-year tables, Medicare and
// RMD eligibility, and plain calendar helpers.
package dateutil

import "time"

// Age returns whole years elapsed from birthDate to atDate.
func Age(birthDate, atDate time.Time) int {
	years := atDate.Year() - birthDate.Year()
	anniversary := birthDate.AddDate(years, 0, 0)
	if anniversary.After(atDate) {
		years--
	}
	return years
}

// YearsOfService returns the fractional number of years between start and
// end, using 365.25-day years.
func YearsOfService(start, end time.Time) float64 {
	if end.Before(start) {
		return 0
	}
	return end.Sub(start).Hours() / 24 / 365.25
}

// CreditableService computes a calendar-exact (years, months, days) and
// fractional-year difference between start and end using day arithmetic
// with month borrowing, per spec.md §4.2.
func CreditableService(start, end time.Time) (years, months, days int, fractionalYears float64) {
	if end.Before(start) {
		return 0, 0, 0, 0
	}
	y := end.Year() - start.Year()
	m := int(end.Month()) - int(start.Month())
	d := end.Day() - start.Day()

	if d < 0 {
		m--
		// Borrow days from the month preceding `end`.
		prevMonth := end.AddDate(0, -1, 0)
		daysInPrevMonth := DaysInMonth(prevMonth.Year(), prevMonth.Month())
		d += daysInPrevMonth
	}
	if m < 0 {
		y--
		m += 12
	}

	years, months, days = y, m, d
	fractionalYears = float64(years) + float64(months)/12 + float64(days)/365.25
	return
}

// FullRetirementAge returns Social Security full retirement age in whole
// years for the given birth year, per the statutory birth-year table.
func FullRetirementAge(birthYear int) int {
	switch {
	case birthYear <= 1937:
		return 65
	case birthYear <= 1942:
		return 65 // plus 2-11 months, rounded down to whole years per dateutil convention
	case birthYear <= 1954:
		return 66
	case birthYear <= 1959:
		return 66 // plus 2-10 months, rounded down
	default:
		return 67
	}
}

// MinimumRetirementAge returns FERS MRA in whole years for the given birth
// year: 55 for birth year <= 1947, rising stepwise to 57 for birth year
// >= 1970, per spec.md §4.3.
func MinimumRetirementAge(birthYear int) int {
	switch {
	case birthYear <= 1947:
		return 55
	case birthYear <= 1948:
		return 55 // plus 2 months, rounded down
	case birthYear <= 1949:
		return 55 // plus 4 months, rounded down
	case birthYear <= 1950:
		return 55 // plus 6 months, rounded down
	case birthYear <= 1951:
		return 55 // plus 8 months, rounded down
	case birthYear <= 1952:
		return 55 // plus 10 months, rounded down
	case birthYear <= 1964:
		return 56
	case birthYear <= 1965:
		return 56 // plus 2 months, rounded down
	case birthYear <= 1966:
		return 56 // plus 4 months, rounded down
	case birthYear <= 1967:
		return 56 // plus 6 months, rounded down
	case birthYear <= 1968:
		return 56 // plus 8 months, rounded down
	case birthYear <= 1969:
		return 56 // plus 10 months, rounded down
	default:
		return 57
	}
}

// MinimumRetirementAgeDecimal returns MRA as a decimal number of years,
// including the statutory fractional-month component (not rounded down),
// for callers that need the exact eligibility boundary.
func MinimumRetirementAgeDecimal(birthYear int) float64 {
	switch {
	case birthYear <= 1947:
		return 55
	case birthYear == 1948:
		return 55 + 2.0/12
	case birthYear == 1949:
		return 55 + 4.0/12
	case birthYear == 1950:
		return 55 + 6.0/12
	case birthYear == 1951:
		return 55 + 8.0/12
	case birthYear == 1952:
		return 55 + 10.0/12
	case birthYear >= 1953 && birthYear <= 1964:
		return 56
	case birthYear == 1965:
		return 56 + 2.0/12
	case birthYear == 1966:
		return 56 + 4.0/12
	case birthYear == 1967:
		return 56 + 6.0/12
	case birthYear == 1968:
		return 56 + 8.0/12
	case birthYear == 1969:
		return 56 + 10.0/12
	default:
		return 57
	}
}

// IsMedicareEligible reports whether age 65 has been reached.
func IsMedicareEligible(age int) bool {
	return age >= 65
}

// IsRMDYear reports whether Required Minimum Distributions apply at the
// given age for the given birth year, per the SECURE 2.0 Act threshold
// spec.md §4.4 states explicitly: age >= 73 for birth year < 1960, else
// age >= 75.
func IsRMDYear(birthYear, age int) bool {
	return age >= GetRMDAge(birthYear)
}

// GetRMDAge returns the age at which RMDs begin for the given birth year.
func GetRMDAge(birthYear int) int {
	if birthYear < 1960 {
		return 73
	}
	return 75
}

// IsLeapYear reports whether year is a leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month of year.
func DaysInMonth(year int, month time.Month) int {
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	lastOfThis := firstOfNext.AddDate(0, 0, -1)
	return lastOfThis.Day()
}

// AddYears returns t advanced by n years.
func AddYears(t time.Time, n int) time.Time {
	return t.AddDate(n, 0, 0)
}

// AddMonths returns t advanced by n months.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// BeginningOfYear returns January 1 of t's year.
func BeginningOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns December 31 of t's year.
func EndOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location())
}

// YearsUntil returns the whole number of years from now until target,
// counted as Age counts them; for a target before now the result is
// negative and rounded down (away from zero).
func YearsUntil(now, target time.Time) int {
	return Age(now, target)
}
