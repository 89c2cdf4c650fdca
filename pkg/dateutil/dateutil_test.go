package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	birth := date(1963, time.January, 1)
	assert.Equal(t, 62, Age(birth, date(2025, time.January, 1)))
	assert.Equal(t, 61, Age(birth, date(2024, time.December, 31)))
}

func TestCreditableServiceBorrowsDays(t *testing.T) {
	start := date(1984, time.January, 15)
	end := date(2025, time.January, 1)
	years, months, days, frac := CreditableService(start, end)
	assert.Equal(t, 40, years)
	assert.Equal(t, 11, months)
	assert.True(t, days >= 0)
	assert.InDelta(t, 40.96, frac, 0.05)
}

func TestMinimumRetirementAgeTable(t *testing.T) {
	assert.Equal(t, 55, MinimumRetirementAge(1947))
	assert.Equal(t, 56, MinimumRetirementAge(1960))
	assert.Equal(t, 57, MinimumRetirementAge(1970))
}

func TestIsRMDYear(t *testing.T) {
	assert.True(t, IsRMDYear(1955, 73))
	assert.False(t, IsRMDYear(1955, 72))
	assert.False(t, IsRMDYear(1965, 73))
	assert.True(t, IsRMDYear(1965, 75))
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.True(t, IsLeapYear(2024))
}

func TestDaysInMonthBorrow(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
}
