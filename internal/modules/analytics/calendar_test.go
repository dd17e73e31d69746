package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelens/internal/modules/journal"
)

func TestBuildCalendar_EmptySet(t *testing.T) {
	cal := BuildCalendar(nil, 2024, 1)

	assert.Equal(t, 2024, cal.Year)
	assert.Equal(t, 1, cal.Month)
	assert.Equal(t, "January", cal.MonthName)
	assert.Equal(t, 31, cal.DaysInMonth)
	assert.Equal(t, 0.0, cal.MonthPnL)
	assert.Equal(t, 0, cal.MonthCount)

	require.Len(t, cal.Daily, 31)
	for day := 1; day <= 31; day++ {
		assert.Equal(t, DayStat{}, cal.Daily[day])
	}
	for _, week := range cal.Weekly {
		assert.Equal(t, DayStat{}, week)
	}
}

func TestBuildCalendar_LeapYearFebruary(t *testing.T) {
	assert.Equal(t, 29, BuildCalendar(nil, 2024, 2).DaysInMonth)
	assert.Equal(t, 28, BuildCalendar(nil, 2023, 2).DaysInMonth)
}

func TestBuildCalendar_DailyAggregates(t *testing.T) {
	trades := []journal.Trade{
		testTrade(t, "2024-01-05 09:00:00", "2024-01-05 10:00:00", 100),
		testTrade(t, "2024-01-05 11:00:00", "2024-01-05 12:00:00", -20),
		testTrade(t, "2024-01-20 09:00:00", "2024-01-20 10:00:00", 55),
	}

	cal := BuildCalendar(trades, 2024, 1)

	assert.Equal(t, DayStat{PnL: 80, Count: 2}, cal.Daily[5])
	assert.Equal(t, DayStat{PnL: 55, Count: 1}, cal.Daily[20])
	assert.Equal(t, DayStat{}, cal.Daily[6])
}

func TestBuildCalendar_FiltersOtherMonths(t *testing.T) {
	trades := []journal.Trade{
		testTrade(t, "2024-01-15 09:00:00", "2024-01-15 10:00:00", 100),
		// Same day-of-month in the adjacent month must not leak in
		testTrade(t, "2024-02-15 09:00:00", "2024-02-15 10:00:00", 999),
		testTrade(t, "2023-01-15 09:00:00", "2023-01-15 10:00:00", 999),
	}

	cal := BuildCalendar(trades, 2024, 1)

	assert.Equal(t, DayStat{PnL: 100, Count: 1}, cal.Daily[15])
	assert.InDelta(t, 100.0, cal.MonthPnL, 1e-9)
	assert.Equal(t, 1, cal.MonthCount)

	var weeklyTotal float64
	for _, week := range cal.Weekly {
		weeklyTotal += week.PnL
	}
	assert.InDelta(t, 100.0, weeklyTotal, 1e-9)
}

func TestBuildCalendar_DailySumEqualsMonthTotal(t *testing.T) {
	trades := []journal.Trade{
		testTrade(t, "2024-03-01 09:00:00", "2024-03-01 10:00:00", 10),
		testTrade(t, "2024-03-10 09:00:00", "2024-03-10 10:00:00", -4),
		testTrade(t, "2024-03-31 09:00:00", "2024-03-31 10:00:00", 7.5),
	}

	cal := BuildCalendar(trades, 2024, 3)

	var dailyTotal float64
	for day := 1; day <= cal.DaysInMonth; day++ {
		dailyTotal += cal.Daily[day].PnL
	}
	assert.InDelta(t, cal.MonthPnL, dailyTotal, 1e-9)
}

func TestBuildCalendar_SundayFirstGrid(t *testing.T) {
	// September 2024 starts on a Sunday and has 30 days
	cal := BuildCalendar(nil, 2024, 9)

	require.Len(t, cal.Weeks, 5)
	assert.Equal(t, [7]int{1, 2, 3, 4, 5, 6, 7}, cal.Weeks[0])
	assert.Equal(t, [7]int{29, 30, 0, 0, 0, 0, 0}, cal.Weeks[4])

	// January 2024 starts on a Monday: leading Sunday cell is the sentinel
	cal = BuildCalendar(nil, 2024, 1)
	assert.Equal(t, [7]int{0, 1, 2, 3, 4, 5, 6}, cal.Weeks[0])
}

func TestBuildCalendar_WeeklyAggregates(t *testing.T) {
	// January 2024: week rows are [0,1..6], [7..13], [14..20], [21..27], [28..31,0,0,0]
	trades := []journal.Trade{
		testTrade(t, "2024-01-02 09:00:00", "2024-01-02 10:00:00", 10),  // week 0
		testTrade(t, "2024-01-08 09:00:00", "2024-01-08 10:00:00", 20),  // week 1
		testTrade(t, "2024-01-13 09:00:00", "2024-01-13 10:00:00", 5),   // week 1
		testTrade(t, "2024-01-30 09:00:00", "2024-01-30 10:00:00", -15), // week 4
	}

	cal := BuildCalendar(trades, 2024, 1)

	require.Len(t, cal.Weekly, 5)
	assert.Equal(t, DayStat{PnL: 10, Count: 1}, cal.Weekly[0])
	assert.Equal(t, DayStat{PnL: 25, Count: 2}, cal.Weekly[1])
	assert.Equal(t, DayStat{}, cal.Weekly[2])
	assert.Equal(t, DayStat{}, cal.Weekly[3])
	assert.Equal(t, DayStat{PnL: -15, Count: 1}, cal.Weekly[4])
}
