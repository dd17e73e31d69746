package analytics

import (
	"time"

	"tradelens/internal/modules/journal"
)

// DayStat aggregates profit and trade count for one day or week row
type DayStat struct {
	PnL   float64 `json:"pnl"`
	Count int     `json:"count"`
}

// Calendar holds the month view of the journal: a Sunday-first month
// grid, per-day and per-week aggregates, and month totals. Grid cells
// belonging to adjacent months hold 0 and carry no data.
type Calendar struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	MonthName   string          `json:"month_name"`
	DaysInMonth int             `json:"days_in_month"`
	Weeks       [][7]int        `json:"weeks"`
	Daily       map[int]DayStat `json:"daily"`
	Weekly      []DayStat       `json:"weekly"`
	MonthPnL    float64         `json:"month_pnl"`
	MonthCount  int             `json:"month_count"`
}

// BuildCalendar aggregates trades for one year/month. Trades are
// filtered to the month by exit date before any daily or weekly
// bucketing; the weekly buckets match by day-of-month number only, so
// they are meaningful solely against that month-filtered subset.
func BuildCalendar(trades []journal.Trade, year, month int) Calendar {
	monthTrades := filterMonth(trades, year, month)
	daysInMonth := daysIn(year, month)

	daily := make(map[int]DayStat, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		daily[day] = DayStat{}
	}
	for _, t := range monthTrades {
		day := t.ExitTime.Day()
		stat := daily[day]
		stat.PnL += t.Profit
		stat.Count++
		daily[day] = stat
	}

	weeks := monthGrid(year, month, daysInMonth)
	weekly := make([]DayStat, 0, len(weeks))
	for _, week := range weeks {
		inWeek := make(map[int]bool, 7)
		for _, day := range week {
			if day != 0 {
				inWeek[day] = true
			}
		}

		var stat DayStat
		for _, t := range monthTrades {
			if inWeek[t.ExitTime.Day()] {
				stat.PnL += t.Profit
				stat.Count++
			}
		}
		weekly = append(weekly, stat)
	}

	cal := Calendar{
		Year:        year,
		Month:       month,
		MonthName:   time.Month(month).String(),
		DaysInMonth: daysInMonth,
		Weeks:       weeks,
		Daily:       daily,
		Weekly:      weekly,
	}
	for _, t := range monthTrades {
		cal.MonthPnL += t.Profit
		cal.MonthCount++
	}

	return cal
}

// filterMonth returns the trades whose exit date falls in year/month
func filterMonth(trades []journal.Trade, year, month int) []journal.Trade {
	var out []journal.Trade
	for _, t := range trades {
		if t.ExitTime.Year() == year && int(t.ExitTime.Month()) == month {
			out = append(out, t)
		}
	}
	return out
}

// daysIn returns the number of days in a month, leap years included.
// Day 0 of the following month normalizes to this month's last day.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// monthGrid builds the Sunday-first calendar grid for a month. Each row
// is one displayed week; cells outside the month are the 0 sentinel.
func monthGrid(year, month, daysInMonth int) [][7]int {
	firstWeekday := int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())

	var weeks [][7]int
	var week [7]int
	col := firstWeekday

	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}

	return weeks
}
