package analytics

import (
	"sort"
	"time"

	"tradelens/internal/modules/journal"
)

const dateLayout = "2006-01-02"

// EquityCurve is a pair of aligned slices: one calendar date per point
// and the cumulative P&L after that day's trades. Days without trades
// carry the previous total forward, so the curve has no gaps.
type EquityCurve struct {
	Dates  []string  `json:"dates"`
	Values []float64 `json:"values"`
}

// BuildEquityCurve converts trade exits into a contiguous daily
// cumulative P&L series. The first point is a synthetic zero dated one
// day before the earliest exit, anchoring the chart at the origin.
// An empty trade set yields two empty slices.
func BuildEquityCurve(trades []journal.Trade) EquityCurve {
	if len(trades) == 0 {
		return EquityCurve{Dates: []string{}, Values: []float64{}}
	}

	sorted := make([]journal.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExitTime.Before(sorted[j].ExitTime)
	})

	firstDay := dateOnly(sorted[0].ExitTime)
	lastDay := dateOnly(sorted[len(sorted)-1].ExitTime)
	numDays := int(lastDay.Sub(firstDay).Hours()/24) + 1

	dates := make([]string, 0, numDays+1)
	values := make([]float64, 0, numDays+1)

	dates = append(dates, firstDay.AddDate(0, 0, -1).Format(dateLayout))
	values = append(values, 0)

	cumulative := 0.0
	tradeIdx := 0
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		for tradeIdx < len(sorted) && sorted[tradeIdx].ExitDate() == key {
			cumulative += sorted[tradeIdx].Profit
			tradeIdx++
		}
		dates = append(dates, key)
		values = append(values, cumulative)
	}

	return EquityCurve{Dates: dates, Values: values}
}

// dateOnly truncates a timestamp to midnight UTC of its calendar date
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
