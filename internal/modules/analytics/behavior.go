package analytics

import (
	"fmt"

	"tradelens/internal/modules/journal"
	"tradelens/pkg/formulas"
)

// Behavior holds the behavioral breakdown of a trade set: weekday
// activity and profitability, holding durations, direction split, and
// the extremal trades.
type Behavior struct {
	MostActiveDay      *string        `json:"most_active_day"`
	MostActiveDays     int            `json:"most_active_days"`
	MostActiveTrades   int            `json:"most_active_trades"`
	MostActiveAvg      float64        `json:"most_active_avg"`
	MostProfitableDay  *string        `json:"most_prof_day"`
	MostProfitableVal  float64        `json:"most_prof_val"`
	LeastProfitableDay *string        `json:"least_prof_day"`
	LeastProfitableVal float64        `json:"least_prof_val"`
	TotalTrades        int            `json:"total_trades"`
	TotalLots          float64        `json:"total_lots"`
	AvgTradeDuration   string         `json:"avg_trade_dur"`
	AvgWinDuration     string         `json:"avg_win_dur"`
	AvgLossDuration    string         `json:"avg_loss_dur"`
	AvgWin             float64        `json:"avg_win"`
	AvgLoss            float64        `json:"avg_loss"`
	LongPercentage     float64        `json:"trade_dir_pct"`
	BestTrade          *journal.Trade `json:"best_trade"`
	WorstTrade         *journal.Trade `json:"worst_trade"`
}

// ComputeBehavior profiles a trade set. Weekday buckets are keyed by
// the entry time's day name and iterated in first-encounter order, so
// ties on activity or profitability resolve to the weekday seen first
// in the input, independent of map iteration.
func ComputeBehavior(trades []journal.Trade) Behavior {
	var dayOrder []string
	dayCounts := make(map[string]int)
	dayProfits := make(map[string]float64)

	for _, t := range trades {
		day := t.EntryTime.Weekday().String()
		if _, seen := dayCounts[day]; !seen {
			dayOrder = append(dayOrder, day)
		}
		dayCounts[day]++
		dayProfits[day] += t.Profit
	}

	b := Behavior{
		TotalTrades:      len(trades),
		AvgTradeDuration: formatDuration(0),
		AvgWinDuration:   formatDuration(0),
		AvgLossDuration:  formatDuration(0),
	}

	// Most active day: highest trade count, first encountered on ties.
	// When several weekdays share the maximum, the reported average is
	// the max count spread over the tied days.
	for _, day := range dayOrder {
		if b.MostActiveDay == nil || dayCounts[day] > b.MostActiveTrades {
			d := day
			b.MostActiveDay = &d
			b.MostActiveTrades = dayCounts[day]
		}
	}
	if b.MostActiveDay != nil {
		for _, day := range dayOrder {
			if dayCounts[day] == b.MostActiveTrades {
				b.MostActiveDays++
			}
		}
		b.MostActiveAvg = formulas.Round2(float64(b.MostActiveTrades) / float64(b.MostActiveDays))
	}

	// Most/least profitable weekday, first encountered on ties
	for _, day := range dayOrder {
		if b.MostProfitableDay == nil || dayProfits[day] > b.MostProfitableVal {
			d := day
			b.MostProfitableDay = &d
			b.MostProfitableVal = dayProfits[day]
		}
		if b.LeastProfitableDay == nil || dayProfits[day] < b.LeastProfitableVal {
			d := day
			b.LeastProfitableDay = &d
			b.LeastProfitableVal = dayProfits[day]
		}
	}

	var durations, winDurations, lossDurations []float64
	var winProfits, lossProfits []float64
	var longTrades int

	for idx, t := range trades {
		b.TotalLots += t.Quantity

		secs := t.Duration().Seconds()
		durations = append(durations, secs)

		switch {
		case t.Profit > 0:
			winDurations = append(winDurations, secs)
			winProfits = append(winProfits, t.Profit)
		case t.Profit < 0:
			lossDurations = append(lossDurations, secs)
			lossProfits = append(lossProfits, t.Profit)
		}

		if t.Side.IsLong() {
			longTrades++
		}

		if b.BestTrade == nil || t.Profit > b.BestTrade.Profit {
			b.BestTrade = &trades[idx]
		}
		if b.WorstTrade == nil || t.Profit < b.WorstTrade.Profit {
			b.WorstTrade = &trades[idx]
		}
	}

	b.AvgTradeDuration = formatDuration(formulas.Mean(durations))
	b.AvgWinDuration = formatDuration(formulas.Mean(winDurations))
	b.AvgLossDuration = formatDuration(formulas.Mean(lossDurations))
	b.AvgWin = formulas.Mean(winProfits)
	b.AvgLoss = formulas.Mean(lossProfits)
	b.LongPercentage = formulas.Percentage(float64(longTrades), float64(len(trades)))

	return b
}

// formatDuration renders seconds as "M min SS sec", switching to
// "H hr MM min SS sec" at one hour. Fractional seconds are truncated
// before decomposition.
func formatDuration(seconds float64) string {
	total := int(seconds)
	m, s := total/60, total%60
	h, m := m/60, m%60
	if h > 0 {
		return fmt.Sprintf("%d hr %02d min %02d sec", h, m, s)
	}
	return fmt.Sprintf("%d min %02d sec", m, s)
}
