// Package analytics derives the dashboard aggregates from closed trade
// records: scalar metrics, the gap-filled cumulative P&L curve, the
// behavioral profile, and the calendar view. Every function here is a
// pure function of its input; an empty trade set produces zero/empty
// results, never an error.
package analytics

import (
	"tradelens/internal/modules/journal"
	"tradelens/pkg/formulas"
)

// Metrics holds the scalar performance summary of a trade set
type Metrics struct {
	TotalPL       float64 `json:"total_pl"`
	WinRate       float64 `json:"win_rate"`
	WinningTrades int     `json:"winning_trades"`
	TotalTrades   int     `json:"total_trades"`
	AvgWin        float64 `json:"avg_win"`
	AvgLoss       float64 `json:"avg_loss"`
}

// ComputeMetrics summarizes a trade set. A trade counts as winning only
// when profit is strictly positive and losing only when strictly
// negative; break-even trades contribute to the total count alone.
func ComputeMetrics(trades []journal.Trade) Metrics {
	var totalPL float64
	var winningProfits, losingProfits []float64

	for _, t := range trades {
		totalPL += t.Profit
		switch {
		case t.Profit > 0:
			winningProfits = append(winningProfits, t.Profit)
		case t.Profit < 0:
			losingProfits = append(losingProfits, t.Profit)
		}
	}

	return Metrics{
		TotalPL:       totalPL,
		WinRate:       formulas.Percentage(float64(len(winningProfits)), float64(len(trades))),
		WinningTrades: len(winningProfits),
		TotalTrades:   len(trades),
		AvgWin:        formulas.Round2(formulas.Mean(winningProfits)),
		AvgLoss:       formulas.Round2(formulas.Mean(losingProfits)),
	}
}
