package analytics

import (
	"github.com/rs/zerolog"

	"tradelens/internal/modules/journal"
)

// Report is the full dashboard payload: all four aggregates computed
// over the same trade snapshot
type Report struct {
	Metrics  Metrics     `json:"metrics"`
	Equity   EquityCurve `json:"equity_curve"`
	Behavior Behavior    `json:"stats"`
	Calendar Calendar    `json:"calendar"`
}

// Service assembles analytics reports from trade snapshots
type Service struct {
	log zerolog.Logger
}

// NewService creates a new analytics service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "analytics").Logger(),
	}
}

// DashboardReport computes every dashboard aggregate over one trade
// snapshot. The caller is responsible for any account filtering; the
// calendar view covers the given year/month.
func (s *Service) DashboardReport(trades []journal.Trade, year, month int) Report {
	s.log.Debug().
		Int("trades", len(trades)).
		Int("year", year).
		Int("month", month).
		Msg("Building dashboard report")

	return Report{
		Metrics:  ComputeMetrics(trades),
		Equity:   BuildEquityCurve(trades),
		Behavior: ComputeBehavior(trades),
		Calendar: BuildCalendar(trades, year, month),
	}
}
