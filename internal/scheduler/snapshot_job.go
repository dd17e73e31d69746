package scheduler

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"tradelens/internal/modules/analytics"
	"tradelens/internal/modules/journal"
)

// SnapshotJob persists one metrics row per day so the dashboard can
// chart journal growth without recomputing history
type SnapshotJob struct {
	trades    *journal.TradeRepository
	snapshots *journal.SnapshotRepository
	log       zerolog.Logger
}

// NewSnapshotJob creates a new daily snapshot job
func NewSnapshotJob(
	trades *journal.TradeRepository,
	snapshots *journal.SnapshotRepository,
	log zerolog.Logger,
) *SnapshotJob {
	return &SnapshotJob{
		trades:    trades,
		snapshots: snapshots,
		log:       log.With().Str("job", "daily_snapshot").Logger(),
	}
}

// Name returns the job name
func (j *SnapshotJob) Name() string {
	return "daily_snapshot"
}

// Run computes the current journal-wide metrics and stores them under
// today's date, replacing an earlier run from the same day
func (j *SnapshotJob) Run() error {
	all, err := j.trades.ListAll("")
	if err != nil {
		return fmt.Errorf("failed to load trades for snapshot: %w", err)
	}

	metrics := analytics.ComputeMetrics(all)
	snap := journal.DailySnapshot{
		Date:          time.Now().UTC().Format("2006-01-02"),
		TotalPL:       metrics.TotalPL,
		WinRate:       metrics.WinRate,
		WinningTrades: metrics.WinningTrades,
		TotalTrades:   metrics.TotalTrades,
	}

	if err := j.snapshots.Upsert(snap); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	j.log.Info().
		Str("date", snap.Date).
		Float64("total_pl", snap.TotalPL).
		Int("total_trades", snap.TotalTrades).
		Msg("Daily snapshot stored")

	return nil
}
