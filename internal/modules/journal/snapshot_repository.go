package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DailySnapshot is one persisted metrics row, written once per day
type DailySnapshot struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	TotalPL       float64 `json:"total_pl"`
	WinRate       float64 `json:"win_rate"`
	WinningTrades int     `json:"winning_trades"`
	TotalTrades   int     `json:"total_trades"`
}

// SnapshotRepository handles daily snapshot persistence
type SnapshotRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *sql.DB, log zerolog.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		db:  db,
		log: log.With().Str("repo", "snapshot").Logger(),
	}
}

// Upsert writes the snapshot for its date, replacing any existing row.
// Re-running the job on the same day refreshes that day's numbers.
func (r *SnapshotRepository) Upsert(snap DailySnapshot) error {
	query := `
		INSERT INTO daily_snapshots (date, total_pl, win_rate, winning_trades, total_trades, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			total_pl = excluded.total_pl,
			win_rate = excluded.win_rate,
			winning_trades = excluded.winning_trades,
			total_trades = excluded.total_trades,
			created_at = excluded.created_at
	`

	_, err := r.db.Exec(query,
		snap.Date,
		snap.TotalPL,
		snap.WinRate,
		snap.WinningTrades,
		snap.TotalTrades,
		time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot for %s: %w", snap.Date, err)
	}

	r.log.Debug().Str("date", snap.Date).Float64("total_pl", snap.TotalPL).Msg("Snapshot written")
	return nil
}

// ListRange returns snapshots between two dates inclusive, oldest first
func (r *SnapshotRepository) ListRange(startDate, endDate string) ([]DailySnapshot, error) {
	query := `
		SELECT date, total_pl, win_rate, winning_trades, total_trades
		FROM daily_snapshots
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []DailySnapshot
	for rows.Next() {
		var s DailySnapshot
		if err := rows.Scan(&s.Date, &s.TotalPL, &s.WinRate, &s.WinningTrades, &s.TotalTrades); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snaps = append(snaps, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots: %w", err)
	}

	return snaps, nil
}

// Latest returns the most recent snapshot, or nil when none exist
func (r *SnapshotRepository) Latest() (*DailySnapshot, error) {
	query := `
		SELECT date, total_pl, win_rate, winning_trades, total_trades
		FROM daily_snapshots
		ORDER BY date DESC
		LIMIT 1
	`

	var s DailySnapshot
	err := r.db.QueryRow(query).Scan(&s.Date, &s.TotalPL, &s.WinRate, &s.WinningTrades, &s.TotalTrades)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}

	return &s, nil
}
