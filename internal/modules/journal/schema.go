package journal

import "database/sql"

// InitSchema creates the journal tables if they don't exist
func InitSchema(db *sql.DB) error {
	schema := `
-- Closed trades (append-only)
CREATE TABLE IF NOT EXISTS trades (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    account_id TEXT,
    symbol TEXT,
    side TEXT NOT NULL,                    -- 'LONG' or 'SHORT'
    quantity REAL NOT NULL,
    entry_time TEXT NOT NULL,              -- 'YYYY-MM-DD HH:MM:SS'
    exit_time TEXT NOT NULL,
    profit REAL NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_exit_time ON trades(exit_time);
CREATE INDEX IF NOT EXISTS idx_trades_account ON trades(account_id);

-- One metrics row per calendar day, written by the snapshot job
CREATE TABLE IF NOT EXISTS daily_snapshots (
    date TEXT PRIMARY KEY,                 -- 'YYYY-MM-DD'
    total_pl REAL NOT NULL,
    win_rate REAL NOT NULL,
    winning_trades INTEGER NOT NULL,
    total_trades INTEGER NOT NULL,
    created_at TEXT NOT NULL
);
`

	_, err := db.Exec(schema)
	return err
}
