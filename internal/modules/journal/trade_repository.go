package journal

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// timeLayout is the storage format for entry/exit timestamps.
// Matches the journal export format ("YYYY-MM-DD HH:MM:SS").
const timeLayout = "2006-01-02 15:04:05"

// tradesColumns is the list of columns for the trades table.
// Used to avoid SELECT * which can break when schema changes.
// Column order must match scanTrade().
const tradesColumns = `id, account_id, symbol, side, quantity, entry_time, exit_time, profit, created_at`

// TradeRepository handles trade database operations
type TradeRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewTradeRepository creates a new trade repository
func NewTradeRepository(db *sql.DB, log zerolog.Logger) *TradeRepository {
	return &TradeRepository{
		db:  db,
		log: log.With().Str("repo", "trade").Logger(),
	}
}

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// Create inserts a new trade record
func (r *TradeRepository) Create(trade *Trade) error {
	return r.insert(r.db, trade)
}

// CreateBatch inserts all trades inside one transaction. Either every
// trade is stored or none are; a failure at any record rolls back the
// rows already written.
func (r *TradeRepository) CreateBatch(trades []Trade) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin batch insert: %w", err)
	}
	defer tx.Rollback()

	for idx := range trades {
		if err := r.insert(tx, &trades[idx]); err != nil {
			return fmt.Errorf("failed to store trade record %d: %w", idx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch insert: %w", err)
	}

	r.log.Debug().Int("count", len(trades)).Msg("Trade batch created")
	return nil
}

func (r *TradeRepository) insert(ex execer, trade *Trade) error {
	if err := trade.Validate(); err != nil {
		return fmt.Errorf("failed to create trade: %w", err)
	}

	query := `
		INSERT INTO trades
		(account_id, symbol, side, quantity, entry_time, exit_time, profit, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	res, err := ex.Exec(query,
		nullString(trade.AccountID),
		nullString(strings.ToUpper(strings.TrimSpace(trade.Symbol))),
		string(trade.Side),
		trade.Quantity,
		trade.EntryTime.Format(timeLayout),
		trade.ExitTime.Format(timeLayout),
		trade.Profit,
		now.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create trade: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		trade.ID = int(id)
	}
	trade.CreatedAt = now

	r.log.Debug().
		Int("id", trade.ID).
		Str("side", string(trade.Side)).
		Float64("profit", trade.Profit).
		Msg("Trade created")

	return nil
}

// ListAll retrieves all trades ordered by exit time ascending.
// When accountID is non-empty the result is filtered to that account.
func (r *TradeRepository) ListAll(accountID string) ([]Trade, error) {
	query := "SELECT " + tradesColumns + " FROM trades"
	var args []interface{}
	if accountID != "" {
		query += " WHERE account_id = ?"
		args = append(args, accountID)
	}
	query += " ORDER BY exit_time ASC, id ASC"

	return r.queryTrades(query, args...)
}

// ListRecent retrieves the most recent trades, newest first
func (r *TradeRepository) ListRecent(accountID string, limit int) ([]Trade, error) {
	query := "SELECT " + tradesColumns + " FROM trades"
	var args []interface{}
	if accountID != "" {
		query += " WHERE account_id = ?"
		args = append(args, accountID)
	}
	query += " ORDER BY exit_time DESC, id DESC LIMIT ?"
	args = append(args, limit)

	return r.queryTrades(query, args...)
}

// ListByExitDate retrieves trades whose exit falls on the given calendar
// date (YYYY-MM-DD), optionally filtered by account
func (r *TradeRepository) ListByExitDate(date, accountID string) ([]Trade, error) {
	query := "SELECT " + tradesColumns + " FROM trades WHERE exit_time LIKE ?"
	args := []interface{}{date + "%"}
	if accountID != "" {
		query += " AND account_id = ?"
		args = append(args, accountID)
	}
	query += " ORDER BY exit_time ASC, id ASC"

	return r.queryTrades(query, args...)
}

// Accounts returns the distinct account ids present in the journal, sorted
func (r *TradeRepository) Accounts() ([]string, error) {
	query := `
		SELECT DISTINCT account_id FROM trades
		WHERE account_id IS NOT NULL AND account_id != ''
		ORDER BY account_id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	defer rows.Close()

	var accounts []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan account id: %w", err)
		}
		accounts = append(accounts, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}

// Count returns the total number of trades in the journal
func (r *TradeRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM trades").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count trades: %w", err)
	}
	return count, nil
}

// Helper methods

func (r *TradeRepository) queryTrades(query string, args ...interface{}) ([]Trade, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	var trades []Trade
	for rows.Next() {
		trade, err := r.scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		trades = append(trades, trade)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trades: %w", err)
	}

	return trades, nil
}

func (r *TradeRepository) scanTrade(rows *sql.Rows) (Trade, error) {
	var trade Trade
	var accountID, symbol sql.NullString
	var entryTime, exitTime, createdAt string

	err := rows.Scan(
		&trade.ID,
		&accountID,
		&symbol,
		&trade.Side,
		&trade.Quantity,
		&entryTime,
		&exitTime,
		&trade.Profit,
		&createdAt,
	)
	if err != nil {
		return trade, err
	}

	if trade.EntryTime, err = parseTimestamp(entryTime); err != nil {
		return trade, fmt.Errorf("bad entry_time for trade %d: %w", trade.ID, err)
	}
	if trade.ExitTime, err = parseTimestamp(exitTime); err != nil {
		return trade, fmt.Errorf("bad exit_time for trade %d: %w", trade.ID, err)
	}
	if t, err := parseTimestamp(createdAt); err == nil {
		trade.CreatedAt = t
	}

	if accountID.Valid {
		trade.AccountID = accountID.String
	}
	if symbol.Valid {
		trade.Symbol = symbol.String
	}

	return trade, nil
}

// parseTimestamp parses a stored timestamp, accepting both the journal
// export format and RFC3339 for rows written by other tools
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
	}
	return t, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
