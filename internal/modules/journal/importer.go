package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// tradeRecord is the wire shape of one entry in a trades.json export
type tradeRecord struct {
	ID        int             `json:"id"`
	AccountID json.RawMessage `json:"account_id"` // string or number in the wild
	Symbol    string          `json:"symbol"`
	Side      string          `json:"side"`
	Quantity  float64         `json:"quantity"`
	EntryTime string          `json:"entry_time"`
	ExitTime  string          `json:"exit_time"`
	Profit    float64         `json:"profit"`
}

// Importer loads a trades.json export into the journal database
type Importer struct {
	repo *TradeRepository
	log  zerolog.Logger
}

// NewImporter creates a new importer
func NewImporter(repo *TradeRepository, log zerolog.Logger) *Importer {
	return &Importer{
		repo: repo,
		log:  log.With().Str("service", "importer").Logger(),
	}
}

// Run imports all trades from the given file. Records are validated up
// front and written in one transaction, so a malformed record or a
// storage failure leaves the journal untouched; a partially applied
// snapshot would silently skew every aggregate downstream.
func (i *Importer) Run(path string) (int, error) {
	batchID := uuid.NewString()
	log := i.log.With().Str("batch_id", batchID).Str("file", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read trades file: %w", err)
	}

	var records []tradeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("failed to parse trades file: %w", err)
	}

	trades := make([]Trade, 0, len(records))
	for idx, rec := range records {
		trade, err := rec.toTrade()
		if err != nil {
			return 0, fmt.Errorf("invalid trade record %d: %w", idx, err)
		}
		trades = append(trades, trade)
	}

	if err := i.repo.CreateBatch(trades); err != nil {
		return 0, fmt.Errorf("failed to store trades: %w", err)
	}

	log.Info().Int("count", len(trades)).Msg("Trades imported")
	return len(trades), nil
}

func (rec tradeRecord) toTrade() (Trade, error) {
	side, err := SideFromString(rec.Side)
	if err != nil {
		return Trade{}, err
	}

	entryTime, err := time.Parse(timeLayout, rec.EntryTime)
	if err != nil {
		return Trade{}, fmt.Errorf("bad entry_time %q: %w", rec.EntryTime, err)
	}
	exitTime, err := time.Parse(timeLayout, rec.ExitTime)
	if err != nil {
		return Trade{}, fmt.Errorf("bad exit_time %q: %w", rec.ExitTime, err)
	}

	trade := Trade{
		AccountID: decodeAccountID(rec.AccountID),
		Symbol:    rec.Symbol,
		Side:      side,
		Quantity:  rec.Quantity,
		EntryTime: entryTime,
		ExitTime:  exitTime,
		Profit:    rec.Profit,
	}

	if err := trade.Validate(); err != nil {
		return Trade{}, err
	}
	return trade, nil
}

// decodeAccountID normalizes account ids, which journal exports encode
// either as strings or as bare numbers
func decodeAccountID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return ""
}
