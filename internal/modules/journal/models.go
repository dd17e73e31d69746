package journal

import (
	"fmt"
	"strings"
	"time"
)

// Side represents the trade direction (LONG or SHORT)
type Side string

const (
	SideLong  Side = "LONG"
	SideShort Side = "SHORT"
)

// IsValid checks if the side is valid
func (s Side) IsValid() bool {
	return s == SideLong || s == SideShort
}

// IsLong returns true if this is a LONG trade.
// Comparison is case-insensitive to match imported journal data.
func (s Side) IsLong() bool {
	return strings.EqualFold(string(s), string(SideLong))
}

// SideFromString creates a Side from a string (case-insensitive)
func SideFromString(value string) (Side, error) {
	if value == "" {
		return "", fmt.Errorf("invalid trade side: empty string")
	}

	switch strings.ToUpper(value) {
	case "LONG":
		return SideLong, nil
	case "SHORT":
		return SideShort, nil
	default:
		return "", fmt.Errorf("invalid trade side: %s", value)
	}
}

// Trade represents one closed position in the journal
type Trade struct {
	EntryTime time.Time `json:"entry_time"`
	ExitTime  time.Time `json:"exit_time"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	Symbol    string    `json:"symbol,omitempty"`
	AccountID string    `json:"account_id,omitempty"`
	Side      Side      `json:"side"`
	Profit    float64   `json:"profit"`
	Quantity  float64   `json:"quantity"`
	ID        int       `json:"id"`
}

// ExitDate returns the calendar date of the trade's exit in YYYY-MM-DD form
func (t Trade) ExitDate() string {
	return t.ExitTime.Format("2006-01-02")
}

// Duration returns the holding time of the trade
func (t Trade) Duration() time.Duration {
	return t.ExitTime.Sub(t.EntryTime)
}

// Validate checks trade data before it enters the ledger
func (t *Trade) Validate() error {
	if !t.Side.IsValid() {
		return fmt.Errorf("invalid trade side: %s", t.Side)
	}
	if t.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	if t.EntryTime.IsZero() || t.ExitTime.IsZero() {
		return fmt.Errorf("entry and exit times are required")
	}
	if t.ExitTime.Before(t.EntryTime) {
		return fmt.Errorf("exit time precedes entry time")
	}
	return nil
}
