package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSideFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Side
		wantErr  bool
		name     string
	}{
		{"LONG", SideLong, false, "upper long"},
		{"long", SideLong, false, "lower long"},
		{"Short", SideShort, false, "mixed short"},
		{"", "", true, "empty"},
		{"HEDGE", "", true, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, err := SideFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, side)
		})
	}
}

func TestSide_IsLong(t *testing.T) {
	assert.True(t, SideLong.IsLong())
	assert.True(t, Side("long").IsLong())
	assert.False(t, SideShort.IsLong())
}

func TestTrade_Validate(t *testing.T) {
	entry := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	exit := entry.Add(time.Hour)

	valid := Trade{Side: SideLong, Quantity: 1, EntryTime: entry, ExitTime: exit}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Trade)
	}{
		{"invalid side", func(tr *Trade) { tr.Side = "HEDGE" }},
		{"negative quantity", func(tr *Trade) { tr.Quantity = -1 }},
		{"zero entry time", func(tr *Trade) { tr.EntryTime = time.Time{} }},
		{"exit before entry", func(tr *Trade) { tr.ExitTime = tr.EntryTime.Add(-time.Minute) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trade := valid
			tt.mutate(&trade)
			assert.Error(t, trade.Validate())
		})
	}
}

func TestTrade_ExitDate(t *testing.T) {
	trade := Trade{ExitTime: time.Date(2024, 3, 7, 23, 59, 59, 0, time.UTC)}
	assert.Equal(t, "2024-03-07", trade.ExitDate())
}

func TestTrade_Duration(t *testing.T) {
	entry := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	trade := Trade{EntryTime: entry, ExitTime: entry.Add(90 * time.Second)}
	assert.Equal(t, 90*time.Second, trade.Duration())
}
