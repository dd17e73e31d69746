package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelens/internal/modules/journal"
)

func TestBuildEquityCurve_Empty(t *testing.T) {
	curve := BuildEquityCurve(nil)

	assert.Empty(t, curve.Dates)
	assert.Empty(t, curve.Values)
}

func TestBuildEquityCurve_GapFilling(t *testing.T) {
	trades := []journal.Trade{
		{EntryTime: mustTime(t, "2024-01-01 09:00:00"), ExitTime: mustTime(t, "2024-01-01 10:00:00"), Profit: 100, Side: journal.SideLong, Quantity: 1},
		{EntryTime: mustTime(t, "2024-01-03 09:00:00"), ExitTime: mustTime(t, "2024-01-03 10:00:00"), Profit: -50, Side: journal.SideLong, Quantity: 1},
	}

	curve := BuildEquityCurve(trades)

	assert.Equal(t, []string{"2023-12-31", "2024-01-01", "2024-01-02", "2024-01-03"}, curve.Dates)
	assert.Equal(t, []float64{0, 100, 100, 50}, curve.Values)
}

func TestBuildEquityCurve_SingleDay(t *testing.T) {
	trades := []journal.Trade{
		{EntryTime: mustTime(t, "2024-06-15 09:00:00"), ExitTime: mustTime(t, "2024-06-15 10:00:00"), Profit: 42, Side: journal.SideShort, Quantity: 2},
	}

	curve := BuildEquityCurve(trades)

	require.Len(t, curve.Dates, 2)
	require.Len(t, curve.Values, 2)
	assert.Equal(t, "2024-06-14", curve.Dates[0])
	assert.Equal(t, 0.0, curve.Values[0])
	assert.Equal(t, "2024-06-15", curve.Dates[1])
	assert.InDelta(t, 42.0, curve.Values[1], 1e-9)
}

func TestBuildEquityCurve_SameDayTradesAreSummed(t *testing.T) {
	trades := []journal.Trade{
		{EntryTime: mustTime(t, "2024-02-01 09:00:00"), ExitTime: mustTime(t, "2024-02-01 10:00:00"), Profit: 30, Side: journal.SideLong, Quantity: 1},
		{EntryTime: mustTime(t, "2024-02-01 11:00:00"), ExitTime: mustTime(t, "2024-02-01 12:00:00"), Profit: -10, Side: journal.SideShort, Quantity: 1},
	}

	curve := BuildEquityCurve(trades)

	assert.Equal(t, []float64{0, 20}, curve.Values)
}

func TestBuildEquityCurve_InputOrderIrrelevant(t *testing.T) {
	a := journal.Trade{EntryTime: mustTime(t, "2024-03-05 09:00:00"), ExitTime: mustTime(t, "2024-03-05 10:00:00"), Profit: 10, Side: journal.SideLong, Quantity: 1}
	b := journal.Trade{EntryTime: mustTime(t, "2024-03-01 09:00:00"), ExitTime: mustTime(t, "2024-03-01 10:00:00"), Profit: -5, Side: journal.SideLong, Quantity: 1}

	forward := BuildEquityCurve([]journal.Trade{a, b})
	reverse := BuildEquityCurve([]journal.Trade{b, a})

	assert.Equal(t, forward, reverse)
}

func TestBuildEquityCurve_LengthMatchesDateRange(t *testing.T) {
	trades := []journal.Trade{
		{EntryTime: mustTime(t, "2024-01-01 09:00:00"), ExitTime: mustTime(t, "2024-01-01 10:00:00"), Profit: 1, Side: journal.SideLong, Quantity: 1},
		{EntryTime: mustTime(t, "2024-01-10 09:00:00"), ExitTime: mustTime(t, "2024-01-10 10:00:00"), Profit: 1, Side: journal.SideLong, Quantity: 1},
	}

	curve := BuildEquityCurve(trades)

	// 10 days in range plus the synthetic origin point
	assert.Len(t, curve.Dates, 11)
	assert.Len(t, curve.Values, 11)
}
