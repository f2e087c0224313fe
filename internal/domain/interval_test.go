package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(t *testing.T, startHour, endHour int, isNew bool) DateTimeInterval {
	t.Helper()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return DateTimeInterval{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
		IsNew: isNew,
	}
}

func TestDateTimeInterval_Intersects(t *testing.T) {
	a := interval(t, 10, 12, false)

	assert.True(t, a.Intersects(interval(t, 11, 13, false)))
	assert.True(t, a.Intersects(interval(t, 9, 11, false)))
	assert.True(t, a.Intersects(interval(t, 10, 12, false)))
	assert.True(t, a.Intersects(interval(t, 9, 13, false)))
	assert.True(t, a.Intersects(interval(t, 11, 12, false)))

	// Half-open: back-to-back slots do not overlap.
	assert.False(t, a.Intersects(interval(t, 12, 14, false)))
	assert.False(t, a.Intersects(interval(t, 8, 10, false)))
	assert.False(t, a.Intersects(interval(t, 14, 16, false)))
}

func TestResolveNonOverlapping_BackToBackAllSurvive(t *testing.T) {
	got := ResolveNonOverlapping([]DateTimeInterval{
		interval(t, 12, 14, true),
		interval(t, 10, 12, true),
		interval(t, 14, 16, true),
	})

	require.Len(t, got, 3)
	assert.Equal(t, interval(t, 10, 12, true), got[0])
	assert.Equal(t, interval(t, 12, 14, true), got[1])
	assert.Equal(t, interval(t, 14, 16, true), got[2])
}

func TestResolveNonOverlapping_EarlierNewIntervalWins(t *testing.T) {
	got := ResolveNonOverlapping([]DateTimeInterval{
		interval(t, 11, 13, true),
		interval(t, 10, 12, true),
	})

	require.Len(t, got, 1)
	assert.Equal(t, interval(t, 10, 12, true), got[0])
}

func TestResolveNonOverlapping_ShorterIntervalWinsOnSameStart(t *testing.T) {
	got := ResolveNonOverlapping([]DateTimeInterval{
		interval(t, 10, 14, true),
		interval(t, 10, 12, true),
	})

	require.Len(t, got, 1)
	assert.Equal(t, interval(t, 10, 12, true), got[0])
}

func TestResolveNonOverlapping_ExistingBeatsNew(t *testing.T) {
	got := ResolveNonOverlapping([]DateTimeInterval{
		interval(t, 10, 12, true),
		interval(t, 11, 13, false),
	})

	require.Len(t, got, 1)
	assert.Equal(t, interval(t, 11, 13, false), got[0])
}

func TestResolveNonOverlapping_ExistingDisplacesAcceptedNew(t *testing.T) {
	// The new interval starts first and is accepted, then the existing one
	// arrives and evicts it.
	got := ResolveNonOverlapping([]DateTimeInterval{
		interval(t, 9, 12, true),
		interval(t, 10, 11, false),
		interval(t, 12, 13, true),
	})

	require.Len(t, got, 2)
	assert.Equal(t, interval(t, 10, 11, false), got[0])
	assert.Equal(t, interval(t, 12, 13, true), got[1])
}

func TestResolveNonOverlapping_NewFitsAroundExisting(t *testing.T) {
	got := ResolveNonOverlapping([]DateTimeInterval{
		interval(t, 10, 12, false),
		interval(t, 14, 16, false),
		interval(t, 12, 14, true),
		interval(t, 15, 17, true),
	})

	require.Len(t, got, 3)
	assert.Equal(t, interval(t, 10, 12, false), got[0])
	assert.Equal(t, interval(t, 12, 14, true), got[1])
	assert.Equal(t, interval(t, 14, 16, false), got[2])
}

func TestResolveNonOverlapping_DuplicatesCollapse(t *testing.T) {
	got := ResolveNonOverlapping([]DateTimeInterval{
		interval(t, 10, 12, true),
		interval(t, 10, 12, true),
		interval(t, 10, 12, true),
	})

	require.Len(t, got, 1)
}

func TestResolveNonOverlapping_SameSlotExistingWins(t *testing.T) {
	// A new request for an exactly matching approved slot is distinct from
	// the existing copy, and loses to it.
	got := ResolveNonOverlapping([]DateTimeInterval{
		interval(t, 10, 12, true),
		interval(t, 10, 12, false),
	})

	require.Len(t, got, 1)
	assert.False(t, got[0].IsNew)
}

func TestResolveNonOverlapping_DeterministicAcrossInputOrder(t *testing.T) {
	intervals := []DateTimeInterval{
		interval(t, 10, 12, true),
		interval(t, 11, 13, true),
		interval(t, 12, 14, false),
		interval(t, 13, 15, true),
		interval(t, 15, 16, true),
	}

	want := ResolveNonOverlapping(intervals)

	permuted := []DateTimeInterval{intervals[3], intervals[0], intervals[4], intervals[2], intervals[1]}
	got := ResolveNonOverlapping(permuted)

	assert.Equal(t, want, got)
}

func TestResolveNonOverlapping_Empty(t *testing.T) {
	got := ResolveNonOverlapping(nil)
	assert.Empty(t, got)
}
