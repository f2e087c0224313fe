package domain

import (
	"sort"
	"time"
)

// DateTimeInterval is an ephemeral half-open [Start, End) time slot used to
// reconcile requested ranges against already approved bookings. IsNew marks
// a slot that is being requested rather than one loaded from storage.
type DateTimeInterval struct {
	Start time.Time
	End   time.Time
	IsNew bool
}

// Intersects reports whether two half-open intervals overlap. Back-to-back
// intervals (i.End == other.Start) do not overlap.
func (i DateTimeInterval) Intersects(other DateTimeInterval) bool {
	return i.End.After(other.Start) && other.End.After(i.Start)
}

// intervalKey keeps an "existing" and a "new" copy of the same slot as
// distinct members of the working set.
type intervalKey struct {
	start int64
	end   int64
	isNew bool
}

func (i DateTimeInterval) key() intervalKey {
	return intervalKey{start: i.Start.UnixMilli(), end: i.End.UnixMilli(), isNew: i.IsNew}
}

// ResolveNonOverlapping returns the maximal non-overlapping subset of the
// given intervals: all existing intervals survive, and as many new intervals
// as fit around them. Existing intervals always beat new ones; among new
// intervals the earlier-starting (then earlier-ending) one wins. The result
// is deterministic regardless of input order.
func ResolveNonOverlapping(intervals []DateTimeInterval) []DateTimeInterval {
	seen := make(map[intervalKey]struct{}, len(intervals))
	unique := make([]DateTimeInterval, 0, len(intervals))
	for _, interval := range intervals {
		k := interval.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, interval)
	}

	sort.Slice(unique, func(i, j int) bool {
		a, b := unique[i], unique[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		return !a.IsNew && b.IsNew
	})

	accepted := make([]DateTimeInterval, 0, len(unique))

next:
	for _, interval := range unique {
		for len(accepted) > 0 && accepted[len(accepted)-1].Intersects(interval) {
			if interval.IsNew {
				// A new interval loses to whatever is already accepted.
				continue next
			}
			// An existing interval displaces the previously accepted new one.
			accepted = accepted[:len(accepted)-1]
		}
		accepted = append(accepted, interval)
	}

	return accepted
}
