// Package streak derives consecutive-day engagement streaks from
// study-session timestamps.
package streak

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/prepmate/engine/internal/store"
)

// Calculator computes an owner's current streak from the session log.
type Calculator struct {
	sessions store.SessionRepo
}

// NewCalculator creates a streak calculator over the given session repo.
func NewCalculator(sessions store.SessionRepo) *Calculator {
	return &Calculator{sessions: sessions}
}

// Current returns the owner's consecutive-day streak as of now.
// An empty history yields 0.
func (c *Calculator) Current(ctx context.Context, ownerID string, now time.Time) (int, error) {
	times, err := c.sessions.StartTimesForOwner(ctx, ownerID, 0)
	if err != nil {
		return 0, fmt.Errorf("load session times: %w", err)
	}
	return FromTimes(times, now), nil
}

// FromTimes computes the streak from session timestamps in any order.
// Days are UTC calendar dates; multiple sessions on one day count
// once. A session today or yesterday keeps the streak alive —
// "yesterday" covers owners who haven't studied yet today.
func FromTimes(times []time.Time, now time.Time) int {
	if len(times) == 0 {
		return 0
	}

	seen := make(map[time.Time]bool, len(times))
	days := make([]time.Time, 0, len(times))
	for _, ts := range times {
		d := utcDate(ts)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := utcDate(now)
	if daysBetween(days[0], today) > 1 {
		return 0
	}

	streak := 1
	last := days[0]
	for _, d := range days[1:] {
		gap := daysBetween(d, last)
		switch {
		case gap == 1:
			streak++
			last = d
		case gap == 0:
			// Same date, already counted.
		default:
			return streak
		}
	}
	return streak
}

// utcDate truncates a timestamp to its UTC calendar date.
func utcDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar days from earlier to later.
// Both arguments must be UTC midnights.
func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}
