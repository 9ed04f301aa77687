package streak

import (
	"testing"
	"time"
)

var now = time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

func day(offset int, hour int) time.Time {
	return time.Date(2025, 6, 10+offset, hour, 0, 0, 0, time.UTC)
}

func TestFromTimes(t *testing.T) {
	tests := []struct {
		name  string
		times []time.Time
		want  int
	}{
		{
			name:  "empty history",
			times: nil,
			want:  0,
		},
		{
			name:  "three consecutive days ending today",
			times: []time.Time{day(0, 9), day(-1, 20), day(-2, 7)},
			want:  3,
		},
		{
			name:  "gap breaks the walk",
			times: []time.Time{day(0, 9), day(-2, 7)},
			want:  1,
		},
		{
			name:  "latest session two days ago",
			times: []time.Time{day(-2, 9), day(-3, 9)},
			want:  0,
		},
		{
			name:  "yesterday keeps the streak alive",
			times: []time.Time{day(-1, 22), day(-2, 6)},
			want:  2,
		},
		{
			name:  "multiple sessions per day count once",
			times: []time.Time{day(0, 8), day(0, 12), day(0, 21), day(-1, 9), day(-1, 18)},
			want:  2,
		},
		{
			name:  "unsorted input",
			times: []time.Time{day(-2, 7), day(0, 9), day(-1, 20)},
			want:  3,
		},
		{
			name:  "long run then gap",
			times: []time.Time{day(0, 9), day(-1, 9), day(-2, 9), day(-3, 9), day(-5, 9), day(-6, 9)},
			want:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTimes(tt.times, now); got != tt.want {
				t.Errorf("FromTimes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFromTimesUsesUTCCalendarDays(t *testing.T) {
	// 23:50 yesterday and 00:10 today are distinct calendar days even
	// though they are 20 minutes apart.
	times := []time.Time{
		time.Date(2025, 6, 10, 0, 10, 0, 0, time.UTC),
		time.Date(2025, 6, 9, 23, 50, 0, 0, time.UTC),
	}
	if got := FromTimes(times, now); got != 2 {
		t.Errorf("FromTimes() = %d, want 2", got)
	}

	// A non-UTC zone input must be normalized to UTC before the date
	// is taken: 01:00+02:00 on June 10 is June 9 in UTC.
	offset := time.FixedZone("UTC+2", 2*3600)
	times = []time.Time{time.Date(2025, 6, 10, 1, 0, 0, 0, offset)}
	if got := FromTimes(times, now); got != 1 {
		t.Errorf("FromTimes() = %d, want 1 (yesterday in UTC)", got)
	}
}
