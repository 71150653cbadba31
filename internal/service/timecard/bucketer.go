package timecard

import (
	"maps"
	"slices"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timecard"
)

// dayBucket collects the punches that fall on one reference-timezone day.
type dayBucket struct {
	start   time.Time // 00:00 of the day in the reference timezone
	punches timecard.Punches
}

type dayBuckets map[string]*dayBucket

// dayKey formats t as YYYY-MM-DD in loc. Never slice a UTC string instead:
// that shifts late-evening punches onto the next day.
func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(timecard.DateLayout)
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// bucketByDay groups events by day and keeps the earliest occurrence of each
// punch type per day. Events outside [start, end] or with an unknown type are
// skipped, so a day only exists if at least one punch landed on it.
func bucketByDay(events []attendance.PunchEvent, loc *time.Location, start, end time.Time) dayBuckets {
	buckets := make(dayBuckets)

	for _, ev := range events {
		if !ev.Type.Valid() || ev.Timestamp.Before(start) || ev.Timestamp.After(end) {
			continue
		}

		key := dayKey(ev.Timestamp, loc)
		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{start: startOfDay(ev.Timestamp, loc)}
			buckets[key] = b
		}

		// first-wins; the comparison also covers input that is not sorted
		if cur := b.punches.Get(ev.Type); cur == nil || ev.Timestamp.Before(*cur) {
			b.punches.Set(ev.Type, ev.Timestamp)
		}
	}

	return buckets
}

// sortedKeys returns the day keys in chronological order.
func (b dayBuckets) sortedKeys() []string {
	return slices.Sorted(maps.Keys(b))
}
