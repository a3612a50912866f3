package hypixel

import (
	"time"
)

// TimestampToTime converts a millisecond epoch into a UTC instant. Missing,
// zero, and negative timestamps all resolve to the zero time.
func TimestampToTime(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}

	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond)).UTC()
}

// TimestampIn converts a millisecond epoch into an instant in the given zone,
// preserving the zero-time sentinel.
func TimestampIn(ms int64, loc *time.Location) time.Time {
	t := TimestampToTime(ms)
	if t.IsZero() {
		return t
	}

	return t.In(loc)
}
