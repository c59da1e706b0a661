package format

import (
	"cmp"
	"fmt"
	"time"
)

// Clock renders a number of seconds as zero-padded HH:MM:SS. Hours are not
// wrapped at 24, so 90000 renders as "25:00:00". Negative input renders as
// "00:00:00".
func Clock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ClockDuration renders d as HH:MM:SS, truncating sub-second precision.
func ClockDuration(d time.Duration) string {
	return Clock(int64(d / time.Second))
}

// Clamp limits v to the closed range [lo, hi]. If lo > hi the result is hi.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
