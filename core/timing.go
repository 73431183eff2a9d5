package core

import "time"

// Measure runs fn and reports its wall-clock duration.
//
// time.Now carries a monotonic clock reading, so the reported duration
// is immune to wall-clock adjustments and never negative. Measure adds
// nothing beyond the two clock reads and does not touch whatever fn
// produces; callers decide how to report the duration.
func Measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
