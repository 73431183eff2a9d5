package core_test

import (
	"testing"
	"time"

	core "github.com/steliosot/multiprocessing-threads/core"
)

// TestMeasure_CoversSleep verifies the measured duration brackets the work
// Given: a function sleeping 20ms
// When: wrapped in Measure
// Then: the reported duration is at least 20ms
func TestMeasure_CoversSleep(t *testing.T) {
	const delay = 20 * time.Millisecond

	elapsed := core.Measure(func() {
		time.Sleep(delay)
	})

	if elapsed < delay {
		t.Errorf("Measure() = %v, want at least %v", elapsed, delay)
	}
}

// TestMeasure_NonNegative verifies the no-op edge case
// Given: a function doing nothing
// When: wrapped in Measure
// Then: the duration is non-negative and near zero
func TestMeasure_NonNegative(t *testing.T) {
	elapsed := core.Measure(func() {})

	if elapsed < 0 {
		t.Errorf("Measure() = %v, want >= 0", elapsed)
	}
	if elapsed > time.Second {
		t.Errorf("Measure() = %v, want near zero for a no-op", elapsed)
	}
}
