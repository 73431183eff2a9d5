package core_test

import (
	"testing"

	core "github.com/steliosot/multiprocessing-threads/core"
)

func TestParseStrategyTag(t *testing.T) {
	cases := []struct {
		in      string
		want    core.StrategyTag
		wantErr bool
	}{
		{"serial", core.StrategySerial, false},
		{"sequential", core.StrategySerial, false},
		{"SERIAL", core.StrategySerial, false},
		{"pertask", core.StrategyPerTask, false},
		{"per-task", core.StrategyPerTask, false},
		{"spawn", core.StrategyPerTask, false},
		{"pool", core.StrategyPool, false},
		{"fixedpool", core.StrategyPool, false},
		{"fixed-pool", core.StrategyPool, false},
		{"  pool  ", core.StrategyPool, false},
		{"threads", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := core.ParseStrategyTag(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseStrategyTag(%q) error = nil, want error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrategyTag(%q) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseStrategyTag(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestOutcomeStatusString(t *testing.T) {
	cases := map[core.OutcomeStatus]string{
		core.StatusOK:           "ok",
		core.StatusFailed:       "failed",
		core.StatusNotAttempted: "not_attempted",
		core.OutcomeStatus(99):  "unknown",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", status, got, want)
		}
	}
}
