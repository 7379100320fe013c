package model

import (
	"testing"
	"time"
)

func TestContestOngoingAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	c := &Contest{ID: 1, Name: "Spring Round", StartDate: start, EndDate: end}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before start", start.Add(-time.Nanosecond), false},
		{"at start", start, true},
		{"midway", start.Add(time.Hour), true},
		{"at end", end, true},
		{"after end", end.Add(time.Nanosecond), false},
		{"other zone inside", start.Add(30 * time.Minute).In(time.FixedZone("UTC+5", 5*3600)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.OngoingAt(tt.at); got != tt.want {
				t.Errorf("OngoingAt(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}
