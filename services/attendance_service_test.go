package services_test

import (
	"testing"
	"time"

	"jims/services"
)

func TestDateOnly(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	in := time.Date(2025, time.June, 15, 18, 45, 12, 999, loc)
	got := services.DateOnly(in)

	want := time.Date(2025, time.June, 15, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("DateOnly = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Errorf("DateOnly changed location to %v", got.Location())
	}
}

func TestCheckInStatus(t *testing.T) {
	tests := []struct {
		name string
		hour int
		min  int
		want string
	}{
		{"early morning", 6, 0, "Present"},
		{"just before cutoff", 8, 59, "Present"},
		{"at cutoff", 9, 0, "Late"},
		{"after cutoff", 9, 1, "Late"},
		{"afternoon", 14, 0, "Late"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := time.Date(2025, time.June, 15, tt.hour, tt.min, 0, 0, time.UTC)
			if got := services.CheckInStatus(at); got != tt.want {
				t.Errorf("CheckInStatus(%02d:%02d) = %q, want %q", tt.hour, tt.min, got, tt.want)
			}
		})
	}
}
