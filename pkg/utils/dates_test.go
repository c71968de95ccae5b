package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2025-01-01", "2025-01-04", 3},
		{"2025-01-31", "2025-02-01", 1},
		{"2024-02-28", "2024-03-01", 2},
		{"2025-03-10", "2025-03-10", 0},
		{"2025-03-10", "2025-03-08", -2},
	}

	for _, tt := range tests {
		start, err := ParseDate(tt.start)
		if err != nil {
			t.Fatalf("parse %s: %v", tt.start, err)
		}
		end, err := ParseDate(tt.end)
		if err != nil {
			t.Fatalf("parse %s: %v", tt.end, err)
		}
		if got := DaysBetween(start, end); got != tt.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestDaysBetweenIgnoresClock(t *testing.T) {
	start := time.Date(2025, 5, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2025, 5, 2, 0, 15, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 1 {
		t.Fatalf("expected 1 calendar day, got %d", got)
	}
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, value := range []string{"01-02-2025", "2025/01/02", "2025-13-01", ""} {
		if _, err := ParseDate(value); err == nil {
			t.Errorf("expected %q to be rejected", value)
		}
	}
}
