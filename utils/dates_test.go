package utils

import (
	"testing"
	"time"
)

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	day := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	if !SameDay(day, time.Date(2026, 8, 28, 23, 59, 59, 0, time.Local)) {
		t.Error("23:59:59 on the same date should match")
	}
	if !SameDay(day, time.Date(2026, 8, 28, 0, 0, 1, 0, time.Local)) {
		t.Error("00:00:01 on the same date should match")
	}
	if SameDay(day, time.Date(2026, 8, 29, 0, 0, 0, 0, time.Local)) {
		t.Error("midnight of the next day must not match")
	}
	if SameDay(day, time.Date(2025, 8, 28, 12, 0, 0, 0, time.Local)) {
		t.Error("same month/day in another year must not match")
	}
}

func TestTrailingWindowBoundary(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	cutoff := TrailingCutoff(now, 3)

	if !cutoff.Equal(time.Date(2026, 5, 28, 12, 0, 0, 0, time.Local)) {
		t.Fatalf("cutoff = %v, want 3 calendar months earlier", cutoff)
	}
	if !InTrailingWindow(cutoff, cutoff) {
		t.Error("an instant exactly at the cutoff is inside the window")
	}
	if InTrailingWindow(cutoff.Add(-time.Second), cutoff) {
		t.Error("one second before the cutoff is outside the window")
	}
	if !InTrailingWindow(now, cutoff) {
		t.Error("now is inside its own trailing window")
	}
}
