package utils

import (
	"testing"
	"time"
)

func TestBeginningOfDay(t *testing.T) {
	in := time.Date(2025, 6, 10, 16, 45, 30, 999, time.UTC)
	got := BeginningOfDay(in)
	want := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 12, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 2 {
		t.Fatalf("expected 2 days, got %d", got)
	}
	if got := DaysBetween(end, start); got != -2 {
		t.Fatalf("expected -2 days, got %d", got)
	}
}
