package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNextReminderDate_UTCMidnight(t *testing.T) {
	// Cron fires at 09:00 host-local; the computed date must still be the
	// UTC midnight bookings are stored under.
	now := time.Date(2025, 6, 9, 9, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))
	got := nextReminderDate(now)
	want := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if got.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %s", got.Location())
	}
}

func TestNextReminderDate_MatchesBookedDates(t *testing.T) {
	artist := activeArtist()
	store := newFakeAppointments()
	v := NewBookingValidator(newFakeArtists(artist), store)

	// Dates arrive as "YYYY-MM-DD" and parse to UTC midnights.
	date, err := time.Parse("2006-01-02", "2025-06-10")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	appt, err := v.Book(uuid.New(), artist.ID, date, "14:00", "", today)
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	now := time.Date(2025, 6, 9, 9, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))
	if !appt.Date.Equal(nextReminderDate(now)) {
		t.Fatalf("stored date %s does not match reminder lookup %s", appt.Date, nextReminderDate(now))
	}
}
