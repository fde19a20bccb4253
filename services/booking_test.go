package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tattooapp-backend/models"
)

var today = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestBook_FirstBookingSucceeds(t *testing.T) {
	artist := activeArtist()
	store := newFakeAppointments()
	v := NewBookingValidator(newFakeArtists(artist), store)

	customer := uuid.New()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	appt, err := v.Book(customer, artist.ID, date, "14:00", "sleeve piece", today)
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}
	if appt.Status != models.StatusPending {
		t.Fatalf("expected pending status, got %s", appt.Status)
	}
	if appt.UserID != customer {
		t.Fatalf("expected owner %s, got %s", customer, appt.UserID)
	}
	if !appt.Date.Equal(date) {
		t.Fatalf("expected date %s, got %s", date, appt.Date)
	}
}

func TestBook_NormalizesDateToMidnight(t *testing.T) {
	artist := activeArtist()
	v := NewBookingValidator(newFakeArtists(artist), newFakeAppointments())

	date := time.Date(2025, 6, 10, 16, 30, 12, 0, time.UTC)
	appt, err := v.Book(uuid.New(), artist.ID, date, "14:00", "", today)
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}
	want := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	if !appt.Date.Equal(want) {
		t.Fatalf("expected midnight date %s, got %s", want, appt.Date)
	}
}

func TestBook_DuplicateSlotRejected(t *testing.T) {
	artist := activeArtist()
	store := newFakeAppointments()
	v := NewBookingValidator(newFakeArtists(artist), store)

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	if _, err := v.Book(uuid.New(), artist.ID, date, "14:00", "", today); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	_, err := v.Book(uuid.New(), artist.ID, date, "14:00", "", today)
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	// A different time on the same day is still free
	if _, err := v.Book(uuid.New(), artist.ID, date, "16:00", "", today); err != nil {
		t.Fatalf("different slot should be bookable: %v", err)
	}
}

func TestBook_CancelledAppointmentFreesSlot(t *testing.T) {
	artist := activeArtist()
	store := newFakeAppointments()
	v := NewBookingValidator(newFakeArtists(artist), store)

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	first, err := v.Book(uuid.New(), artist.ID, date, "14:00", "", today)
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	first.Status = models.StatusCancelled
	if err := store.Save(first); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := v.Book(uuid.New(), artist.ID, date, "14:00", "", today); err != nil {
		t.Fatalf("slot should be free after cancellation: %v", err)
	}
}

func TestValidate_PastDateRejected(t *testing.T) {
	artist := activeArtist()
	v := NewBookingValidator(newFakeArtists(artist), newFakeAppointments())

	yesterday := today.AddDate(0, 0, -1)
	err := v.Validate(artist.ID, yesterday, "14:00", today)
	if !errors.Is(err, ErrPastDate) {
		t.Fatalf("expected ErrPastDate, got %v", err)
	}
}

func TestValidate_SameDayAllowed(t *testing.T) {
	artist := activeArtist()
	v := NewBookingValidator(newFakeArtists(artist), newFakeAppointments())

	// "today" carries a time of day; normalization must not push the
	// comparison into the past.
	now := time.Date(2025, 6, 1, 17, 45, 0, 0, time.UTC)
	if err := v.Validate(artist.ID, today, "18:00", now); err != nil {
		t.Fatalf("same-day booking should be allowed: %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	artist := activeArtist()
	v := NewBookingValidator(newFakeArtists(artist), newFakeAppointments())

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		artistID uuid.UUID
		date     time.Time
		slot     string
	}{
		{"no artist", uuid.Nil, date, "14:00"},
		{"no date", artist.ID, time.Time{}, "14:00"},
		{"no time", artist.ID, date, ""},
	}
	for _, tc := range cases {
		if err := v.Validate(tc.artistID, tc.date, tc.slot, today); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("%s: expected ErrMissingFields, got %v", tc.name, err)
		}
	}
}

func TestValidate_UnknownArtist(t *testing.T) {
	v := NewBookingValidator(newFakeArtists(), newFakeAppointments())

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	err := v.Validate(uuid.New(), date, "14:00", today)
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}
}

func TestValidate_InactiveArtistNotBookable(t *testing.T) {
	artist := activeArtist()
	artist.IsActive = false
	v := NewBookingValidator(newFakeArtists(artist), newFakeAppointments())

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	err := v.Validate(artist.ID, date, "14:00", today)
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound for inactive artist, got %v", err)
	}
}

func TestBook_DuplicateKeyAtInsertReportedAsSlotTaken(t *testing.T) {
	// A concurrent insert can slip between the conflict check and our own
	// insert; the unique index violation must still come back as SlotTaken.
	artist := activeArtist()
	store := newFakeAppointments()
	store.createErr = gorm.ErrDuplicatedKey
	v := NewBookingValidator(newFakeArtists(artist), store)

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	_, err := v.Book(uuid.New(), artist.ID, date, "14:00", "", today)
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
}
