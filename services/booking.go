package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tattooapp-backend/models"
	"tattooapp-backend/utils"
)

// BookingValidator decides whether a requested (artist, date, time) slot may
// be booked, and creates the pending appointment when it may.
type BookingValidator struct {
	artists      ArtistFinder
	appointments AppointmentStore
}

func NewBookingValidator(artists ArtistFinder, appointments AppointmentStore) *BookingValidator {
	return &BookingValidator{artists: artists, appointments: appointments}
}

// Validate applies the booking rules in order: required fields, artist exists
// and is active, no past dates (same-day allowed), slot not taken.
func (v *BookingValidator) Validate(artistID uuid.UUID, date time.Time, slot string, today time.Time) error {
	if artistID == uuid.Nil || date.IsZero() || slot == "" {
		return ErrMissingFields
	}

	artist, err := v.artists.FindArtist(artistID)
	if err != nil {
		log.Printf("Failed to look up artist %s: %v", artistID, err)
		return ErrInternal
	}
	// A deactivated artist is hidden from the directory and not bookable by a
	// direct id either.
	if artist == nil || !artist.IsActive {
		return ErrArtistNotFound
	}

	if utils.BeginningOfDay(date).Before(utils.BeginningOfDay(today)) {
		return ErrPastDate
	}

	taken, err := v.appointments.SlotTaken(artistID, utils.BeginningOfDay(date), slot)
	if err != nil {
		log.Printf("Failed to check slot for artist %s: %v", artistID, err)
		return ErrInternal
	}
	if taken {
		return ErrSlotTaken
	}

	return nil
}

// Book validates the request and persists a new pending appointment. The
// read-side conflict check can race a concurrent insert; the partial unique
// index is authoritative, and its violation is reported as a taken slot.
func (v *BookingValidator) Book(customerID, artistID uuid.UUID, date time.Time, slot, description string, today time.Time) (*models.Appointment, error) {
	if err := v.Validate(artistID, date, slot, today); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		UserID:      customerID,
		ArtistID:    artistID,
		Date:        utils.BeginningOfDay(date),
		Time:        slot,
		Status:      models.StatusPending,
		Description: description,
	}

	if err := v.appointments.Create(appt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotTaken
		}
		log.Printf("Failed to create appointment for artist %s: %v", artistID, err)
		return nil, ErrInternal
	}

	return appt, nil
}
