package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tattooapp-backend/models"
)

// ArtistFinder resolves artist ids for the booking validator.
type ArtistFinder interface {
	// FindArtist returns nil when no artist has the given id.
	FindArtist(id uuid.UUID) (*models.TattooArtist, error)
}

// AppointmentStore is the persistence surface the booking validator and the
// lifecycle manager run against.
type AppointmentStore interface {
	// SlotTaken reports whether a non-cancelled appointment exists for the triple.
	SlotTaken(artistID uuid.UUID, date time.Time, slot string) (bool, error)
	// Create inserts an appointment; it returns gorm.ErrDuplicatedKey when the
	// slot-exclusivity index rejects the row.
	Create(appt *models.Appointment) error
	// FindByID returns nil when the appointment does not exist.
	FindByID(id uuid.UUID) (*models.Appointment, error)
	Save(appt *models.Appointment) error
}

// GormStore backs both interfaces with the application database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindArtist(id uuid.UUID) (*models.TattooArtist, error) {
	var artist models.TattooArtist
	if err := s.db.First(&artist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &artist, nil
}

func (s *GormStore) SlotTaken(artistID uuid.UUID, date time.Time, slot string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Appointment{}).
		Where("artist_id = ? AND date = ? AND time = ? AND status <> ?",
			artistID, date, slot, models.StatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) Create(appt *models.Appointment) error {
	return s.db.Create(appt).Error
}

func (s *GormStore) FindByID(id uuid.UUID) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.db.First(&appt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appt, nil
}

func (s *GormStore) Save(appt *models.Appointment) error {
	return s.db.Save(appt).Error
}
