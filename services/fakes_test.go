package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tattooapp-backend/models"
)

type fakeArtists struct {
	artists map[uuid.UUID]*models.TattooArtist
}

func newFakeArtists(artists ...*models.TattooArtist) *fakeArtists {
	f := &fakeArtists{artists: make(map[uuid.UUID]*models.TattooArtist)}
	for _, a := range artists {
		f.artists[a.ID] = a
	}
	return f
}

func (f *fakeArtists) FindArtist(id uuid.UUID) (*models.TattooArtist, error) {
	return f.artists[id], nil
}

// fakeAppointments mimics the appointments table including the partial unique
// index over non-cancelled (artist, date, time) rows.
type fakeAppointments struct {
	appts     map[uuid.UUID]*models.Appointment
	createErr error
}

func newFakeAppointments() *fakeAppointments {
	return &fakeAppointments{appts: make(map[uuid.UUID]*models.Appointment)}
}

func (f *fakeAppointments) SlotTaken(artistID uuid.UUID, date time.Time, slot string) (bool, error) {
	for _, a := range f.appts {
		if a.ArtistID == artistID && a.Date.Equal(date) && a.Time == slot && a.Status != models.StatusCancelled {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppointments) Create(appt *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	taken, _ := f.SlotTaken(appt.ArtistID, appt.Date, appt.Time)
	if taken {
		return gorm.ErrDuplicatedKey
	}
	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}
	f.appts[appt.ID] = appt
	return nil
}

func (f *fakeAppointments) FindByID(id uuid.UUID) (*models.Appointment, error) {
	return f.appts[id], nil
}

func (f *fakeAppointments) Save(appt *models.Appointment) error {
	f.appts[appt.ID] = appt
	return nil
}

func activeArtist() *models.TattooArtist {
	return &models.TattooArtist{
		ID:       uuid.New(),
		Name:     "Mila Kane",
		IsActive: true,
	}
}
