package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is one booked slot: (artist, date, time). Slot exclusivity over
// non-cancelled rows is enforced by a partial unique index, see config.MigrateDB.
type Appointment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	ArtistID uuid.UUID `gorm:"type:uuid;index;not null" json:"artistId"`

	Date        time.Time         `gorm:"not null" json:"date"`                    // midnight-normalized
	Time        string            `gorm:"type:varchar(5);not null" json:"time"`    // slot label, e.g. "14:30"
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Description string            `gorm:"type:text" json:"description"`
	Notes       string            `gorm:"type:text" json:"notes"`

	User   User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Artist TattooArtist `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
