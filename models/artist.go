package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TattooArtist struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"uniqueIndex;not null" json:"name"`
	Bio        string    `gorm:"type:text" json:"bio"`
	Specialty  string    `json:"specialty"`
	ImageURL   string    `json:"imageUrl"`
	Experience int       `gorm:"default:0" json:"experience"` // years
	Rating     float64   `gorm:"type:decimal(3,1);default:0.0" json:"rating"`
	IsActive   bool      `gorm:"default:true" json:"isActive"`
	Location   string    `json:"location"`
	HourlyRate float64   `gorm:"type:decimal(10,2);default:0.0" json:"hourlyRate"`

	Appointments []Appointment `gorm:"foreignKey:ArtistID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *TattooArtist) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
