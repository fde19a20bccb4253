package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Message struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FromID  uuid.UUID `gorm:"type:uuid;index;not null" json:"fromId"`
	ToID    uuid.UUID `gorm:"type:uuid;index;not null" json:"toId"`
	Content string    `gorm:"type:text;not null" json:"content"`
	IsRead  bool      `gorm:"default:false" json:"isRead"`

	FromUser User `gorm:"foreignKey:FromID" json:"fromUser,omitempty"`
	ToUser   User `gorm:"foreignKey:ToID" json:"toUser,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
