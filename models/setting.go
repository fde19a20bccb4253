package models

import "time"

// Setting is one stringly-typed site configuration row. The typed view lives
// in services.SiteSettings; persistence stays key-value.
type Setting struct {
	Key   string `gorm:"primary_key" json:"key"`
	Value string `gorm:"type:text" json:"value"`

	UpdatedAt time.Time `json:"updatedAt"`
}
