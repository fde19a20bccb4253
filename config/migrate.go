package config

import (
	"tattooapp-backend/models"
)

// MigrateDB runs AutoMigrate for all entities and adds the constraints
// AutoMigrate cannot express.
func MigrateDB() error {
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.TattooArtist{},
		&models.Appointment{},
		&models.Message{},
		&models.Setting{},
	); err != nil {
		return err
	}

	// At most one non-cancelled appointment per (artist, date, time). The
	// insert racing past the read-side conflict check lands here instead.
	return DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot
		ON appointments (artist_id, date, "time")
		WHERE status <> 'cancelled'
	`).Error
}
