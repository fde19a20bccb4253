package config

import (
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"tattooapp-backend/models"
)

// EnsureAdminUser creates the initial admin account if no admin exists yet.
func EnsureAdminUser() {
	var admin models.User
	err := DB.Where("role = ?", models.RoleAdmin).First(&admin).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check for admin user: %v", err)
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@tattooapp.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin = models.User{
		Email:    email,
		Name:     "Admin",
		Password: password, // hashed in BeforeCreate hook
		Role:     models.RoleAdmin,
		Profile:  &models.Profile{},
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user %s", email)
}
