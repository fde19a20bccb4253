package services

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tattooapp-backend/models"
)

// SiteSettings is the typed view over the key-value settings rows. Parsing
// happens once at the store boundary; the rest of the application never sees
// the stringly-typed representation.
type SiteSettings struct {
	SiteName             string   `json:"siteName"`
	SiteDescription      string   `json:"siteDescription"`
	ContactEmail         string   `json:"contactEmail"`
	MaxDailyAppointments int      `json:"maxDailyAppointments"`
	WorkingHoursStart    string   `json:"workingHoursStart"`
	WorkingHoursEnd      string   `json:"workingHoursEnd"`
	ClosedDays           []string `json:"closedDays"`
	MaintenanceMode      bool     `json:"maintenanceMode"`
	AllowRegistration    bool     `json:"allowRegistration"`
	EmailNotifications   bool     `json:"emailNotifications"`
}

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:             "TattooApp",
		SiteDescription:      "The easiest way to meet tattoo artists",
		ContactEmail:         "info@tattooapp.com",
		MaxDailyAppointments: 10,
		WorkingHoursStart:    "09:00",
		WorkingHoursEnd:      "18:00",
		ClosedDays:           []string{"Sunday"},
		MaintenanceMode:      false,
		AllowRegistration:    true,
		EmailNotifications:   true,
	}
}

func parseSettings(rows []models.Setting) SiteSettings {
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}

	s := DefaultSiteSettings()
	if v, ok := values["siteName"]; ok && v != "" {
		s.SiteName = v
	}
	if v, ok := values["siteDescription"]; ok && v != "" {
		s.SiteDescription = v
	}
	if v, ok := values["contactEmail"]; ok && v != "" {
		s.ContactEmail = v
	}
	if v, ok := values["maxDailyAppointments"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.MaxDailyAppointments = n
		}
	}
	if v, ok := values["workingHoursStart"]; ok && v != "" {
		s.WorkingHoursStart = v
	}
	if v, ok := values["workingHoursEnd"]; ok && v != "" {
		s.WorkingHoursEnd = v
	}
	if v, ok := values["closedDays"]; ok && v != "" {
		s.ClosedDays = strings.Split(v, ",")
	}
	if v, ok := values["maintenanceMode"]; ok {
		s.MaintenanceMode = v == "true"
	}
	if v, ok := values["allowRegistration"]; ok {
		s.AllowRegistration = v != "false"
	}
	if v, ok := values["emailNotifications"]; ok {
		s.EmailNotifications = v != "false"
	}
	return s
}

const settingsCacheTTL = 5 * time.Minute

// SettingsStore serves the typed settings with a mutex-guarded cache cell.
// The cache is refreshed after the TTL elapses and invalidated on save.
type SettingsStore struct {
	mu        sync.Mutex
	cached    *SiteSettings
	fetchedAt time.Time

	ttl  time.Duration
	now  func() time.Time
	load func() ([]models.Setting, error)
	save func(key, value string) error
}

func NewSettingsStore(db *gorm.DB) *SettingsStore {
	return &SettingsStore{
		ttl: settingsCacheTTL,
		now: time.Now,
		load: func() ([]models.Setting, error) {
			var rows []models.Setting
			err := db.Find(&rows).Error
			return rows, err
		},
		save: func(key, value string) error {
			return db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&models.Setting{Key: key, Value: value}).Error
		},
	}
}

// Get returns the cached settings, refreshing them when stale. A failed
// refresh falls back to the defaults rather than failing the request.
func (s *SettingsStore) Get() SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Sub(s.fetchedAt) < s.ttl {
		return *s.cached
	}

	rows, err := s.load()
	if err != nil {
		if s.cached != nil {
			return *s.cached
		}
		return DefaultSiteSettings()
	}

	settings := parseSettings(rows)
	s.cached = &settings
	s.fetchedAt = s.now()
	return settings
}

// Save upserts each key and invalidates the cache so the next read is fresh.
func (s *SettingsStore) Save(values map[string]string) error {
	for key, value := range values {
		if err := s.save(key, value); err != nil {
			return err
		}
	}
	s.Invalidate()
	return nil
}

func (s *SettingsStore) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.fetchedAt = time.Time{}
	s.mu.Unlock()
}
