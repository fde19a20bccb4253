// services/reminder.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"tattooapp-backend/models"
	"tattooapp-backend/utils"
)

// ReminderService notifies customers about their confirmed appointments one
// day ahead, via Twilio SMS or WhatsApp.
type ReminderService struct {
	db       *gorm.DB
	settings *SettingsStore
	client   *twilio.RestClient
}

func NewReminderService(db *gorm.DB, settings *SettingsStore) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &ReminderService{db: db, settings: settings, client: client}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders delivers a reminder for every confirmed appointment that
// takes place tomorrow.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	if !s.settings.Get().EmailNotifications {
		log.Println("Notifications disabled in site settings, skipping")
		return
	}
	if s.client == nil {
		log.Println("Twilio credentials not configured, skipping")
		return
	}

	tomorrow := nextReminderDate(time.Now())

	var appointments []models.Appointment
	if err := s.db.Preload("User.Profile").Preload("Artist").
		Where("date = ? AND status = ?", tomorrow, models.StatusConfirmed).
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's appointments: %v", err)
		return
	}

	for _, appt := range appointments {
		s.sendReminder(appt)
	}

	log.Printf("Daily reminder processing completed, %d appointments", len(appointments))
}

// nextReminderDate returns tomorrow as a UTC midnight. Appointment dates are
// stored as UTC midnights, so the lookup must be anchored to UTC regardless
// of the host zone the cron fires in.
func nextReminderDate(now time.Time) time.Time {
	return utils.BeginningOfDay(now.UTC().AddDate(0, 0, 1))
}

func (s *ReminderService) sendReminder(appt models.Appointment) {
	if appt.User.Profile == nil || appt.User.Profile.Phone == "" {
		log.Printf("Appointment %s: customer has no phone on file", appt.ID)
		return
	}

	phone := appt.User.Profile.Phone
	message := fmt.Sprintf("Hi %s, a reminder of your appointment with %s tomorrow at %s.",
		appt.User.Name, appt.Artist.Name, appt.Time)

	// WhatsApp when the phone is in E.164 format, SMS otherwise
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(message)
	if strings.HasPrefix(phone, "+") {
		params.SetTo("whatsapp:" + phone)
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetTo(phone)
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send reminder for appointment %s: %v", appt.ID, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Reminder sent for appointment %s, SID: %s", appt.ID, *resp.Sid)
	} else {
		log.Printf("Reminder sent for appointment %s, but no SID returned", appt.ID)
	}
}
