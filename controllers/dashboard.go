package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tattooapp-backend/config"
	"tattooapp-backend/models"
)

type DashboardOverview struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalArtists      int64 `json:"totalArtists"`
	TotalAppointments int64 `json:"totalAppointments"`
	TotalMessages     int64 `json:"totalMessages"`

	PendingAppointments   int64 `json:"pendingAppointments"`
	ConfirmedAppointments int64 `json:"confirmedAppointments"`
	CompletedAppointments int64 `json:"completedAppointments"`
	CancelledAppointments int64 `json:"cancelledAppointments"`

	UnreadMessages int64 `json:"unreadMessages"`

	NewUsers30d        int64 `json:"newUsers30d"`
	NewAppointments30d int64 `json:"newAppointments30d"`
	NewMessages30d     int64 `json:"newMessages30d"`

	TopArtists []models.TattooArtist `json:"topArtists"`
}

// GetDashboardOverview aggregates the counters shown on the admin dashboard
func GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	config.DB.Model(&models.User{}).Count(&overview.TotalUsers)
	config.DB.Model(&models.TattooArtist{}).Count(&overview.TotalArtists)
	config.DB.Model(&models.Appointment{}).Count(&overview.TotalAppointments)
	config.DB.Model(&models.Message{}).Count(&overview.TotalMessages)

	config.DB.Model(&models.Appointment{}).
		Where("status = ?", models.StatusPending).Count(&overview.PendingAppointments)
	config.DB.Model(&models.Appointment{}).
		Where("status = ?", models.StatusConfirmed).Count(&overview.ConfirmedAppointments)
	config.DB.Model(&models.Appointment{}).
		Where("status = ?", models.StatusCompleted).Count(&overview.CompletedAppointments)
	config.DB.Model(&models.Appointment{}).
		Where("status = ?", models.StatusCancelled).Count(&overview.CancelledAppointments)

	config.DB.Model(&models.Message{}).
		Where("is_read = ?", false).Count(&overview.UnreadMessages)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	config.DB.Model(&models.User{}).
		Where("created_at >= ?", thirtyDaysAgo).Count(&overview.NewUsers30d)
	config.DB.Model(&models.Appointment{}).
		Where("created_at >= ?", thirtyDaysAgo).Count(&overview.NewAppointments30d)
	config.DB.Model(&models.Message{}).
		Where("created_at >= ?", thirtyDaysAgo).Count(&overview.NewMessages30d)

	config.DB.Where("is_active = ?", true).
		Order("rating DESC").
		Limit(5).
		Find(&overview.TopArtists)

	c.JSON(http.StatusOK, overview)
}
