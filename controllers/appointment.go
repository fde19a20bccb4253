package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tattooapp-backend/config"
	"tattooapp-backend/models"
	"tattooapp-backend/services"
	"tattooapp-backend/utils"
)

// CreateAppointmentInput defines the expected JSON structure for booking a slot
type CreateAppointmentInput struct {
	ArtistID    string `json:"artistId"`
	Date        string `json:"date"` // "2006-01-02"
	Time        string `json:"time"` // slot label, e.g. "14:30"
	Description string `json:"description"`
}

type UpdateAppointmentInput struct {
	Action string `json:"action" binding:"required"`
	Notes  string `json:"notes"`
}

// CreateAppointment books a slot for the authenticated customer
func CreateAppointment(c *gin.Context) {
	actorID, _, ok := actorFromContext(c)
	if !ok {
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ArtistID == "" || input.Date == "" || input.Time == "" {
		respondServiceError(c, services.ErrMissingFields)
		return
	}

	artistUUID, err := uuid.Parse(input.ArtistID)
	if err != nil {
		respondServiceError(c, services.ErrArtistNotFound)
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	appt, err := bookingValidator.Book(actorID, artistUUID, date, input.Time, input.Description, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := config.DB.Preload("User").Preload("Artist").First(appt, "id = ?", appt.ID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment created successfully",
		"appointment": appt,
	})
}

// GetAppointments lists the authenticated customer's appointments, newest date first
func GetAppointments(c *gin.Context) {
	actorID, _, ok := actorFromContext(c)
	if !ok {
		return
	}

	var appointments []models.Appointment
	if err := config.DB.Preload("Artist").
		Where("user_id = ?", actorID).
		Order("date DESC").
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// GetAppointment retrieves one appointment; visible to its owner and admins
func GetAppointment(c *gin.Context) {
	actorID, actorRole, ok := actorFromContext(c)
	if !ok {
		return
	}

	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appt models.Appointment
	if err := config.DB.Preload("User").Preload("Artist").
		First(&appt, "id = ?", apptUUID).Error; err != nil {
		respondServiceError(c, services.ErrAppointmentNotFound)
		return
	}

	if appt.UserID != actorID && actorRole != models.RoleAdmin {
		respondServiceError(c, services.ErrForbidden)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// UpdateAppointment is the lifecycle entry point: cancel, confirm, complete, add_note
func UpdateAppointment(c *gin.Context) {
	actorID, actorRole, ok := actorFromContext(c)
	if !ok {
		return
	}

	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appt, err := lifecycleManager.Apply(apptUUID, services.Action(input.Action), actorID, actorRole, input.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// GetAllAppointments lists every appointment for the admin dashboard
func GetAllAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := config.DB.Preload("User").Preload("Artist").
		Order("date DESC").
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}
