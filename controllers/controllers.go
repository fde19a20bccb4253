package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tattooapp-backend/models"
	"tattooapp-backend/services"
	"tattooapp-backend/utils"
)

var (
	bookingValidator *services.BookingValidator
	lifecycleManager *services.LifecycleManager
	siteSettings     *services.SettingsStore
)

// Init wires the handlers to the service layer. Called once from main.
func Init(db *gorm.DB, settings *services.SettingsStore) {
	store := services.NewGormStore(db)
	bookingValidator = services.NewBookingValidator(store, store)
	lifecycleManager = services.NewLifecycleManager(store)
	siteSettings = settings
}

// actorFromContext reads the identity the auth middleware stored.
func actorFromContext(c *gin.Context) (uuid.UUID, string, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, "", false
	}
	actorID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, "", false
	}
	role, _ := c.Get("role")
	actorRole, _ := role.(string)
	return actorID, actorRole, true
}

// respondServiceError maps a service error to its HTTP status with a stable kind.
func respondServiceError(c *gin.Context, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.HTTPStatus(), gin.H{"kind": string(svcErr.Kind), "error": svcErr.Message})
		return
	}
	utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
}

// respondCreateError reports a duplicate-key insert as a conflict, so a
// racing request that slips past the pre-check still gets a 409, and anything
// else as a generic failure.
func respondCreateError(c *gin.Context, err error, conflictMsg, failMsg string) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		utils.RespondWithError(c, http.StatusConflict, conflictMsg)
		return
	}
	utils.RespondWithError(c, http.StatusInternalServerError, failMsg)
}

// MaintenanceGate rejects non-admin writes while maintenance mode is on.
func MaintenanceGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}
		if role, _ := c.Get("role"); role == models.RoleAdmin {
			c.Next()
			return
		}
		if siteSettings.Get().MaintenanceMode {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Site is under maintenance"})
			return
		}
		c.Next()
	}
}
