package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tattooapp-backend/config"
	"tattooapp-backend/models"
	"tattooapp-backend/utils"
)

type UpdateUserInput struct {
	Action string `json:"action" binding:"required"`
	Role   string `json:"role"`
}

// GetUsers lists all users for the admin screen
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Preload("Profile").
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// UpdateUser applies an admin action to a user account
func UpdateUser(c *gin.Context) {
	userUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	switch input.Action {
	case "change_role":
		if input.Role != models.RoleUser && input.Role != models.RoleArtist && input.Role != models.RoleAdmin {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid role")
			return
		}
		result := config.DB.Model(&models.User{}).
			Where("id = ?", userUUID).
			Update("role", input.Role)
		if result.Error != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
			return
		}
		if result.RowsAffected == 0 {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
			return
		}
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid action")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteUser removes a user account; admins cannot delete themselves
func DeleteUser(c *gin.Context) {
	actorID, _, ok := actorFromContext(c)
	if !ok {
		return
	}

	userUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	if userUUID == actorID {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot delete yourself")
		return
	}

	result := config.DB.Delete(&models.User{}, "id = ?", userUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
