package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"tattooapp-backend/config"
	"tattooapp-backend/models"
	"tattooapp-backend/utils"
)

type UpdateProfileInput struct {
	Name      string `json:"name" binding:"required"`
	Bio       string `json:"bio"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatarUrl"`
}

func GetProfile(c *gin.Context) {
	actorID, _, ok := actorFromContext(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.Preload("Profile").First(&user, "id = ?", actorID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func UpdateProfile(c *gin.Context) {
	actorID, _, ok := actorFromContext(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	if err := config.DB.Model(&models.User{}).
		Where("id = ?", actorID).
		Update("name", input.Name).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	profile := models.Profile{
		UserID:    actorID,
		Bio:       input.Bio,
		Phone:     input.Phone,
		AvatarURL: input.AvatarURL,
	}
	if err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"bio", "phone", "avatar_url", "updated_at"}),
	}).Create(&profile).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
