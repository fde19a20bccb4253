package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tattooapp-backend/config"
	"tattooapp-backend/models"
	"tattooapp-backend/utils"
)

type SendMessageInput struct {
	ToID    string `json:"toId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// SendMessage creates a message from the authenticated user to another user
func SendMessage(c *gin.Context) {
	actorID, _, ok := actorFromContext(c)
	if !ok {
		return
	}

	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Recipient and message content are required")
		return
	}

	toUUID, err := uuid.Parse(input.ToID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid recipient ID format")
		return
	}

	var receiver models.User
	if err := config.DB.First(&receiver, "id = ?", toUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Recipient not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	message := models.Message{
		FromID:  actorID,
		ToID:    toUUID,
		Content: input.Content,
	}
	if err := config.DB.Create(&message).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	if err := config.DB.Preload("FromUser").Preload("ToUser").
		First(&message, "id = ?", message.ID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"data":    message,
	})
}

// GetMessages returns either the thread with ?userId=... (marking incoming
// messages read) or the conversation overview with the latest message per
// counterpart
func GetMessages(c *gin.Context) {
	actorID, _, ok := actorFromContext(c)
	if !ok {
		return
	}

	otherID := c.Query("userId")
	if otherID != "" {
		getThread(c, actorID, otherID)
		return
	}

	var messages []models.Message
	if err := config.DB.Preload("FromUser").Preload("ToUser").
		Where("from_id = ? OR to_id = ?", actorID, actorID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}

	// Keep only the newest message per counterpart
	latest := make(map[uuid.UUID]bool)
	conversations := make([]models.Message, 0)
	for _, message := range messages {
		otherUserID := message.ToID
		if message.ToID == actorID {
			otherUserID = message.FromID
		}
		if latest[otherUserID] {
			continue
		}
		latest[otherUserID] = true
		conversations = append(conversations, message)
	}

	c.JSON(http.StatusOK, gin.H{"messages": conversations})
}

func getThread(c *gin.Context, actorID uuid.UUID, other string) {
	otherUUID, err := uuid.Parse(other)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var messages []models.Message
	if err := config.DB.Preload("FromUser").Preload("ToUser").
		Where("(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)",
			actorID, otherUUID, otherUUID, actorID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}

	// Mark the other party's messages as read
	if err := config.DB.Model(&models.Message{}).
		Where("from_id = ? AND to_id = ? AND is_read = ?", otherUUID, actorID, false).
		Update("is_read", true).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to mark messages read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// GetAllMessages lists every message for the admin screen, newest first
func GetAllMessages(c *gin.Context) {
	var messages []models.Message
	if err := config.DB.Preload("FromUser").Preload("ToUser").
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
