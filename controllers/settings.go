package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tattooapp-backend/utils"
)

// GetSettings returns the typed site settings for the admin screen
func GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": siteSettings.Get()})
}

// UpdateSettings upserts each submitted key and invalidates the cache so the
// new values take effect immediately
func UpdateSettings(c *gin.Context) {
	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	values := make(map[string]string, len(input))
	for key, value := range input {
		values[key] = settingValue(value)
	}

	if err := siteSettings.Save(values); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Settings saved successfully",
	})
}

// settingValue flattens a decoded JSON value into the stored string form.
// Arrays (e.g. working days) persist comma-separated so the settings parser
// can split them back out.
func settingValue(value interface{}) string {
	if items, ok := value.([]interface{}); ok {
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(value)
}
