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

// CreateArtistInput defines the expected JSON structure for adding an artist
type CreateArtistInput struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required"`
	Bio        string  `json:"bio"`
	Specialty  string  `json:"specialty"`
	ImageURL   string  `json:"imageUrl"`
	Experience int     `json:"experience"`
	Location   string  `json:"location"`
	HourlyRate float64 `json:"hourlyRate"`
}

type UpdateArtistInput struct {
	Name       *string  `json:"name"`
	Bio        *string  `json:"bio"`
	Specialty  *string  `json:"specialty"`
	ImageURL   *string  `json:"imageUrl"`
	Experience *int     `json:"experience"`
	Rating     *float64 `json:"rating"`
	Location   *string  `json:"location"`
	HourlyRate *float64 `json:"hourlyRate"`
}

type ToggleArtistActiveInput struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// GetArtists lists active artists for the public directory, best rated first
func GetArtists(c *gin.Context) {
	var artists []models.TattooArtist
	if err := config.DB.Where("is_active = ?", true).
		Order("rating DESC").
		Find(&artists).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve artists")
		return
	}

	c.JSON(http.StatusOK, gin.H{"artists": artists})
}

// GetArtist retrieves a single artist by ID
func GetArtist(c *gin.Context) {
	artistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid artist ID format")
		return
	}

	var artist models.TattooArtist
	if err := config.DB.First(&artist, "id = ?", artistUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Artist not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"artist": artist})
}

// GetAllArtists lists every artist, inactive ones included, for the admin screens
func GetAllArtists(c *gin.Context) {
	var artists []models.TattooArtist
	if err := config.DB.Order("rating DESC").Find(&artists).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve artists")
		return
	}

	c.JSON(http.StatusOK, gin.H{"artists": artists})
}

// CreateArtist adds an artist and provisions a matching user account with a
// default password, as the studio hands credentials to new artists in person
func CreateArtist(c *gin.Context) {
	var input CreateArtistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateEmail(input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	var existingUser models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "This email is already in use")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var existingArtist models.TattooArtist
	if err := config.DB.Where("name = ?", input.Name).First(&existingArtist).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "An artist with this name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	const defaultPassword = "artist123"

	user := models.User{
		Email:    input.Email,
		Name:     input.Name,
		Password: defaultPassword, // hashed in BeforeCreate hook
		Role:     models.RoleArtist,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		respondCreateError(c, err, "This email is already in use", "Failed to create artist account")
		return
	}

	artist := models.TattooArtist{
		Name:       input.Name,
		Bio:        input.Bio,
		Specialty:  input.Specialty,
		ImageURL:   input.ImageURL,
		Experience: input.Experience,
		Location:   input.Location,
		HourlyRate: input.HourlyRate,
		IsActive:   true,
	}
	if err := config.DB.Create(&artist).Error; err != nil {
		respondCreateError(c, err, "An artist with this name already exists", "Failed to create artist")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"artist":  artist,
		"message": "Artist added successfully. Login: " + input.Email + " / " + defaultPassword,
	})
}

// UpdateArtist updates an artist's directory entry
func UpdateArtist(c *gin.Context) {
	artistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid artist ID format")
		return
	}

	var input UpdateArtistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var artist models.TattooArtist
	if err := config.DB.First(&artist, "id = ?", artistUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Artist not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		artist.Name = *input.Name
	}
	if input.Bio != nil {
		artist.Bio = *input.Bio
	}
	if input.Specialty != nil {
		artist.Specialty = *input.Specialty
	}
	if input.ImageURL != nil {
		artist.ImageURL = *input.ImageURL
	}
	if input.Experience != nil {
		artist.Experience = *input.Experience
	}
	if input.Rating != nil {
		artist.Rating = *input.Rating
	}
	if input.Location != nil {
		artist.Location = *input.Location
	}
	if input.HourlyRate != nil {
		artist.HourlyRate = *input.HourlyRate
	}

	if err := config.DB.Save(&artist).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update artist")
		return
	}

	c.JSON(http.StatusOK, gin.H{"artist": artist})
}

// ToggleArtistActive flips the active flag; retired artists are deactivated,
// not deleted
func ToggleArtistActive(c *gin.Context) {
	artistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid artist ID format")
		return
	}

	var input ToggleArtistActiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	result := config.DB.Model(&models.TattooArtist{}).
		Where("id = ?", artistUUID).
		Update("is_active", *input.IsActive)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update artist")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Artist not found")
		return
	}

	var artist models.TattooArtist
	if err := config.DB.First(&artist, "id = ?", artistUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"artist": artist})
}

// DeleteArtist hard-deletes an artist record
func DeleteArtist(c *gin.Context) {
	artistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid artist ID format")
		return
	}

	result := config.DB.Delete(&models.TattooArtist{}, "id = ?", artistUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete artist")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Artist not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artist deleted successfully"})
}

// GetArtistUser resolves the user account behind an artist so customers can
// message them
func GetArtistUser(c *gin.Context) {
	artistID := c.Query("artistId")
	artistName := c.Query("artistName")

	if artistID == "" && artistName == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Artist ID or name is required")
		return
	}

	var artist models.TattooArtist
	var err error
	if artistID != "" {
		artistUUID, parseErr := uuid.Parse(artistID)
		if parseErr != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid artist ID format")
			return
		}
		err = config.DB.First(&artist, "id = ?", artistUUID).Error
	} else {
		err = config.DB.First(&artist, "name = ?", artistName).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Artist not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var user models.User
	if err := config.DB.Where("name = ? AND role = ?", artist.Name, models.RoleArtist).
		First(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Artist user account not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}
