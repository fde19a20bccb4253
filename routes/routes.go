package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tattooapp-backend/config"
	"tattooapp-backend/controllers"
	"tattooapp-backend/models"
	"tattooapp-backend/utils"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	auth.Use(utils.RateLimit(config.RDB, 20, time.Minute))
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.GET("/me", utils.AuthMiddleware(), controllers.Me)
	}

	// Public directory
	r.GET("/api/artists", controllers.GetArtists)
	r.GET("/api/artists/:id", controllers.GetArtist)

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(), controllers.MaintenanceGate())
	{
		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PATCH("/:id", controllers.UpdateAppointment)
		}

		// Message routes
		messages := api.Group("/messages")
		{
			messages.POST("", controllers.SendMessage)
			messages.GET("", controllers.GetMessages)
		}

		api.GET("/artist-user", controllers.GetArtistUser)

		// Profile routes
		api.GET("/profile", controllers.GetProfile)
		api.PUT("/profile", controllers.UpdateProfile)

		// Admin routes
		admin := api.Group("/admin", utils.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", controllers.GetUsers)
			admin.PATCH("/users/:id", controllers.UpdateUser)
			admin.DELETE("/users/:id", controllers.DeleteUser)

			admin.GET("/artists", controllers.GetAllArtists)
			admin.POST("/artists", controllers.CreateArtist)
			admin.PATCH("/artists/:id", controllers.UpdateArtist)
			admin.PATCH("/artists/:id/active", controllers.ToggleArtistActive)
			admin.DELETE("/artists/:id", controllers.DeleteArtist)

			admin.GET("/appointments", controllers.GetAllAppointments)
			admin.GET("/messages", controllers.GetAllMessages)
			admin.GET("/dashboard", controllers.GetDashboardOverview)

			admin.GET("/settings", controllers.GetSettings)
			admin.PUT("/settings", controllers.UpdateSettings)
		}
	}

	return r
}
