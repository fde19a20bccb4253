package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tattooapp-backend/config"
	"tattooapp-backend/controllers"
	"tattooapp-backend/routes"
	"tattooapp-backend/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	if err := config.MigrateDB(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	config.InitRedis()
	config.EnsureAdminUser()
}

func main() {
	settings := services.NewSettingsStore(config.DB)
	controllers.Init(config.DB, settings)

	reminders := services.NewReminderService(config.DB, settings)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
