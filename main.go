package main

import (
	"caprep/config"
	"caprep/database"
	authRoutes "caprep/routers/authRoutes"
	contentRoutes "caprep/routers/contentRoutes"
	trashRoutes "caprep/routers/trashRoutes"
	"caprep/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	utils.StartPublishScheduler()

	app := fiber.New(fiber.Config{
		// Leave headroom above the PDF upload limit
		BodyLimit: (config.AppConfig.MaxUploadSizeMB + 2) * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded note files
	app.Static("/uploads", "./uploads")

	authRoutes.SetupAuthRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	trashRoutes.SetupTrashRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
