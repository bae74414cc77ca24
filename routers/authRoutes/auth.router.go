package authRoutes

import (
	authControllers "caprep/controllers/auth"
	authValidators "caprep/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up admin authentication routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
}
