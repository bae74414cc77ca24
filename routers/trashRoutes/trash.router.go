package trashRoutes

import (
	newlyAddedControllers "caprep/controllers/newlyadded"
	trashControllers "caprep/controllers/trash"
	"caprep/middleware"
	newlyAddedValidators "caprep/validators/newlyadded"

	"github.com/gofiber/fiber/v2"
)

// SetupTrashRoutes sets up trash and newly-added routes
func SetupTrashRoutes(app *fiber.App) {
	trashGroup := app.Group("/trash", middleware.JWTMiddleware)

	trashGroup.Get("/list", trashControllers.ListTrash)
	trashGroup.Post("/restore/:id", trashControllers.RestoreTrash)
	trashGroup.Delete("/purge", trashControllers.PurgeTrash)
	trashGroup.Delete("/:id", trashControllers.DeleteTrashItem)

	newlyAddedGroup := app.Group("/newly-added")
	newlyAddedGroup.Get("/list", newlyAddedControllers.ListNewlyAdded)
	newlyAddedGroup.Post("/add", middleware.JWTMiddleware, newlyAddedValidators.AddNewlyAdded(), newlyAddedControllers.AddNewlyAdded)
	newlyAddedGroup.Delete("/:id", middleware.JWTMiddleware, newlyAddedControllers.RemoveNewlyAdded)
}
