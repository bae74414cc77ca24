package controllers

import (
	"caprep/database"
	"caprep/middleware"
	"caprep/trash"
	"caprep/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func trashEngine() *trash.Engine {
	return trash.NewEngine(database.Database.Db, utils.UploadRemover{})
}

// idParam parses the :id route parameter
func idParam(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// trashErrorResponse maps engine errors to HTTP responses for delete handlers
func trashErrorResponse(c *fiber.Ctx, entity string, err error) error {
	switch {
	case errors.Is(err, trash.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, entity+" not found!", nil)
	case errors.Is(err, trash.ErrAlreadyTrashed):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, entity+" is already in trash!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to move "+entity+" to trash!", nil)
	}
}
