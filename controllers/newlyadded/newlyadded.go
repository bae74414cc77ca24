package newlyAddedController

import (
	"caprep/database"
	"caprep/middleware"
	"caprep/newlyadded"
	"caprep/trash"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func registry() *newlyadded.Registry {
	return newlyadded.NewRegistry(database.Database.Db)
}

// ListNewlyAdded returns newly-added markers with display names
func ListNewlyAdded(c *fiber.Ctx) error {
	entries, err := registry().List()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch newly added items!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Newly added items fetched successfully!", entries)
}

// AddNewlyAdded marks an entity as newly added
func AddNewlyAdded(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNewlyAdded").(*struct {
		TableName string `json:"table_name"`
		EntityID  uint   `json:"entity_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, err := trash.ParseKind(reqData.TableName); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown entity kind!", nil)
	}

	item, err := registry().Add(reqData.TableName, reqData.EntityID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add item to newly added!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Item added to newly added!", item)
}

// RemoveNewlyAdded drops a newly-added marker
func RemoveNewlyAdded(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid newly added ID!", nil)
	}

	if err := registry().Remove(uint(id)); err != nil {
		if errors.Is(err, newlyadded.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Newly added item not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove item from newly added!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item removed from newly added!", nil)
}
