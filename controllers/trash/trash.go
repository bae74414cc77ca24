package trashController

import (
	"caprep/database"
	"caprep/middleware"
	"caprep/trash"
	"caprep/utils"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func engine() *trash.Engine {
	return trash.NewEngine(database.Database.Db, utils.UploadRemover{})
}

func idParam(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// ListTrash returns trash entries newest-first with display names
func ListTrash(c *fiber.Ctx) error {
	entries, err := engine().List()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trash!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trash fetched successfully!", entries)
}

// RestoreTrash restores a trashed entity and its whole subtree
func RestoreTrash(c *fiber.Ctx) error {
	trashID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid trash ID!", nil)
	}

	if err := engine().Restore(trashID); err != nil {
		switch {
		case errors.Is(err, trash.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trash item not found or cannot be restored!", nil)
		case errors.Is(err, trash.ErrUnknownEntityKind):
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Trash item references an unknown entity kind!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to restore trash item!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Restored and removed from trash!", nil)
}

// DeleteTrashItem permanently deletes one trashed entity and its subtree
func DeleteTrashItem(c *fiber.Ctx) error {
	trashID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid trash ID!", nil)
	}

	if err := engine().PermanentlyDelete(trashID); err != nil {
		switch {
		case errors.Is(err, trash.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trash item not found!", nil)
		case errors.Is(err, trash.ErrUnknownEntityKind):
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Trash item references an unknown entity kind!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete trash item!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trash item deleted permanently!", nil)
}

// PurgeTrash permanently deletes every trash entry, skipping failures
func PurgeTrash(c *fiber.Ctx) error {
	purged, failed, err := engine().PurgeAll()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to purge trash!", nil)
	}

	message := fmt.Sprintf("Trash purged: %d deleted, %d failed.", purged, failed)
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"purged": purged,
		"failed": failed,
	})
}
