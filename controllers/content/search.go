package controllers

import (
	"caprep/database"
	"caprep/middleware"
	"caprep/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Search performs a case-insensitive name search across topics, test
// papers, notes and video notes. Trashed content never appears in results.
func Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Search query is required!", nil)
	}

	db := database.Database.Db
	pattern := "%" + query + "%"

	var topics []models.Topic
	if err := db.Scopes(models.Visible).
		Where("name ILIKE ?", pattern).
		Find(&topics).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Search failed!", nil)
	}

	var papers []models.TestPaper
	if err := db.Scopes(models.Visible).
		Where("name ILIKE ?", pattern).
		Find(&papers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Search failed!", nil)
	}

	var notes []models.Note
	if err := db.Scopes(models.Visible).
		Where("name ILIKE ?", pattern).
		Find(&notes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Search failed!", nil)
	}

	var videoNotes []models.VideoNote
	if err := db.Scopes(models.Visible).
		Where("url ILIKE ?", pattern).
		Find(&videoNotes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Search failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Search completed successfully!", fiber.Map{
		"topics":      topics,
		"test_papers": papers,
		"notes":       notes,
		"video_notes": videoNotes,
	})
}
