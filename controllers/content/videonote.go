package controllers

import (
	"caprep/database"
	"caprep/middleware"
	"caprep/models"
	"caprep/trash"

	"github.com/gofiber/fiber/v2"
)

// CreateVideoNote creates a linked video note under a topic
func CreateVideoNote(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVideoNote").(*struct {
		Url        string `json:"url"`
		Type       string `json:"type"`
		TopicID    uint   `json:"topic_id"`
		CourseType string `json:"course_type"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var topic models.Topic
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("id = ?", reqData.TopicID).
		First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	videoNote := models.VideoNote{
		Url:        reqData.Url,
		Type:       reqData.Type,
		TopicID:    reqData.TopicID,
		CourseType: reqData.CourseType,
	}

	if err := database.Database.Db.Create(&videoNote).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create video note!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video note created successfully!", videoNote)
}

// GetAllVideoNotes lists visible video notes
func GetAllVideoNotes(c *fiber.Ctx) error {
	var videoNotes []models.VideoNote
	if err := database.Database.Db.
		Scopes(models.Visible).
		Order("created_at desc").
		Find(&videoNotes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch video notes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video notes fetched successfully!", videoNotes)
}

// GetVideoNote returns one video note
func GetVideoNote(c *fiber.Ctx) error {
	videoNoteID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video note ID!", nil)
	}

	var videoNote models.VideoNote
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("id = ?", videoNoteID).
		First(&videoNote).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video note not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video note fetched successfully!", videoNote)
}

// GetVideoNotesByTopic lists visible video notes under a topic
func GetVideoNotesByTopic(c *fiber.Ctx) error {
	topicID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid topic ID!", nil)
	}

	var videoNotes []models.VideoNote
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("topic_id = ?", topicID).
		Order("created_at desc").
		Find(&videoNotes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch video notes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video notes fetched successfully!", videoNotes)
}

// DeleteVideoNote moves a video note to trash
func DeleteVideoNote(c *fiber.Ctx) error {
	videoNoteID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video note ID!", nil)
	}

	videoNote, err := trashEngine().MoveToTrash(trash.KindVideoNote, videoNoteID, "")
	if err != nil {
		return trashErrorResponse(c, "Video note", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video note moved to trash successfully!", videoNote)
}
