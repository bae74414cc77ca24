package controllers

import (
	"caprep/config"
	"caprep/database"
	"caprep/middleware"
	"caprep/models"
	"caprep/newlyadded"
	"caprep/trash"
	"caprep/utils"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// UploadNote stores an uploaded PDF and creates the note record
func UploadNote(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNote").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Type        string `json:"type"`
		TopicID     uint   `json:"topic_id"`
		CourseType  string `json:"course_type"`
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

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded!", nil)
	}

	if file.Header.Get("Content-Type") != "application/pdf" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only PDF files are allowed!", nil)
	}
	maxSize := int64(config.AppConfig.MaxUploadSizeMB) * 1024 * 1024
	if file.Size > maxSize {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
			fmt.Sprintf("File exceeds the %d MB size limit!", config.AppConfig.MaxUploadSizeMB), nil)
	}

	filePath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Failed to save uploaded note file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
	}

	note := models.Note{
		Name:        reqData.Name,
		Description: reqData.Description,
		Type:        reqData.Type,
		FileName:    file.Filename,
		FileUrl:     utils.GetFileURL(filePath),
		FileSize:    file.Size,
		MimeType:    file.Header.Get("Content-Type"),
		TopicID:     reqData.TopicID,
		CourseType:  reqData.CourseType,
	}

	if err := database.Database.Db.Create(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create note!", nil)
	}

	if _, err := newlyadded.NewRegistry(database.Database.Db).Add("Note", note.ID); err != nil {
		log.Printf("Failed to register note %d as newly added: %v", note.ID, err)
	}

	go utils.SendPushNotification(utils.PushMessage{
		Title: "New Note Uploaded",
		Body:  fmt.Sprintf("Note: %s is now available.", note.Name),
		Data: map[string]string{
			"type":       "NEW_NOTE",
			"noteId":     fmt.Sprint(note.ID),
			"topicId":    fmt.Sprint(note.TopicID),
			"courseType": note.CourseType,
		},
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Note uploaded successfully!", note)
}

// GetAllNotes lists visible notes
func GetAllNotes(c *fiber.Ctx) error {
	var notes []models.Note
	if err := database.Database.Db.
		Scopes(models.Visible).
		Order("created_at desc").
		Find(&notes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notes fetched successfully!", notes)
}

// GetNote returns one note
func GetNote(c *fiber.Ctx) error {
	noteID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid note ID!", nil)
	}

	var note models.Note
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("id = ?", noteID).
		First(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Note not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note fetched successfully!", note)
}

// GetNotesByTopic lists visible notes under a topic
func GetNotesByTopic(c *fiber.Ctx) error {
	topicID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid topic ID!", nil)
	}

	var notes []models.Note
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("topic_id = ?", topicID).
		Order("created_at desc").
		Find(&notes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notes fetched successfully!", notes)
}

// DeleteNote moves a note to trash. The file stays on disk until the note
// is permanently purged.
func DeleteNote(c *fiber.Ctx) error {
	noteID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid note ID!", nil)
	}

	note, err := trashEngine().MoveToTrash(trash.KindNote, noteID, "")
	if err != nil {
		return trashErrorResponse(c, "Note", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note moved to trash successfully!", note)
}
