package controllers

import (
	"caprep/database"
	"caprep/middleware"
	"caprep/models"
	"caprep/newlyadded"
	"caprep/trash"
	"caprep/utils"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreateMCQ creates a question under a topic and test paper
func CreateMCQ(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMCQ").(*struct {
		Question      string            `json:"question"`
		Options       map[string]string `json:"options"`
		CorrectAnswer string            `json:"correct_answer"`
		Explanation   string            `json:"explanation"`
		Marks         *int              `json:"marks"`
		TopicID       uint              `json:"topic_id"`
		TestPaperID   uint              `json:"test_paper_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var paper models.TestPaper
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("id = ?", reqData.TestPaperID).
		First(&paper).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test paper not found!", nil)
	}

	// The topic and test paper references must point into the same subtree
	if paper.TopicID != reqData.TopicID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Test paper does not belong to the given topic!", nil)
	}

	options := datatypes.JSONMap{}
	for key, text := range reqData.Options {
		options[key] = text
	}

	mcq := models.MCQ{
		Question:      reqData.Question,
		Options:       options,
		CorrectAnswer: reqData.CorrectAnswer,
		Explanation:   reqData.Explanation,
		Marks:         reqData.Marks,
		TopicID:       reqData.TopicID,
		TestPaperID:   reqData.TestPaperID,
	}

	if err := database.Database.Db.Create(&mcq).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create MCQ!", nil)
	}

	if _, err := newlyadded.NewRegistry(database.Database.Db).Add("MCQ", mcq.ID); err != nil {
		log.Printf("Failed to register MCQ %d as newly added: %v", mcq.ID, err)
	}

	go utils.SendPushNotification(utils.PushMessage{
		Title: "New Question Added",
		Body:  fmt.Sprintf("A new question was added to %s.", paper.Name),
		Data: map[string]string{
			"type":        "NEW_MCQ",
			"mcqId":       fmt.Sprint(mcq.ID),
			"testPaperId": fmt.Sprint(mcq.TestPaperID),
			"topicId":     fmt.Sprint(mcq.TopicID),
		},
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "MCQ created successfully!", mcq)
}

// GetAllMCQs lists visible MCQs
func GetAllMCQs(c *fiber.Ctx) error {
	var mcqs []models.MCQ
	if err := database.Database.Db.
		Scopes(models.Visible).
		Order("created_at asc").
		Find(&mcqs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch MCQs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "MCQs fetched successfully!", mcqs)
}

// GetMCQ returns one MCQ
func GetMCQ(c *fiber.Ctx) error {
	mcqID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid MCQ ID!", nil)
	}

	var mcq models.MCQ
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("id = ?", mcqID).
		First(&mcq).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "MCQ not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "MCQ fetched successfully!", mcq)
}

// GetMCQsByTestPaper lists visible MCQs under a test paper
func GetMCQsByTestPaper(c *fiber.Ctx) error {
	paperID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test paper ID!", nil)
	}

	var mcqs []models.MCQ
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("test_paper_id = ?", paperID).
		Order("created_at asc").
		Find(&mcqs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch MCQs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "MCQs fetched successfully!", mcqs)
}

// GetMCQsByTopic lists visible MCQs under a topic
func GetMCQsByTopic(c *fiber.Ctx) error {
	topicID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid topic ID!", nil)
	}

	var mcqs []models.MCQ
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("topic_id = ?", topicID).
		Order("created_at asc").
		Find(&mcqs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch MCQs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "MCQs fetched successfully!", mcqs)
}

// UpdateMCQ updates a question's content
func UpdateMCQ(c *fiber.Ctx) error {
	mcqID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid MCQ ID!", nil)
	}

	var mcq models.MCQ
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("id = ?", mcqID).
		First(&mcq).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "MCQ not found!", nil)
	}

	reqData, ok := c.Locals("validatedMCQUpdate").(*struct {
		Question      string            `json:"question"`
		Options       map[string]string `json:"options"`
		CorrectAnswer string            `json:"correct_answer"`
		Explanation   string            `json:"explanation"`
		Marks         *int              `json:"marks"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Question != "" {
		mcq.Question = reqData.Question
	}
	if len(reqData.Options) > 0 {
		options := datatypes.JSONMap{}
		for key, text := range reqData.Options {
			options[key] = text
		}
		mcq.Options = options
	}
	if reqData.CorrectAnswer != "" {
		mcq.CorrectAnswer = reqData.CorrectAnswer
	}
	if reqData.Explanation != "" {
		mcq.Explanation = reqData.Explanation
	}
	if reqData.Marks != nil {
		mcq.Marks = reqData.Marks
	}

	if err := database.Database.Db.Save(&mcq).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update MCQ!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "MCQ updated successfully!", mcq)
}

// DeleteMCQ moves an MCQ to trash
func DeleteMCQ(c *fiber.Ctx) error {
	mcqID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid MCQ ID!", nil)
	}

	mcq, err := trashEngine().MoveToTrash(trash.KindMCQ, mcqID, "")
	if err != nil {
		return trashErrorResponse(c, "MCQ", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "MCQ moved to trash successfully!", mcq)
}
