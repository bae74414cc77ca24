package controllers

import (
	"caprep/database"
	"caprep/middleware"
	"caprep/models"
	"caprep/newlyadded"
	"caprep/trash"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateTestPaper creates a test paper under a topic
func CreateTestPaper(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTestPaper").(*struct {
		Name               string     `json:"name"`
		Description        string     `json:"description"`
		TimeLimitMinutes   int        `json:"time_limit_minutes"`
		TopicID            uint       `json:"topic_id"`
		ScheduledPublishAt *time.Time `json:"scheduled_publish_at"`
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

	paper := models.TestPaper{
		Name:               reqData.Name,
		Description:        reqData.Description,
		TimeLimitMinutes:   reqData.TimeLimitMinutes,
		TopicID:            reqData.TopicID,
		ScheduledPublishAt: reqData.ScheduledPublishAt,
		IsPublished:        reqData.ScheduledPublishAt == nil,
	}

	if err := database.Database.Db.Create(&paper).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create test paper!", nil)
	}

	if _, err := newlyadded.NewRegistry(database.Database.Db).Add("TestPaper", paper.ID); err != nil {
		log.Printf("Failed to register test paper %d as newly added: %v", paper.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Test paper created successfully!", paper)
}

// GetAllTestPapers lists visible test papers
func GetAllTestPapers(c *fiber.Ctx) error {
	var papers []models.TestPaper
	if err := database.Database.Db.
		Scopes(models.Visible).
		Order("created_at asc").
		Find(&papers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch test papers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test papers fetched successfully!", papers)
}

// GetTestPaper returns a test paper with its visible MCQs and total marks
func GetTestPaper(c *fiber.Ctx) error {
	paperID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test paper ID!", nil)
	}

	var paper models.TestPaper
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("id = ?", paperID).
		First(&paper).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test paper not found!", nil)
	}

	var mcqs []models.MCQ
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("test_paper_id = ?", paperID).
		Order("created_at asc").
		Find(&mcqs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch MCQs!", nil)
	}

	totalMarks, err := models.TestPaperTotalMarks(database.Database.Db, paperID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute total marks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test paper fetched successfully!", fiber.Map{
		"test_paper":  paper,
		"mcqs":        mcqs,
		"total_marks": totalMarks,
	})
}

// GetTestPaperForTest returns the paper and its questions without answers,
// the shape served to a student taking the test
func GetTestPaperForTest(c *fiber.Ctx) error {
	paperID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test paper ID!", nil)
	}

	var paper models.TestPaper
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("id = ?", paperID).
		First(&paper).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test paper not found!", nil)
	}

	type question struct {
		ID       uint        `json:"id"`
		Question string      `json:"question"`
		Options  interface{} `json:"options"`
		Marks    *int        `json:"marks"`
	}

	var mcqs []models.MCQ
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("test_paper_id = ?", paperID).
		Order("created_at asc").
		Find(&mcqs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	questions := make([]question, 0, len(mcqs))
	for _, mcq := range mcqs {
		questions = append(questions, question{
			ID:       mcq.ID,
			Question: mcq.Question,
			Options:  mcq.Options,
			Marks:    mcq.Marks,
		})
	}

	totalMarks, err := models.TestPaperTotalMarks(database.Database.Db, paperID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute total marks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test paper fetched successfully!", fiber.Map{
		"test_paper":  paper,
		"questions":   questions,
		"total_marks": totalMarks,
	})
}

// GetTestPaperAnswers returns correct answers and explanations for grading
func GetTestPaperAnswers(c *fiber.Ctx) error {
	paperID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test paper ID!", nil)
	}

	var paper models.TestPaper
	if err := database.Database.Db.
		Where("id = ?", paperID).
		First(&paper).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test paper not found!", nil)
	}

	type answer struct {
		ID          uint   `json:"id"`
		Answer      string `json:"answer"`
		Explanation string `json:"explanation"`
	}

	var mcqs []models.MCQ
	if err := database.Database.Db.
		Where("test_paper_id = ?", paperID).
		Order("created_at asc").
		Find(&mcqs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch answers!", nil)
	}

	answers := make([]answer, 0, len(mcqs))
	for _, mcq := range mcqs {
		answers = append(answers, answer{
			ID:          mcq.ID,
			Answer:      mcq.CorrectAnswer,
			Explanation: mcq.Explanation,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answers fetched successfully!", answers)
}

// UpdateTestPaper updates a test paper's details
func UpdateTestPaper(c *fiber.Ctx) error {
	paperID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test paper ID!", nil)
	}

	var paper models.TestPaper
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("id = ?", paperID).
		First(&paper).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test paper not found!", nil)
	}

	reqData, ok := c.Locals("validatedTestPaperUpdate").(*struct {
		Name             string `json:"name"`
		Description      string `json:"description"`
		TimeLimitMinutes int    `json:"time_limit_minutes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Name != "" {
		paper.Name = reqData.Name
	}
	if reqData.Description != "" {
		paper.Description = reqData.Description
	}
	if reqData.TimeLimitMinutes > 0 {
		paper.TimeLimitMinutes = reqData.TimeLimitMinutes
	}

	if err := database.Database.Db.Save(&paper).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update test paper!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test paper updated successfully!", paper)
}

// ScheduleTestPaperPublish sets or replaces a paper's scheduled publish time
func ScheduleTestPaperPublish(c *fiber.Ctx) error {
	paperID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test paper ID!", nil)
	}

	reqData, ok := c.Locals("validatedSchedule").(*struct {
		ScheduledPublishAt time.Time `json:"scheduled_publish_at"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var paper models.TestPaper
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("id = ?", paperID).
		First(&paper).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Test paper not found!", nil)
	}

	paper.IsPublished = false
	paper.ScheduledPublishAt = &reqData.ScheduledPublishAt

	if err := database.Database.Db.Save(&paper).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to schedule test paper!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test paper publish scheduled successfully!", paper)
}

// DeleteTestPaper moves a test paper and its MCQs to trash
func DeleteTestPaper(c *fiber.Ctx) error {
	paperID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid test paper ID!", nil)
	}

	paper, err := trashEngine().MoveToTrash(trash.KindTestPaper, paperID, "")
	if err != nil {
		return trashErrorResponse(c, "Test paper", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test paper moved to trash successfully!", paper)
}
