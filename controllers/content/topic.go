package controllers

import (
	"caprep/database"
	"caprep/middleware"
	"caprep/models"
	"caprep/trash"

	"github.com/gofiber/fiber/v2"
)

// CreateTopic creates a topic under the course matching the given course type
func CreateTopic(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTopic").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		CourseType  string `json:"course_type"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("course_type = ?", reqData.CourseType).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course with type "+reqData.CourseType+" not found!", nil)
	}

	topic := models.Topic{
		Name:        reqData.Name,
		Description: reqData.Description,
		CourseID:    course.ID,
	}

	if err := database.Database.Db.Create(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Topic created successfully!", topic)
}

// GetTopic returns one topic
func GetTopic(c *fiber.Ctx) error {
	topicID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid topic ID!", nil)
	}

	var topic models.Topic
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("id = ?", topicID).
		First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic fetched successfully!", topic)
}

// GetTopicTestPapers lists visible test papers under a topic with MCQ counts
func GetTopicTestPapers(c *fiber.Ctx) error {
	topicID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid topic ID!", nil)
	}

	var papers []models.TestPaper
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("topic_id = ?", topicID).
		Order("created_at asc").
		Find(&papers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch test papers!", nil)
	}

	type paperWithCount struct {
		models.TestPaper
		MCQCount int64 `json:"mcq_count"`
	}

	result := make([]paperWithCount, 0, len(papers))
	for _, paper := range papers {
		var count int64
		if err := database.Database.Db.Model(&models.MCQ{}).
			Scopes(models.Visible).
			Where("test_paper_id = ?", paper.ID).
			Count(&count).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch test papers!", nil)
		}
		result = append(result, paperWithCount{TestPaper: paper, MCQCount: count})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test papers fetched successfully!", result)
}

// UpdateTopic updates a topic's name and description
func UpdateTopic(c *fiber.Ctx) error {
	topicID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid topic ID!", nil)
	}

	var topic models.Topic
	if err := database.Database.Db.
		Scopes(models.Visible).
		Where("id = ?", topicID).
		First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	reqData, ok := c.Locals("validatedTopicUpdate").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Name != "" {
		topic.Name = reqData.Name
	}
	if reqData.Description != "" {
		topic.Description = reqData.Description
	}

	if err := database.Database.Db.Save(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic updated successfully!", topic)
}

// DeleteTopic moves a topic and everything under it to trash
func DeleteTopic(c *fiber.Ctx) error {
	topicID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid topic ID!", nil)
	}

	topic, err := trashEngine().MoveToTrash(trash.KindTopic, topicID, "")
	if err != nil {
		return trashErrorResponse(c, "Topic", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic moved to trash successfully!", topic)
}
