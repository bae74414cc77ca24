package controllers

import (
	"caprep/database"
	"caprep/middleware"
	"caprep/models"
	"caprep/trash"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a new course
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Name       string `json:"name"`
		CourseType string `json:"course_type"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Name:       reqData.Name,
		CourseType: reqData.CourseType,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// GetAllCourses lists visible courses with their visible topics
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.
		Scopes(models.Visible).
		Preload("Topics", "deleted_at IS NULL").
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourse returns one course with its visible topics
func GetCourse(c *fiber.Ctx) error {
	courseID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	var course models.Course
	if err := database.Database.Db.
		Scopes(models.Visible).
		Preload("Topics", "deleted_at IS NULL").
		Where("id = ?", courseID).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// DeleteCourse moves a course and everything under it to trash
func DeleteCourse(c *fiber.Ctx) error {
	courseID, ok := idParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	course, err := trashEngine().MoveToTrash(trash.KindCourse, courseID, "")
	if err != nil {
		return trashErrorResponse(c, "Course", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course moved to trash successfully!", course)
}
