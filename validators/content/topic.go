package contentValidator

import (
	"caprep/middleware"
	"caprep/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			CourseType  string `json:"course_type"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		// Validate CourseType
		if strings.TrimSpace(reqData.CourseType) == "" {
			errors["course_type"] = "Course type is required!"
		} else if !models.IsValidCourseType(reqData.CourseType) {
			errors["course_type"] = "Course type must be CAInter or CAFinal!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopic", reqData)
		return c.Next()
	}
}

func UpdateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name == "" && reqData.Description == "" {
			errors["name"] = "At least one field must be provided!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopicUpdate", reqData)
		return c.Next()
	}
}
