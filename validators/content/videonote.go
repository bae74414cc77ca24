package contentValidator

import (
	"caprep/middleware"
	"caprep/models"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func CreateVideoNote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Url        string `json:"url"`
			Type       string `json:"type"`
			TopicID    uint   `json:"topic_id"`
			CourseType string `json:"course_type"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Url
		if strings.TrimSpace(reqData.Url) == "" {
			errors["url"] = "URL is required!"
		} else if err := validate.Var(reqData.Url, "url"); err != nil {
			errors["url"] = "URL must be a valid link!"
		}

		// Validate Type
		if reqData.Type == "" {
			reqData.Type = models.VideoNoteTypeOther
		}
		switch reqData.Type {
		case models.VideoNoteTypeRTP, models.VideoNoteTypeMTP, models.VideoNoteTypeRevision, models.VideoNoteTypeOther:
		default:
			errors["type"] = "Type must be rtp, mtp, revision or other!"
		}

		// Validate TopicID
		if reqData.TopicID == 0 {
			errors["topic_id"] = "Topic ID is required!"
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

		c.Locals("validatedVideoNote", reqData)
		return c.Next()
	}
}
