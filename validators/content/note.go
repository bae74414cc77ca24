package contentValidator

import (
	"caprep/middleware"
	"caprep/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UploadNote validates the multipart form fields accompanying a note
// upload. The file itself is checked by the controller.
func UploadNote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		topicID, _ := strconv.Atoi(c.FormValue("topic_id"))

		reqData := &struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Type        string `json:"type"`
			TopicID     uint   `json:"topic_id"`
			CourseType  string `json:"course_type"`
		}{
			Name:        c.FormValue("name"),
			Description: c.FormValue("description"),
			Type:        c.FormValue("type", models.NoteTypeOther),
			CourseType:  c.FormValue("course_type"),
		}
		if topicID > 0 {
			reqData.TopicID = uint(topicID)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		// Validate Type
		switch reqData.Type {
		case models.NoteTypeRTP, models.NoteTypeMTP, models.NoteTypeOther:
		default:
			errors["type"] = "Type must be rtp, mtp or other!"
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

		c.Locals("validatedNote", reqData)
		return c.Next()
	}
}
