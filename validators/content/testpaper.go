package contentValidator

import (
	"caprep/middleware"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func CreateTestPaper() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name               string     `json:"name"`
			Description        string     `json:"description"`
			TimeLimitMinutes   int        `json:"time_limit_minutes"`
			TopicID            uint       `json:"topic_id"`
			ScheduledPublishAt *time.Time `json:"scheduled_publish_at"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		// Validate TopicID
		if reqData.TopicID == 0 {
			errors["topic_id"] = "Topic ID is required!"
		}

		// Validate TimeLimitMinutes
		if reqData.TimeLimitMinutes < 0 {
			errors["time_limit_minutes"] = "Time limit must not be negative!"
		}

		// Validate ScheduledPublishAt
		if reqData.ScheduledPublishAt != nil && reqData.ScheduledPublishAt.Before(time.Now()) {
			errors["scheduled_publish_at"] = "Scheduled publish time must be in the future!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTestPaper", reqData)
		return c.Next()
	}
}

func UpdateTestPaper() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name             string `json:"name"`
			Description      string `json:"description"`
			TimeLimitMinutes int    `json:"time_limit_minutes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name == "" && reqData.Description == "" && reqData.TimeLimitMinutes == 0 {
			errors["name"] = "At least one field must be provided!"
		}
		if reqData.TimeLimitMinutes < 0 {
			errors["time_limit_minutes"] = "Time limit must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTestPaperUpdate", reqData)
		return c.Next()
	}
}

func ScheduleTestPaper() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ScheduledPublishAt time.Time `json:"scheduled_publish_at"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ScheduledPublishAt.IsZero() {
			errors["scheduled_publish_at"] = "Scheduled publish time is required!"
		} else if reqData.ScheduledPublishAt.Before(time.Now()) {
			errors["scheduled_publish_at"] = "Scheduled publish time must be in the future!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSchedule", reqData)
		return c.Next()
	}
}
