package contentValidator

import (
	"caprep/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateMCQ() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Question      string            `json:"question"`
			Options       map[string]string `json:"options"`
			CorrectAnswer string            `json:"correct_answer"`
			Explanation   string            `json:"explanation"`
			Marks         *int              `json:"marks"`
			TopicID       uint              `json:"topic_id"`
			TestPaperID   uint              `json:"test_paper_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Question
		if strings.TrimSpace(reqData.Question) == "" {
			errors["question"] = "Question is required!"
		}

		// Validate Options
		if len(reqData.Options) < 2 {
			errors["options"] = "At least two options are required!"
		}

		// Validate CorrectAnswer
		if strings.TrimSpace(reqData.CorrectAnswer) == "" {
			errors["correct_answer"] = "Correct answer is required!"
		} else if _, ok := reqData.Options[reqData.CorrectAnswer]; len(reqData.Options) > 0 && !ok {
			errors["correct_answer"] = "Correct answer must be one of the option keys!"
		}

		// Validate Marks
		if reqData.Marks != nil && *reqData.Marks < 0 {
			errors["marks"] = "Marks must not be negative!"
		}

		// Validate references
		if reqData.TopicID == 0 {
			errors["topic_id"] = "Topic ID is required!"
		}
		if reqData.TestPaperID == 0 {
			errors["test_paper_id"] = "Test paper ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMCQ", reqData)
		return c.Next()
	}
}

func UpdateMCQ() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Question      string            `json:"question"`
			Options       map[string]string `json:"options"`
			CorrectAnswer string            `json:"correct_answer"`
			Explanation   string            `json:"explanation"`
			Marks         *int              `json:"marks"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Options) == 1 {
			errors["options"] = "At least two options are required!"
		}
		if reqData.Marks != nil && *reqData.Marks < 0 {
			errors["marks"] = "Marks must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMCQUpdate", reqData)
		return c.Next()
	}
}
