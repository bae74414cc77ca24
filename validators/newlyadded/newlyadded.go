package newlyAddedValidator

import (
	"caprep/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func AddNewlyAdded() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TableName string `json:"table_name"`
			EntityID  uint   `json:"entity_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.TableName) == "" {
			errors["table_name"] = "Table name is required!"
		}
		if reqData.EntityID == 0 {
			errors["entity_id"] = "Entity ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNewlyAdded", reqData)
		return c.Next()
	}
}
