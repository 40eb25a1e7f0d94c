package response

import (
	"errors"

	"ledger/internal/validation"

	"github.com/gofiber/fiber/v2"
)

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized.")
}

// ValidationError answers 400 with the per-field issues when err carries them.
func ValidationError(c *fiber.Ctx, err error) error {
	var v *validation.Validator
	if errors.As(err, &v) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"issues": v.Errors,
		})
	}
	return BadRequest(c, err.Error())
}
