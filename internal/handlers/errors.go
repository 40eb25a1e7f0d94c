package handlers

import (
	"errors"
	"log"

	"ledger/internal/services/transaction"
	"ledger/internal/utils/response"
	"ledger/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the fiber.Config error handler. Errors that reach it are
// mostly storage failures and become 500s.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return response.Error(c, fiberErr.Code, fiberErr.Message)
	case errors.Is(err, validation.ErrValidation):
		return response.ValidationError(c, err)
	case errors.Is(err, transaction.ErrSessionRequired):
		return response.Unauthorized(c)
	case errors.Is(err, transaction.ErrInvalidType):
		return response.BadRequest(c, err.Error())
	}

	log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	return response.ServerError(c, "Internal Server Error")
}
