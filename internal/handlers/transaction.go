package handlers

import (
	"ledger/internal/middleware"
	"ledger/internal/services/transaction"
	"ledger/internal/utils/response"
	"ledger/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler exposes the ledger over HTTP. Storage errors are
// returned as-is and answered by ErrorHandler.
type TransactionHandler struct {
	service transaction.Service
}

func NewTransactionHandler(service transaction.Service) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// Create records a transaction for the caller's session. 201, no body.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	input, err := validation.ParseTransactionBody(c.Body())
	if err != nil {
		return response.ValidationError(c, err)
	}

	if _, err := h.service.Create(c.UserContext(), middleware.SessionID(c), input); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusCreated)
}

// List returns every transaction of the caller's session.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	transactions, err := h.service.List(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"transactions": transactions,
	})
}

// Get returns one transaction, or an empty object when the id is unknown.
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id, err := validation.ParseTransactionID(c.Params("id"))
	if err != nil {
		return response.ValidationError(c, err)
	}

	tx, err := h.service.Get(c.UserContext(), middleware.SessionID(c), id)
	if err != nil {
		return err
	}

	body := fiber.Map{}
	if tx != nil {
		body["transaction"] = tx
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// Update rewrites title, type and amount of a transaction. 200, no body.
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	input, err := validation.ParseTransactionBody(c.Body())
	if err != nil {
		return response.ValidationError(c, err)
	}
	id, err := validation.ParseTransactionID(c.Params("id"))
	if err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.service.Update(c.UserContext(), middleware.SessionID(c), id, input); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

// Delete removes a transaction. Unknown ids succeed too.
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := validation.ParseTransactionID(c.Params("id"))
	if err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.service.Delete(c.UserContext(), middleware.SessionID(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

// Summary returns total, debit and credit sums of the caller's session.
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"summary": summary,
	})
}
