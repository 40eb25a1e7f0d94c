package validation

import (
	"ledger/internal/models"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// transactionBody mirrors the JSON accepted by create and update. Pointers
// tell a missing field apart from a zero value.
type transactionBody struct {
	Title  *string  `json:"title" validate:"required,min=1"`
	Amount *float64 `json:"amount" validate:"required"`
	Type   *string  `json:"type" validate:"required,oneof=credit debit"`
}

// ParseTransactionBody decodes and validates a create/update body. Keys are
// matched exactly, so "Title" does not stand in for "title".
func ParseTransactionBody(raw []byte) (models.TransactionInput, error) {
	v := New()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		v.AddError("body", "must be a JSON object")
		return models.TransactionInput{}, v
	}

	var body transactionBody
	decodeField(v, fields, "title", &body.Title)
	decodeField(v, fields, "amount", &body.Amount)
	decodeField(v, fields, "type", &body.Type)
	if !v.Valid() {
		return models.TransactionInput{}, v
	}

	v.Struct(body)
	if err := v.Err(); err != nil {
		return models.TransactionInput{}, err
	}

	return models.TransactionInput{
		Title:  *body.Title,
		Amount: *body.Amount,
		Type:   models.TransactionType(*body.Type),
	}, nil
}

// decodeField leaves dest nil when the key is absent or null.
func decodeField(v *Validator, fields map[string]json.RawMessage, name string, dest interface{}) {
	raw, ok := fields[name]
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		v.AddError(name, "must be a "+expectedKind(name))
	}
}

// ParseTransactionID accepts only the canonical 36-character UUID form.
func ParseTransactionID(id string) (string, error) {
	v := New()

	v.Check(id != "", "id", "is required")
	if v.Valid() {
		_, err := uuid.Parse(id)
		v.Check(len(id) == 36 && err == nil, "id", "must be a valid UUID")
	}

	if err := v.Err(); err != nil {
		return "", err
	}
	return id, nil
}

func expectedKind(field string) string {
	switch field {
	case "amount":
		return "number"
	default:
		return "string"
	}
}
