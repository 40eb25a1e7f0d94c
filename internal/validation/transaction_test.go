package validation

import (
	"errors"
	"testing"

	"ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionBody(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		want      models.TransactionInput
		wantField string
	}{
		{
			name: "valid credit",
			body: `{"title":"Salary","amount":100,"type":"credit"}`,
			want: models.TransactionInput{Title: "Salary", Amount: 100, Type: models.TransactionTypeCredit},
		},
		{
			name: "valid debit with zero amount",
			body: `{"title":"Free coffee","amount":0,"type":"debit"}`,
			want: models.TransactionInput{Title: "Free coffee", Amount: 0, Type: models.TransactionTypeDebit},
		},
		{
			name:      "missing amount",
			body:      `{"title":"Rent","type":"debit"}`,
			wantField: "amount",
		},
		{
			name:      "null amount",
			body:      `{"title":"Rent","amount":null,"type":"debit"}`,
			wantField: "amount",
		},
		{
			name:      "type outside enum",
			body:      `{"title":"Rent","amount":10,"type":"refund"}`,
			wantField: "type",
		},
		{
			name:      "missing type",
			body:      `{"title":"Rent","amount":10}`,
			wantField: "type",
		},
		{
			name:      "empty title",
			body:      `{"title":"","amount":10,"type":"credit"}`,
			wantField: "title",
		},
		{
			name:      "keys in another case",
			body:      `{"TITLE":"x","Amount":5,"TYPE":"debit"}`,
			wantField: "title",
		},
		{
			name: "unknown keys are ignored",
			body: `{"title":"Rent","amount":40,"type":"debit","Title":"other","note":"x"}`,
			want: models.TransactionInput{Title: "Rent", Amount: 40, Type: models.TransactionTypeDebit},
		},
		{
			name:      "null body",
			body:      `null`,
			wantField: "body",
		},
		{
			name:      "not json",
			body:      `title=Rent`,
			wantField: "body",
		},
		{
			name:      "empty body",
			body:      ``,
			wantField: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTransactionBody([]byte(tt.body))

			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			var v *Validator
			require.True(t, errors.As(err, &v))
			assert.Contains(t, v.Errors, tt.wantField)
		})
	}
}

func TestParseTransactionBody_WrongJSONTypes(t *testing.T) {
	bodies := []string{
		`{"title":"Rent","amount":"abc","type":"debit"}`,
		`{"title":42,"amount":10,"type":"debit"}`,
		`{"title":"Rent","amount":10,"type":1}`,
		`[1,2,3]`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			_, err := ParseTransactionBody([]byte(body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestParseTransactionID(t *testing.T) {
	valid := []string{
		"0b7d6a3c-8a52-4c1e-9f36-5d3c2a1b0e9f",
		"0B7D6A3C-8A52-4C1E-9F36-5D3C2A1B0E9F",
	}
	for _, id := range valid {
		got, err := ParseTransactionID(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, got)
	}

	invalid := []string{
		"",
		"123",
		"resume",
		"0b7d6a3c8a524c1e9f365d3c2a1b0e9f",
		"{0b7d6a3c-8a52-4c1e-9f36-5d3c2a1b0e9f}",
		"urn:uuid:0b7d6a3c-8a52-4c1e-9f36-5d3c2a1b0e9f",
		"0b7d6a3c-8a52-4c1e-9f36-5d3c2a1b0e9z",
		" 0b7d6a3c-8a52-4c1e-9f36-5d3c2a1b0e9f",
		"0b7d6a3c-8a52-4c1e-9f36-5d3c2a1b0e9f\n",
	}
	for _, id := range invalid {
		_, err := ParseTransactionID(id)
		assert.ErrorIs(t, err, ErrValidation, id)
	}
}

func TestValidator_Error(t *testing.T) {
	v := New()
	assert.NoError(t, v.Err())

	v.AddError("type", "must be one of [credit debit]")
	v.AddError("amount", "is required")
	v.AddError("amount", "ignored second message")

	assert.Equal(t, "validation failed: amount: is required; type: must be one of [credit debit]", v.Error())
}
