package main

import (
	"testing"

	"ledger/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func TestFakeInputs(t *testing.T) {
	inputs := fakeInputs(gofakeit.New(42), 25)

	assert.Len(t, inputs, 25)
	for _, in := range inputs {
		assert.NotEmpty(t, in.Title)
		assert.True(t, in.Type.Valid())
		assert.GreaterOrEqual(t, in.Amount, 1.0)
		assert.LessOrEqual(t, in.Amount, 1000.0)
	}
}

func TestFakeInputs_Deterministic(t *testing.T) {
	a := fakeInputs(gofakeit.New(7), 5)
	b := fakeInputs(gofakeit.New(7), 5)
	assert.Equal(t, a, b)

	var credits, debits int
	for _, in := range fakeInputs(gofakeit.New(7), 200) {
		switch in.Type {
		case models.TransactionTypeCredit:
			credits++
		case models.TransactionTypeDebit:
			debits++
		}
	}
	assert.Positive(t, credits)
	assert.Positive(t, debits)
}
