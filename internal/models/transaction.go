package models

import (
	"time"
)

// TransactionType is the direction of a ledger entry.
type TransactionType string

// Transaction types
const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeCredit || t == TransactionTypeDebit
}

// SignedAmount normalizes a submitted amount for storage: credits keep the
// submitted value, debits store its negation.
func (t TransactionType) SignedAmount(amount float64) float64 {
	if t == TransactionTypeCredit || amount == 0 {
		// zero is returned as-is so debits never store -0
		return amount
	}
	return -amount
}

// Transaction is a single ledger entry owned by the session that created it.
type Transaction struct {
	ID        string          `gorm:"primaryKey;type:text" json:"id"`
	Title     string          `gorm:"type:text;not null" json:"title"`
	Amount    float64         `gorm:"type:numeric;not null" json:"amount"`
	Type      TransactionType `gorm:"type:text;not null;check:chk_transactions_type,type IN ('credit','debit')" json:"type"`
	SessionID string          `gorm:"type:text;index" json:"session_id"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// TableName pins the table name used by the ledger.
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionInput is the validated payload of a create or update request.
// Amount is the submitted magnitude, before sign normalization.
type TransactionInput struct {
	Title  string
	Amount float64
	Type   TransactionType
}

// Summary holds the per-session aggregates. A nil field means the underlying
// SUM ran over no rows and is omitted from the JSON payload.
type Summary struct {
	Total  *float64 `json:"total,omitempty"`
	Debit  *float64 `json:"debit,omitempty"`
	Credit *float64 `json:"credit,omitempty"`
}
