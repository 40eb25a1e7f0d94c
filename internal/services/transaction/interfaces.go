package transaction

import (
	"context"

	"ledger/internal/models"
)

// SummaryCache stores computed summaries per session. GetSummary reports the
// generation a miss should be filled under; SetSummary drops the value when a
// write has moved the session past that generation.
type SummaryCache interface {
	GetSummary(ctx context.Context, sessionID string) (*models.Summary, string, bool, error)
	SetSummary(ctx context.Context, sessionID, generation string, summary *models.Summary) error
	InvalidateSummary(ctx context.Context, sessionID string) error
	InvalidateSummaries(ctx context.Context) error
}

// Service is the ledger: it owns sign normalization and the session rules of
// every transaction operation.
type Service interface {
	Create(ctx context.Context, sessionID string, input models.TransactionInput) (*models.Transaction, error)
	List(ctx context.Context, sessionID string) ([]models.Transaction, error)
	// Get returns nil without error when no row matches.
	Get(ctx context.Context, sessionID, id string) (*models.Transaction, error)
	Update(ctx context.Context, sessionID, id string, input models.TransactionInput) error
	Delete(ctx context.Context, sessionID, id string) error
	Summary(ctx context.Context, sessionID string) (*models.Summary, error)
}
