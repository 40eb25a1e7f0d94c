package transaction

import (
	"context"
	"fmt"
	"log"

	"ledger/internal/models"
	"ledger/internal/repositories"

	"github.com/google/uuid"
)

type service struct {
	repo   repositories.TransactionRepository
	cache  SummaryCache
	config Config
	newID  func() string
}

// NewService creates a new ledger service
func NewService(repo repositories.TransactionRepository, cache SummaryCache, config Config) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}

	return &service{
		repo:   repo,
		cache:  cache,
		config: config,
		newID:  uuid.NewString,
	}
}

func (s *service) Create(ctx context.Context, sessionID string, input models.TransactionInput) (*models.Transaction, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}
	if !input.Type.Valid() {
		return nil, ErrInvalidType
	}

	tx := &models.Transaction{
		ID:        s.newID(),
		Title:     input.Title,
		Amount:    input.Type.SignedAmount(input.Amount),
		Type:      input.Type,
		SessionID: sessionID,
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := s.cache.InvalidateSummary(ctx, sessionID); err != nil {
		log.Printf("Failed to invalidate summary cache for session: %v", err)
	}
	return tx, nil
}

func (s *service) List(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}
	transactions, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (s *service) Get(ctx context.Context, sessionID, id string) (*models.Transaction, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}
	tx, err := s.repo.FindByID(ctx, id, s.scope(sessionID))
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

func (s *service) Update(ctx context.Context, sessionID, id string, input models.TransactionInput) error {
	if sessionID == "" {
		return ErrSessionRequired
	}
	if !input.Type.Valid() {
		return ErrInvalidType
	}

	// the sign is derived again from the new pair, never carried over
	fields := repositories.TransactionFields{
		Title:  input.Title,
		Amount: input.Type.SignedAmount(input.Amount),
		Type:   input.Type,
	}
	if err := s.repo.Update(ctx, id, s.scope(sessionID), fields); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	s.invalidate(ctx, sessionID)
	return nil
}

func (s *service) Delete(ctx context.Context, sessionID, id string) error {
	if sessionID == "" {
		return ErrSessionRequired
	}
	if err := s.repo.Delete(ctx, id, s.scope(sessionID)); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.invalidate(ctx, sessionID)
	return nil
}

// Summary runs three independent sums. They are not read from one snapshot,
// so a concurrent write may leave total != debit + credit.
func (s *service) Summary(ctx context.Context, sessionID string) (*models.Summary, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	cached, generation, found, err := s.cache.GetSummary(ctx, sessionID)
	cacheable := err == nil
	if err != nil {
		log.Printf("Failed to read summary cache: %v", err)
	} else if found {
		return cached, nil
	}

	total, err := s.repo.SumAmount(ctx, sessionID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to sum total: %w", err)
	}
	debit, err := s.repo.SumAmount(ctx, sessionID, models.TransactionTypeDebit)
	if err != nil {
		return nil, fmt.Errorf("failed to sum debits: %w", err)
	}
	credit, err := s.repo.SumAmount(ctx, sessionID, models.TransactionTypeCredit)
	if err != nil {
		return nil, fmt.Errorf("failed to sum credits: %w", err)
	}

	summary := &models.Summary{Total: total, Debit: debit, Credit: credit}
	if cacheable {
		if err := s.cache.SetSummary(ctx, sessionID, generation, summary); err != nil {
			log.Printf("Failed to cache summary: %v", err)
		}
	}
	return summary, nil
}

// scope returns the session filter for by-id operations.
func (s *service) scope(sessionID string) string {
	if s.config.StrictSessionScope {
		return sessionID
	}
	return ""
}

// invalidate drops cached summaries after a by-id write. Unscoped writes may
// touch any session, and the owner of an id is unknown without an extra read.
func (s *service) invalidate(ctx context.Context, sessionID string) {
	var err error
	if s.config.StrictSessionScope {
		err = s.cache.InvalidateSummary(ctx, sessionID)
	} else {
		err = s.cache.InvalidateSummaries(ctx)
	}
	if err != nil {
		log.Printf("Failed to invalidate summary cache: %v", err)
	}
}
