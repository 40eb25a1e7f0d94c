package cache

import (
	"context"

	"ledger/internal/models"
)

// NoopCache is used when Redis is disabled: every lookup misses.
type NoopCache struct{}

func (NoopCache) GetSummary(context.Context, string) (*models.Summary, string, bool, error) {
	return nil, "", false, nil
}

func (NoopCache) SetSummary(context.Context, string, string, *models.Summary) error { return nil }

func (NoopCache) InvalidateSummary(context.Context, string) error { return nil }

func (NoopCache) InvalidateSummaries(context.Context) error { return nil }
