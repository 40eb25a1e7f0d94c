package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ledger/internal/models"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	summaryKeyPrefix = "summary:"
	// summaryGenKey counts unscoped writes; summaryGenKey:<session> counts
	// writes of one session. A cached summary is only valid under the pair
	// of counters it was computed with.
	summaryGenKey = "summarygen"
	summaryGenTTL = 7 * 24 * time.Hour
)

// CacheService stores JSON values in Redis with a default TTL.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

// Summary caching
func SummaryKey(sessionID, generation string) string {
	return summaryKeyPrefix + sessionID + ":" + generation
}

func sessionGenKey(sessionID string) string {
	return summaryGenKey + ":" + sessionID
}

type multiGetter interface {
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

// summaryGeneration reads the global and session write counters as "<global>.<session>".
func summaryGeneration(ctx context.Context, c multiGetter, sessionID string) (string, error) {
	vals, err := c.MGet(ctx, summaryGenKey, sessionGenKey(sessionID)).Result()
	if err != nil {
		return "", fmt.Errorf("failed to read summary generation: %w", err)
	}
	return counter(vals[0]) + "." + counter(vals[1]), nil
}

func counter(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return "0"
}

// GetSummary returns the cached summary for the current generation, along
// with that generation so a miss can be filled with SetSummary.
func (s *CacheService) GetSummary(ctx context.Context, sessionID string) (*models.Summary, string, bool, error) {
	generation, err := summaryGeneration(ctx, s.client, sessionID)
	if err != nil {
		return nil, "", false, err
	}

	var summary models.Summary
	found, err := s.Get(ctx, SummaryKey(sessionID, generation), &summary)
	if err != nil {
		return nil, "", false, err
	}
	if !found {
		return nil, generation, false, nil
	}
	return &summary, generation, true, nil
}

// SetSummary stores summary only while the session is still at generation.
// A write that landed since the generation was read makes this a no-op.
func (s *CacheService) SetSummary(ctx context.Context, sessionID, generation string, summary *models.Summary) error {
	if summary == nil {
		return errors.New("cannot cache nil summary")
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := summaryGeneration(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		if current != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, SummaryKey(sessionID, generation), data, s.ttl)
			return nil
		})
		return err
	}, summaryGenKey, sessionGenKey(sessionID))

	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// InvalidateSummary moves one session to a new generation.
func (s *CacheService) InvalidateSummary(ctx context.Context, sessionID string) error {
	key := sessionGenKey(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		if ttl := s.generationTTL(); ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate summary: %w", err)
	}
	return nil
}

// InvalidateSummaries moves every session to a new generation.
func (s *CacheService) InvalidateSummaries(ctx context.Context) error {
	if err := s.client.Incr(ctx, summaryGenKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summaries: %w", err)
	}
	return nil
}

// generationTTL keeps session counters alive well past any entry built on
// them, so a counter never restarts under a live entry. Entries without a
// TTL need counters without one.
func (s *CacheService) generationTTL() time.Duration {
	if s.ttl <= 0 {
		return 0
	}
	return max(summaryGenTTL, 2*s.ttl)
}
