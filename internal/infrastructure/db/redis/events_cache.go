package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eventhub/event-platform/internal/api/metrics"
	"github.com/eventhub/event-platform/internal/core/domain"
)

const eventsCacheKey = "events:all"
const eventsCacheTTL = 30 * time.Second

// EventsCache caches the full event listing in Redis. Writers invalidate the
// key, so a stale listing survives at most eventsCacheTTL.
type EventsCache struct {
	client *redis.Client
}

// NewEventsCache creates an EventsCache wrapping the given Redis client.
func NewEventsCache(client *redis.Client) *EventsCache {
	return &EventsCache{client: client}
}

// Get returns the cached listing and whether the key was present.
func (c *EventsCache) Get(ctx context.Context) ([]domain.Event, bool, error) {
	raw, err := c.client.Get(ctx, eventsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.EventCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("events cache get: %w", err)
	}

	var events []domain.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, false, fmt.Errorf("events cache decode: %w", err)
	}

	metrics.EventCacheTotal.WithLabelValues("hit").Inc()
	return events, true, nil
}

// Set stores the listing (expires after eventsCacheTTL).
func (c *EventsCache) Set(ctx context.Context, events []domain.Event) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("events cache encode: %w", err)
	}
	return c.client.Set(ctx, eventsCacheKey, raw, eventsCacheTTL).Err()
}

// Invalidate drops the cached listing after an event write.
func (c *EventsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, eventsCacheKey).Err()
}
