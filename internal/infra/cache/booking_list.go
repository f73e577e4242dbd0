package cache

import (
	"context"
	"encoding/json"
	"time"

	"vehicle-booking/internal/pkg/config"
	"vehicle-booking/internal/pkg/errs"
	"vehicle-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const bookingListKey = "booking-list"

// BookingListCache keeps the list-all projection in Redis as one JSON blob.
// Single key, full invalidation on any mutation; the TTL bounds staleness if
// an invalidation is lost.
type BookingListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBookingListCache(client *redis.Client, cfg config.RedisConfig) *BookingListCache {
	return &BookingListCache{
		client: client,
		ttl:    cfg.ListTTL,
	}
}

func (c *BookingListCache) GetList(ctx context.Context) ([]*queries.BookingListItem, bool, error) {
	raw, err := c.client.Get(ctx, bookingListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read booking list cache")
	}

	var items []*queries.BookingListItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, errs.Wrap(err, "corrupt booking list cache entry")
	}

	return items, true, nil
}

func (c *BookingListCache) SetList(ctx context.Context, items []*queries.BookingListItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking list")
	}

	if err := c.client.Set(ctx, bookingListKey, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write booking list cache")
	}

	return nil
}

func (c *BookingListCache) InvalidateAll(ctx context.Context) error {
	if err := c.client.Del(ctx, bookingListKey).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate booking list cache")
	}
	return nil
}
