package store

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis implementation of ClickStore. Each event is one hash
// under "click:<id>"; every put rewrites the full field set, so re-submitting
// an id fully replaces the prior record.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a new Redis-backed click store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "click:",
	}
}

func (r *RedisStore) Put(ctx context.Context, item ClickItem) error {
	return r.client.HSet(ctx, r.prefix+item.ID, itemFields(item)).Err()
}

func (r *RedisStore) Get(ctx context.Context, id string) (ClickItem, error) {
	fields, err := r.client.HGetAll(ctx, r.prefix+id).Result()
	if err != nil {
		return ClickItem{}, err
	}

	if len(fields) == 0 {
		return ClickItem{}, ErrNotFound
	}

	return ClickItem{
		ID:         fields["id"],
		Button:     fields["button"],
		Timestamp:  fields["timestamp"],
		PageURL:    fields["pageUrl"],
		DeviceType: fields["deviceType"],
		Platform:   fields["platform"],
		Browser:    fields["browser"],
		City:       fields["city"],
		Country:    fields["country"],
	}, nil
}

func itemFields(item ClickItem) map[string]interface{} {
	return map[string]interface{}{
		"id":         item.ID,
		"button":     item.Button,
		"timestamp":  item.Timestamp,
		"pageUrl":    item.PageURL,
		"deviceType": item.DeviceType,
		"platform":   item.Platform,
		"browser":    item.Browser,
		"city":       item.City,
		"country":    item.Country,
	}
}

// Compile-time check.
var _ ClickStore = (*RedisStore)(nil)
