package myredis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"campaignclient/domain"
	"campaignclient/interfaces"
	"campaignclient/service"

	"github.com/go-redis/redis/v8"
)

const scanBatch = 100

// store keeps items as JSON-encoded strings under "{prefix}:{key}", each with its own TTL.
type store[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
}

// NewStore returns a Redis-backed interfaces.EventStore. Items that fail to unmarshal are skipped when listing.
func NewStore[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) interfaces.EventStore[T] {
	return &store[T]{
		client:    client,
		prefix:    prefix,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

func (s *store[T]) WriteValue(ctx context.Context, key string, item T, ttlMs int) error {
	data, err := s.marshal(item)
	if err != nil {
		return service.NewInternalServerError("redis marshal item error", fmt.Errorf("can't marshal %T: %w", item, err))
	}
	ttl := time.Duration(0)
	if ttlMs > 0 {
		ttl = time.Duration(ttlMs) * time.Millisecond
	}
	if err := s.client.Set(ctx, s.key(key), data, ttl).Err(); err != nil {
		return service.NewInternalServerError("redis write key error", fmt.Errorf("can't write key %q: %w", key, err))
	}
	return nil
}

func (s *store[T]) DeleteValue(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return service.NewInternalServerError("redis delete key error", fmt.Errorf("can't delete key %q: %w", key, err))
	}
	return nil
}

// ListAllValues scans the prefix and fetches the values in one MGET. Keys that expire between SCAN and MGET come
// back as nil and are skipped.
func (s *store[T]) ListAllValues(ctx context.Context) ([]T, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, s.prefix+":*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, service.NewInternalServerError("redis scan keys error", err)
	}
	if len(keys) == 0 {
		return nil, service.NewEntityNotFoundError("no events recorded", nil)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, service.NewInternalServerError("redis get values error", err)
	}
	items := make([]T, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		item, err := s.unmarshal([]byte(raw))
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, service.NewEntityNotFoundError("no events recorded", nil)
	}
	return items, nil
}

func (s *store[T]) key(key string) string {
	return s.prefix + ":" + strings.TrimSpace(key)
}

// NewEventStore stores domain.RecordedEvent values as JSON under prefix.
func NewEventStore(client redis.UniversalClient, prefix string) interfaces.EventStore[domain.RecordedEvent] {
	marshal := func(e domain.RecordedEvent) ([]byte, error) { return json.Marshal(e) }
	unmarshal := func(b []byte) (domain.RecordedEvent, error) {
		var e domain.RecordedEvent
		err := json.Unmarshal(b, &e)
		return e, err
	}
	return NewStore[domain.RecordedEvent](client, prefix, marshal, unmarshal)
}
