package interfaces

import "context"

// EventStore keeps items received by the stub server (notifications, proxy commands) for later inspection.
//
// Implemented by adapters/memory.NewStore (process memory) and adapters/myredis.NewStore (Redis, survives restarts).
// Called from handlers.HTTPServer.
//
//go:generate moq -stub -out mock/event_store.go -pkg mock . EventStore
type EventStore[T any] interface {
	// WriteValue stores item under key with the given TTL (ms); ttlMs <= 0 keeps it until deleted.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when marshalling fails or when the storage write fails.
	WriteValue(ctx context.Context, key string, item T, ttlMs int) error

	// ListAllValues returns all stored items.
	// Returns:
	// 1) (items, nil) when there is at least one item;
	// 2) (nil, entity_not_found) when the store is empty or no item could be read/unmarshalled;
	// 3) (nil, internal_server_error) when listing keys fails (e.g. Redis error).
	ListAllValues(ctx context.Context) ([]T, error)

	// DeleteValue removes the item stored under key; deleting a missing key is not an error.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when the storage delete fails.
	DeleteValue(ctx context.Context, key string) error
}
