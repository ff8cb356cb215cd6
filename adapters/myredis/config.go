package myredis

import (
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Config is the stub server's Redis settings. Addr is a redis:// URL; an empty Addr means "no Redis".
type Config struct {
	Addr string
}

// Option tweaks the parsed options before the client is built.
type Option func(*redis.Options)

// NewClient parses addr (redis://[user:pass@]host:port/db) and returns a universal client. No connection is made
// until the first command.
func NewClient(addr string, opts ...Option) (redis.UniversalClient, error) {
	parsed, err := redis.ParseURL(addr)
	if err != nil {
		return nil, fmt.Errorf("cant parse redis url: %w", err)
	}
	for _, opt := range opts {
		opt(parsed)
	}
	return redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        []string{parsed.Addr},
		DB:           parsed.DB,
		Username:     parsed.Username,
		Password:     parsed.Password,
		DialTimeout:  parsed.DialTimeout,
		ReadTimeout:  parsed.ReadTimeout,
		WriteTimeout: parsed.WriteTimeout,
		MaxRetries:   parsed.MaxRetries,
		PoolSize:     parsed.PoolSize,
		MinIdleConns: parsed.MinIdleConns,
		IdleTimeout:  parsed.IdleTimeout,
	}), nil
}
