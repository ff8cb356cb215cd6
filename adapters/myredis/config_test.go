package myredis

import (
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("valid url", func(t *testing.T) {
		client, err := NewClient("redis://localhost:6379/2")
		require.NoError(t, err)
		require.NotNil(t, client)
		defer client.Close()
	})

	t.Run("invalid url", func(t *testing.T) {
		client, err := NewClient("://invalid")
		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "cant parse redis url")
	})

	t.Run("option applied", func(t *testing.T) {
		applied := false
		client, err := NewClient("redis://localhost:6379", func(o *redis.Options) {
			o.DialTimeout = 200 * time.Millisecond
			applied = true
		})
		require.NoError(t, err)
		defer client.Close()
		assert.True(t, applied)
	})
}
