package service

import (
	"sync/atomic"
	"testing"
	"time"

	"campaignclient/helpers"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkerPool_Panics(t *testing.T) {
	t.Run("logger_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.worker_pool.go: logger is required", func() {
			NewWorkerPool(1, 1, nil)
		})
	})
	t.Run("zero_workers", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.worker_pool.go: invalid size workers=0 queue=1", func() {
			NewWorkerPool(0, 1, log.NewNopLogger())
		})
	})
}

func TestWorkerPool_RunsSubmittedTasks(t *testing.T) {
	p := NewWorkerPool(2, 10, log.NewNopLogger())
	var ran atomic.Int32
	for i := 0; i < 10; i++ {
		require.NoError(t, p.Submit(func() { ran.Add(1) }))
	}
	require.NoError(t, p.Close())
	assert.Equal(t, int32(10), ran.Load())
}

func TestWorkerPool_SaturatedDoesNotBlock(t *testing.T) {
	p := NewWorkerPool(1, 1, log.NewNopLogger())
	release := make(chan struct{})
	started := make(chan struct{})

	require.NoError(t, p.Submit(func() {
		close(started)
		<-release
	}))
	<-started
	require.NoError(t, p.Submit(func() {}))

	done := make(chan error, 1)
	go func() { done <- p.Submit(func() {}) }()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrWorkerPoolSaturated)
	case <-time.After(time.Second):
		t.Fatal("Submit blocked on a full queue")
	}

	close(release)
	require.NoError(t, p.Close())
}

func TestWorkerPool_ClosedRejectsAndIsIdempotent(t *testing.T) {
	p := NewWorkerPool(1, 1, log.NewNopLogger())
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.ErrorIs(t, p.Submit(func() {}), ErrWorkerPoolClosed)
}

func TestWorkerPool_NilTaskIgnored(t *testing.T) {
	p := NewWorkerPool(1, 0, log.NewNopLogger())
	defer p.Close()
	assert.NoError(t, p.Submit(nil))
}

func TestWorkerPool_PanicRecovered(t *testing.T) {
	logger := helpers.NewRecordingLogger()
	p := NewWorkerPool(1, 2, logger)
	var after atomic.Bool
	require.NoError(t, p.Submit(func() { panic("boom") }))
	require.NoError(t, p.Submit(func() { after.Store(true) }))
	require.NoError(t, p.Close())

	assert.True(t, after.Load())
	errs := logger.AtLevel("error")
	require.Len(t, errs, 1)
	assert.Equal(t, "boom", errs[0]["panic"])
	assert.Equal(t, "worker_pool", errs[0]["component"])
}
