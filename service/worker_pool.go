package service

import (
	"errors"
	"fmt"
	"sync"

	"campaignclient/helpers"
	"campaignclient/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ErrWorkerPoolClosed is returned by Submit after Close.
var ErrWorkerPoolClosed = errors.New("worker pool is closed")

// ErrWorkerPoolSaturated is returned by Submit when all workers are busy and the queue is full.
var ErrWorkerPoolSaturated = errors.New("worker pool queue is full")

// workerPool implements interfaces.WorkerPool: a fixed set of goroutines draining a buffered task channel.
// Submit never blocks; a full queue is reported as ErrWorkerPoolSaturated. Under mu: closed. Closing the channel
// happens under the write lock so Submit (read lock) never sends on a closed channel.
type workerPool struct {
	tasks  chan func()
	logger log.Logger
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool starts workers goroutines sharing a queue of queueSize tasks. Panics on non-positive sizes or nil logger.
//
// Parameters: workers - concurrent tasks (e.g. 4); queueSize - tasks waiting beyond the running ones (e.g. 64);
// logger - logger for recovered task panics.
//
// Returns: interfaces.WorkerPool (*workerPool).
//
// Called from NewCampaignClientFromConfig with domain.ClientConfig Workers/QueueSize.
func NewWorkerPool(workers, queueSize int, logger log.Logger) interfaces.WorkerPool {
	if workers <= 0 || queueSize < 0 {
		panic(fmt.Sprintf("service.worker_pool.go: invalid size workers=%d queue=%d", workers, queueSize))
	}
	p := &workerPool{
		tasks:  make(chan func(), queueSize),
		logger: log.With(helpers.NilPanic(logger, "service.worker_pool.go: logger is required"), "component", "worker_pool"),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work()
	}
	return p
}

// work runs tasks until the channel is closed and drained.
func (p *workerPool) work() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.run(task)
	}
}

// run executes one task; a panicking task is logged and does not take the worker down.
func (p *workerPool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			level.Error(p.logger).Log("msg", "task panicked", "panic", fmt.Sprint(r))
		}
	}()
	task()
}

// Submit queues task without blocking.
//
// Parameter task - closure owning copies of everything it needs; nil is ignored.
//
// Returns: nil when queued; ErrWorkerPoolClosed after Close; ErrWorkerPoolSaturated when the queue is full.
//
// Called from dispatcher.FireAndForget.
func (p *workerPool) Submit(task func()) error {
	if task == nil {
		return nil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrWorkerPoolClosed
	}
	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrWorkerPoolSaturated
	}
}

// Close stops intake, lets workers finish queued tasks and waits for them. Idempotent.
//
// Returns: nil.
//
// Called from campaignClient.Close (defer in cmd/campaign-probe).
func (p *workerPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.wg.Wait()
		return nil
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()
	p.wg.Wait()
	return nil
}
