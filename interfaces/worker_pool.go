package interfaces

// WorkerPool runs detached tasks on a fixed number of goroutines with a bounded queue. It caps the number of
// in-flight fire-and-forget requests so a slow or unreachable campaign server cannot grow goroutines without bound.
//
// Implemented by service.workerPool. Called from service.dispatcher.FireAndForget (Submit) and
// service.campaignClient.Close (Close).
//
//go:generate moq -stub -out mock/worker_pool.go -pkg mock . WorkerPool
type WorkerPool interface {
	// Submit queues task without blocking.
	// Returns: nil when queued; service.ErrWorkerPoolSaturated when the queue is full; service.ErrWorkerPoolClosed after Close.
	Submit(task func()) error

	// Close stops accepting tasks and waits until queued and running tasks finish. Idempotent; always returns nil.
	Close() error
}
