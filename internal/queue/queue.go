package queue

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrClosed is returned when submitting to a closed queue
var ErrClosed = errors.New("queue closed")

// Job is a unit of deferred work
type Job func(ctx context.Context) error

// Queue runs jobs one at a time on a single goroutine, in submission order.
// Job errors are logged and otherwise ignored.
type Queue struct {
	jobs   chan Job
	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	closeMu sync.RWMutex
	closed  bool
}

// New starts a queue buffering up to capacity pending jobs
func New(capacity int, logger *zap.Logger) *Queue {
	if capacity <= 0 {
		capacity = 16
	}
	ctx, cancel := context.WithCancel(context.Background())
	q := &Queue{
		jobs:   make(chan Job, capacity),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	q.wg.Add(1)
	go q.worker()

	return q
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for job := range q.jobs {
		if err := job(q.ctx); err != nil {
			q.logger.Warn("Queued write failed", zap.Error(err))
		}
	}
}

// Submit enqueues job. It blocks while the buffer is full.
func (q *Queue) Submit(job Job) error {
	q.closeMu.RLock()
	defer q.closeMu.RUnlock()
	if q.closed {
		return ErrClosed
	}
	q.jobs <- job
	return nil
}

// Drain waits until every job submitted before the call has run
func (q *Queue) Drain(ctx context.Context) error {
	done := make(chan struct{})
	if err := q.Submit(func(context.Context) error {
		close(done)
		return nil
	}); err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting jobs, runs the pending ones and stops the worker
func (q *Queue) Close() {
	q.closeMu.Lock()
	if q.closed {
		q.closeMu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.closeMu.Unlock()

	q.wg.Wait()
	q.cancel()
}
