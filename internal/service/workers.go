package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tenant-bulk-import/internal/domain"
	"tenant-bulk-import/internal/logger"
	"tenant-bulk-import/internal/metrics"
)

const (
	// EventProcessImport is the event that runs an import job.
	EventProcessImport = "import/process"

	// QueueSendTimeout is the timeout for sending tasks to the queue
	QueueSendTimeout = 5 * time.Second
)

var (
	// ErrQueueFull is returned when no queue slot frees up within the send timeout.
	ErrQueueFull = errors.New("import queue is full")
	// ErrPoolClosed is returned by Schedule after Close.
	ErrPoolClosed = errors.New("worker pool is shutting down")
	// ErrAlreadyScheduled is returned when the job is already queued or
	// running in this pool.
	ErrAlreadyScheduled = errors.New("import job is already scheduled")
)

// EventHandler processes one scheduled event.
type EventHandler func(ctx context.Context, event domain.ImportEvent) error

type poolTask struct {
	name  string
	event domain.ImportEvent
}

// WorkerPool is an in-process Scheduler: a bounded queue drained by a fixed
// number of workers, so at most size jobs run at once. A job id is held from
// Schedule until its handler returns and cannot be scheduled twice meanwhile.
type WorkerPool struct {
	handlers    map[string]EventHandler
	scheduled   map[string]struct{}
	queue       chan poolTask
	stopChan    chan struct{}
	sendTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed bool
	mu     sync.RWMutex
	once   sync.Once
}

// NewWorkerPool starts size workers reading from a queue of queueSize events.
func NewWorkerPool(size, queueSize int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	if queueSize < 1 {
		queueSize = size
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &WorkerPool{
		handlers:    make(map[string]EventHandler),
		scheduled:   make(map[string]struct{}),
		queue:       make(chan poolTask, queueSize),
		stopChan:    make(chan struct{}),
		sendTimeout: QueueSendTimeout,
		ctx:         ctx,
		cancel:      cancel,
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	return p
}

// Register binds handler to eventName. Register before scheduling events.
func (p *WorkerPool) Register(eventName string, handler EventHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[eventName] = handler
}

// Schedule queues event for a worker. It waits at most the send timeout for a
// free slot and returns ErrQueueFull after that. A job that is already queued
// or running returns ErrAlreadyScheduled without waiting.
func (p *WorkerPool) Schedule(ctx context.Context, eventName string, event domain.ImportEvent) error {
	if err := p.hold(eventName, event.JobID); err != nil {
		return err
	}

	timer := time.NewTimer(p.sendTimeout)
	defer timer.Stop()

	var err error
	select {
	case p.queue <- poolTask{name: eventName, event: event}:
		metrics.QueueDepth.Set(float64(len(p.queue)))
		return nil
	case <-p.stopChan:
		err = ErrPoolClosed
	case <-ctx.Done():
		err = ctx.Err()
	case <-timer.C:
		err = ErrQueueFull
	}
	p.release(event.JobID)
	return err
}

// hold checks that eventName can be scheduled and reserves jobID.
func (p *WorkerPool) hold(eventName, jobID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}
	if _, known := p.handlers[eventName]; !known {
		return fmt.Errorf("no handler registered for event %q", eventName)
	}
	if jobID == "" {
		return nil
	}
	if _, dup := p.scheduled[jobID]; dup {
		return ErrAlreadyScheduled
	}
	p.scheduled[jobID] = struct{}{}
	return nil
}

func (p *WorkerPool) release(jobID string) {
	if jobID == "" {
		return
	}
	p.mu.Lock()
	delete(p.scheduled, jobID)
	p.mu.Unlock()
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case task := <-p.queue:
			metrics.QueueDepth.Set(float64(len(p.queue)))
			p.run(id, task)
		case <-p.stopChan:
			return
		}
	}
}

func (p *WorkerPool) run(id int, task poolTask) {
	log := logger.WithJob(task.event.JobID, task.event.TenantID, string(task.event.ImportType)).
		With("worker", id, "event", task.name)

	defer p.release(task.event.JobID)
	defer func() {
		if r := recover(); r != nil {
			log.Error("event handler panicked", "panic", r)
		}
	}()

	p.mu.RLock()
	handler := p.handlers[task.name]
	p.mu.RUnlock()

	if err := handler(p.ctx, task.event); err != nil {
		log.Error("event handler failed", "error", err)
	}
}

// Close stops accepting events, cancels running handlers and waits for the
// workers to exit. Events still queued are dropped; their jobs stay in the
// store for the recovery sweeper.
func (p *WorkerPool) Close() {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()

		p.cancel()
		close(p.stopChan)
		p.wg.Wait()
		metrics.QueueDepth.Set(0)
	})
}
