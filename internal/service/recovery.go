package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"tenant-bulk-import/internal/domain"
	"tenant-bulk-import/internal/logger"
	"tenant-bulk-import/internal/metrics"
	"tenant-bulk-import/internal/repository"
)

const (
	// DefaultRecoveryInterval is how often the sweeper looks for orphaned jobs.
	DefaultRecoveryInterval = time.Minute
	// RecoveryBatchSize caps the jobs rescheduled per sweep.
	RecoveryBatchSize = 50
)

// RecoverySweeper reschedules jobs that were never picked up (lost event,
// full queue, restart) and processing jobs whose runner stopped writing
// progress.
type RecoverySweeper struct {
	jobs       repository.ImportJobRepository
	scheduler  Scheduler
	interval   time.Duration
	staleAfter time.Duration
	now        func() time.Time

	stopChan chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// NewRecoverySweeper creates a sweeper. A pending job is considered orphaned
// once it is older than one interval; a processing job once its last write is
// older than staleAfter.
func NewRecoverySweeper(jobs repository.ImportJobRepository, scheduler Scheduler, interval, staleAfter time.Duration) *RecoverySweeper {
	if interval <= 0 {
		interval = DefaultRecoveryInterval
	}
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &RecoverySweeper{
		jobs:       jobs,
		scheduler:  scheduler,
		interval:   interval,
		staleAfter: staleAfter,
		now:        time.Now,
		stopChan:   make(chan struct{}),
	}
}

// Start runs a sweep immediately and then every interval.
func (s *RecoverySweeper) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.sweepLogged()

		for {
			select {
			case <-ticker.C:
				s.sweepLogged()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Stop stops the sweeper and waits for a running sweep to finish.
func (s *RecoverySweeper) Stop() {
	s.once.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
}

func (s *RecoverySweeper) sweepLogged() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	n, err := s.Sweep(ctx)
	if err != nil {
		logger.Error("Recovery sweep failed", "error", err, "rescheduled", n)
		return
	}
	if n > 0 {
		logger.Info("Recovery sweep rescheduled jobs", "rescheduled", n)
	}
}

// Sweep reschedules resumable jobs once and returns how many were handed to
// the scheduler. Jobs the scheduler already holds are skipped.
func (s *RecoverySweeper) Sweep(ctx context.Context) (int, error) {
	now := s.now()
	jobs, err := s.jobs.ListResumable(ctx, now.Add(-s.interval), now.Add(-s.staleAfter), RecoveryBatchSize)
	if err != nil {
		return 0, err
	}

	scheduled := 0
	for _, job := range jobs {
		event := domain.ImportEvent{
			JobID:      job.ID,
			BlobURL:    job.BlobURL,
			TenantID:   job.TenantID,
			FileName:   job.FileName,
			ImportType: job.ImportType,
		}
		err := s.scheduler.Schedule(ctx, EventProcessImport, event)
		if errors.Is(err, ErrAlreadyScheduled) {
			continue
		}
		if err != nil {
			return scheduled, err
		}
		scheduled++
		metrics.JobsRecovered.Inc()
	}
	return scheduled, nil
}
