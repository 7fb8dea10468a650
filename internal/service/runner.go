package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tenant-bulk-import/internal/domain"
	"tenant-bulk-import/internal/importer"
	"tenant-bulk-import/internal/logger"
	"tenant-bulk-import/internal/metrics"
	"tenant-bulk-import/internal/parser"
	"tenant-bulk-import/internal/repository"
	"tenant-bulk-import/internal/storage"
)

const (
	// DefaultImportTimeout is the timeout for import processing
	DefaultImportTimeout = 30 * time.Minute
	// DefaultStaleAfter is how long a processing job may go without a
	// progress write before another runner may take it over.
	DefaultStaleAfter = 5 * time.Minute
	// DefaultFetchTimeout bounds the blob download.
	DefaultFetchTimeout = 30 * time.Second

	finalWriteTimeout = 10 * time.Second
)

const (
	msgCancelled = "Import cancelled"
	msgTimedOut  = "Import timed out"
)

// RunnerConfig tunes a JobRunner. Zero values take the defaults.
type RunnerConfig struct {
	JobTimeout   time.Duration
	StaleAfter   time.Duration
	FetchTimeout time.Duration
}

// JobRunner drives one import job from pending to a terminal state.
type JobRunner struct {
	jobs      repository.ImportJobRepository
	blobs     storage.BlobStore
	registry  *importer.Registry
	processor *ChunkProcessor
	cfg       RunnerConfig
	now       func() time.Time
}

// NewJobRunner creates a JobRunner.
func NewJobRunner(jobs repository.ImportJobRepository, blobs storage.BlobStore, registry *importer.Registry, cfg RunnerConfig) *JobRunner {
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = DefaultImportTimeout
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = DefaultStaleAfter
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	return &JobRunner{
		jobs:      jobs,
		blobs:     blobs,
		registry:  registry,
		processor: NewChunkProcessor(),
		cfg:       cfg,
		now:       time.Now,
	}
}

// jobFailure ends a job with a user-facing message.
type jobFailure struct {
	message string
}

func (f *jobFailure) Error() string { return f.message }

func failJob(format string, args ...any) error {
	return &jobFailure{message: fmt.Sprintf(format, args...)}
}

// Run claims the job named by event and processes it. Delivering the same
// event twice is safe: a job that is terminal or held by a live runner is
// skipped, and a resumed job continues at its next unrecorded chunk.
func (r *JobRunner) Run(ctx context.Context, event domain.ImportEvent) error {
	log := logger.WithJob(event.JobID, event.TenantID, string(event.ImportType))

	token := uuid.New().String()
	job, err := r.jobs.Claim(ctx, event.JobID, token, r.now().Add(-r.cfg.StaleAfter))
	if err != nil {
		return fmt.Errorf("claim job %s: %w", event.JobID, err)
	}
	if job == nil {
		log.Info("Job not claimable, skipping")
		return nil
	}

	importType := string(job.ImportType)
	metrics.StartJob(importType)
	defer metrics.EndJob(importType)
	timer := metrics.NewTimer()

	log.Info("Import job started", "attempt", job.Attempts, "next_chunk", job.NextChunk)

	jobCtx, cancel := context.WithTimeout(ctx, r.cfg.JobTimeout)
	defer cancel()

	err = r.execute(jobCtx, log, job, token)

	var failure *jobFailure
	var message string
	switch {
	case err == nil:
		metrics.ObserveJobCompletion(importType, string(domain.JobStatusCompleted), timer.Seconds())
		log.Info("Import job completed",
			"total", job.TotalRecords,
			"successful", job.SuccessCount,
			"failed", job.FailureCount,
			"elapsed_seconds", timer.Seconds())
		return nil
	case errors.Is(err, domain.ErrLeaseLost):
		log.Warn("Job taken over by another runner, stopping", "error", err)
		return nil
	case ctx.Err() != nil:
		// Shutdown. The job keeps its lease until it goes stale and the
		// recovery sweeper hands it to a new runner.
		log.Warn("Import interrupted, left for recovery", "error", err)
		return nil
	case errors.As(err, &failure):
		message = failure.message
	case errors.Is(jobCtx.Err(), context.DeadlineExceeded):
		message = msgTimedOut
	default:
		message = err.Error()
	}

	writeCtx, writeCancel := context.WithTimeout(context.Background(), finalWriteTimeout)
	defer writeCancel()

	if ferr := r.jobs.Fail(writeCtx, job.ID, token, domain.RowError{Row: 0, Message: message}); ferr != nil {
		return fmt.Errorf("mark job %s failed (%s): %w", job.ID, message, ferr)
	}

	metrics.ObserveJobCompletion(importType, string(domain.JobStatusFailed), timer.Seconds())
	log.Error("Import job failed", "reason", message, "processed", job.ProcessedRecords)
	return nil
}

// execute does the work between claim and the terminal write. On success the
// job is completed; any returned error leaves the terminal write to Run.
func (r *JobRunner) execute(ctx context.Context, log *slog.Logger, job *domain.ImportJob, token string) error {
	strategy, ok := r.registry.Get(job.ImportType)
	if !ok {
		return failJob("Unsupported import type: %s", job.ImportType)
	}

	text, err := r.fetch(ctx, job.BlobURL)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		return failJob("Failed to download file: %v", err)
	}

	file, err := parser.Parse(text, strategy.Columns())
	if err != nil {
		return failJob("%v", err)
	}

	total := len(file.Records)
	if job.TotalRecords != total {
		if err := r.jobs.SetTotalRecords(ctx, job.ID, token, total); err != nil {
			return fmt.Errorf("set total records: %w", err)
		}
		job.TotalRecords = total
	}
	log.Info("File parsed", "total", total, "chunk_size", strategy.ChunkSize())

	scope := importer.Scope{TenantID: job.TenantID, JobID: job.ID}
	chunks := splitChunks(file.Records, strategy.ChunkSize())
	sample := job.EntitySample

	for index := job.NextChunk; index < len(chunks); index++ {
		cancelled, err := r.jobs.IsCancelRequested(ctx, job.ID)
		if err != nil {
			return fmt.Errorf("check cancellation: %w", err)
		}
		if cancelled {
			return failJob(msgCancelled)
		}

		chunkTimer := metrics.NewTimer()
		result, err := r.processor.ProcessChunk(ctx, strategy, scope, index, chunks[index])
		if err != nil {
			return fmt.Errorf("chunk %d: %w", index, err)
		}

		sample = domain.AppendCapped(sample, result.Entities)
		if err := r.jobs.ApplyChunk(ctx, job.ID, token, result, sample); err != nil {
			return fmt.Errorf("record chunk %d: %w", index, err)
		}

		job.ProcessedRecords += result.Processed()
		job.SuccessCount += result.SuccessCount
		job.FailureCount += result.FailedCount
		job.NextChunk = index + 1
		job.EntitySample = sample

		metrics.ObserveChunk(string(job.ImportType), chunkTimer, result.SuccessCount, result.FailedCount)
		log.Debug("Chunk done",
			"chunk", index,
			"progress", fmt.Sprintf("%d/%d", job.ProcessedRecords, job.TotalRecords),
			"successful", result.SuccessCount,
			"failed", result.FailedCount)
	}

	results := domain.ImportResults{
		Successful:         job.SuccessCount,
		Failed:             job.FailureCount,
		SuccessfulEntities: sample,
	}
	if results.SuccessfulEntities == nil {
		results.SuccessfulEntities = []domain.EntitySummary{}
	}
	if err := r.jobs.Complete(ctx, job.ID, token, results); err != nil {
		return fmt.Errorf("complete job: %w", err)
	}
	job.Status = domain.JobStatusCompleted
	job.Results = &results
	return nil
}

func (r *JobRunner) fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.FetchTimeout)
	defer cancel()
	return r.blobs.Fetch(ctx, url)
}
