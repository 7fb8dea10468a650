package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tenant-bulk-import/internal/domain"
)

const jobColumns = `id, tenant_id, file_name, uploaded_by, import_type, status, blob_url,
	total_records, processed_records, success_count, failure_count,
	errors, results, entity_sample, cancel_requested, attempts, next_chunk,
	created_at, updated_at, started_at, completed_at`

// PostgresJobRepository implements ImportJobRepository using PostgreSQL.
//
// Every write made while a job runs is conditioned on the run token handed out
// by Claim, so a worker whose lease was taken over cannot change the job.
type PostgresJobRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresJobRepository creates a new PostgresJobRepository.
func NewPostgresJobRepository(pool *pgxpool.Pool) *PostgresJobRepository {
	return &PostgresJobRepository{pool: pool}
}

// CreateImportJob creates a new import job.
func (r *PostgresJobRepository) CreateImportJob(ctx context.Context, job *domain.ImportJob) error {
	errs, err := marshalJSON(job.Errors, "[]")
	if err != nil {
		return fmt.Errorf("marshal errors: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO import_jobs (id, tenant_id, file_name, uploaded_by, import_type, status, blob_url,
			total_records, processed_records, success_count, failure_count, errors,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, job.ID, job.TenantID, job.FileName, job.UploadedBy, job.ImportType, job.Status, job.BlobURL,
		job.TotalRecords, job.ProcessedRecords, job.SuccessCount, job.FailureCount, errs,
		job.CreatedAt, job.UpdatedAt)

	return classify("insert import job", err)
}

// GetImportJob retrieves an import job by ID.
func (r *PostgresJobRepository) GetImportJob(ctx context.Context, id string) (*domain.ImportJob, error) {
	job, err := scanJob(r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM import_jobs WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("get import job", err)
	}
	return job, nil
}

// Claim implements ImportJobRepository.
func (r *PostgresJobRepository) Claim(ctx context.Context, id, token string, staleBefore time.Time) (*domain.ImportJob, error) {
	job, err := scanJob(r.pool.QueryRow(ctx, `
		UPDATE import_jobs
		SET status = 'processing', run_token = $2, attempts = attempts + 1,
			started_at = COALESCE(started_at, NOW()), updated_at = NOW()
		WHERE id = $1
			AND (status = 'pending' OR (status = 'processing' AND updated_at < $3))
		RETURNING `+jobColumns, id, token, staleBefore))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("claim import job", err)
	}
	return job, nil
}

// SetTotalRecords implements ImportJobRepository.
func (r *PostgresJobRepository) SetTotalRecords(ctx context.Context, id, token string, total int) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE import_jobs
		SET total_records = $3, updated_at = NOW()
		WHERE id = $1 AND run_token = $2 AND status = 'processing'
	`, id, token, total)
	if err != nil {
		return classify("set total records", err)
	}
	return leaseHeld(tag.RowsAffected())
}

// ApplyChunk implements ImportJobRepository. A chunk is applied at most once:
// the update only matches while next_chunk still equals the chunk index.
func (r *PostgresJobRepository) ApplyChunk(ctx context.Context, id, token string, result domain.ChunkResult, sample []domain.EntitySummary) error {
	errs, err := marshalJSON(result.Errors, "[]")
	if err != nil {
		return fmt.Errorf("marshal errors: %w", err)
	}
	entities, err := marshalJSON(sample, "[]")
	if err != nil {
		return fmt.Errorf("marshal entity sample: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE import_jobs
		SET processed_records = processed_records + $4,
			success_count = success_count + $5,
			failure_count = failure_count + $6,
			errors = errors || $7::jsonb,
			entity_sample = $8::jsonb,
			next_chunk = $3 + 1,
			updated_at = NOW()
		WHERE id = $1 AND run_token = $2 AND status = 'processing' AND next_chunk = $3
	`, id, token, result.Index, result.Processed(), result.SuccessCount, result.FailedCount, errs, entities)
	if err != nil {
		return classify("apply chunk", err)
	}
	return leaseHeld(tag.RowsAffected())
}

// Complete implements ImportJobRepository.
func (r *PostgresJobRepository) Complete(ctx context.Context, id, token string, results domain.ImportResults) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE import_jobs
		SET status = 'completed', results = $3::jsonb, run_token = NULL,
			completed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND run_token = $2 AND status = 'processing'
	`, id, token, payload)
	if err != nil {
		return classify("complete import job", err)
	}
	return leaseHeld(tag.RowsAffected())
}

// Fail implements ImportJobRepository. The job's errors are replaced by cause.
func (r *PostgresJobRepository) Fail(ctx context.Context, id, token string, cause domain.RowError) error {
	payload, err := json.Marshal([]domain.RowError{cause})
	if err != nil {
		return fmt.Errorf("marshal cause: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE import_jobs
		SET status = 'failed', errors = $3::jsonb, run_token = NULL,
			completed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND run_token = $2 AND status = 'processing'
	`, id, token, payload)
	if err != nil {
		return classify("fail import job", err)
	}
	return leaseHeld(tag.RowsAffected())
}

// RequestCancel implements ImportJobRepository.
func (r *PostgresJobRepository) RequestCancel(ctx context.Context, id string) error {
	var status domain.JobStatus
	err := r.pool.QueryRow(ctx, `
		WITH target AS (
			SELECT id, status FROM import_jobs WHERE id = $1
		), flagged AS (
			UPDATE import_jobs j SET cancel_requested = TRUE
			FROM target
			WHERE j.id = target.id AND target.status IN ('pending', 'processing')
		)
		SELECT status FROM target
	`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrJobNotFound
	}
	if err != nil {
		return classify("request cancel", err)
	}
	if status.IsTerminal() {
		return domain.ErrJobTerminal
	}
	return nil
}

// IsCancelRequested implements ImportJobRepository.
func (r *PostgresJobRepository) IsCancelRequested(ctx context.Context, id string) (bool, error) {
	var requested bool
	err := r.pool.QueryRow(ctx, `SELECT cancel_requested FROM import_jobs WHERE id = $1`, id).Scan(&requested)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, domain.ErrJobNotFound
	}
	if err != nil {
		return false, classify("check cancel", err)
	}
	return requested, nil
}

// ListResumable implements ImportJobRepository.
func (r *PostgresJobRepository) ListResumable(ctx context.Context, pendingBefore, staleBefore time.Time, limit int) ([]*domain.ImportJob, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+`
		FROM import_jobs
		WHERE (status = 'pending' AND created_at < $1)
			OR (status = 'processing' AND updated_at < $2)
		ORDER BY created_at
		LIMIT $3
	`, pendingBefore, staleBefore, limit)
	if err != nil {
		return nil, classify("list resumable jobs", err)
	}
	defer rows.Close()

	var jobs []*domain.ImportJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, classify("scan import job", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list resumable jobs", err)
	}
	return jobs, nil
}

func scanJob(row pgx.Row) (*domain.ImportJob, error) {
	var job domain.ImportJob
	var errs, results, sample []byte

	err := row.Scan(&job.ID, &job.TenantID, &job.FileName, &job.UploadedBy, &job.ImportType, &job.Status, &job.BlobURL,
		&job.TotalRecords, &job.ProcessedRecords, &job.SuccessCount, &job.FailureCount,
		&errs, &results, &sample, &job.CancelRequested, &job.Attempts, &job.NextChunk,
		&job.CreatedAt, &job.UpdatedAt, &job.StartedAt, &job.CompletedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(errs, &job.Errors); err != nil {
		return nil, fmt.Errorf("unmarshal errors: %w", err)
	}
	if job.Errors == nil {
		job.Errors = []domain.RowError{}
	}
	if results != nil {
		job.Results = &domain.ImportResults{}
		if err := json.Unmarshal(results, job.Results); err != nil {
			return nil, fmt.Errorf("unmarshal results: %w", err)
		}
	}
	if err := json.Unmarshal(sample, &job.EntitySample); err != nil {
		return nil, fmt.Errorf("unmarshal entity sample: %w", err)
	}

	return &job, nil
}

func leaseHeld(rows int64) error {
	if rows == 0 {
		return domain.ErrLeaseLost
	}
	return nil
}

func marshalJSON(v any, empty string) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return []byte(empty), nil
	}
	return b, nil
}
