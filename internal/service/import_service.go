package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"tenant-bulk-import/internal/domain"
	"tenant-bulk-import/internal/logger"
	"tenant-bulk-import/internal/metrics"
	"tenant-bulk-import/internal/repository"
	"tenant-bulk-import/internal/storage"
)

// DefaultMaxUploadBytes is the upload limit when none is configured.
const DefaultMaxUploadBytes = 100 << 20

// csvContentTypes are the media types browsers and clients send for CSV.
var csvContentTypes = []string{
	"text/csv",
	"application/csv",
	"text/x-csv",
	"application/x-csv",
	"text/comma-separated-values",
	"application/vnd.ms-excel",
	"text/plain",
	"application/octet-stream",
}

// ImportService accepts uploads and exposes job status.
type ImportService struct {
	jobRepo   repository.ImportJobRepository
	blobs     storage.BlobStore
	scheduler Scheduler
	maxBytes  int64
	now       func() time.Time
}

// NewImportService creates a new ImportService.
func NewImportService(jobRepo repository.ImportJobRepository, blobs storage.BlobStore, scheduler Scheduler, maxBytes int64) *ImportService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &ImportService{
		jobRepo:   jobRepo,
		blobs:     blobs,
		scheduler: scheduler,
		maxBytes:  maxBytes,
		now:       time.Now,
	}
}

// StartImport stores the file, records a pending job and schedules it. The
// file type and size are checked before anything is written.
func (s *ImportService) StartImport(ctx context.Context, req StartImportRequest) (*domain.ImportJob, error) {
	if !domain.IsValidImportType(string(req.ImportType)) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidImportType, req.ImportType)
	}
	if !isCSV(req.FileName, req.ContentType) {
		return nil, domain.ErrInvalidFileType
	}
	if req.Size > s.maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	log := logger.FromContext(ctx).With(
		"tenant_id", req.TenantID,
		"import_type", string(req.ImportType),
		"file_name", req.FileName,
	)

	body := &limitedReader{r: io.LimitReader(req.Body, s.maxBytes+1), max: s.maxBytes}
	blobURL, err := s.blobs.Store(ctx, req.FileName, body)
	if body.exceeded {
		return nil, domain.ErrFileTooLarge
	}
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	now := s.now().UTC()
	job := &domain.ImportJob{
		ID:           uuid.New().String(),
		TenantID:     req.TenantID,
		FileName:     req.FileName,
		UploadedBy:   req.UploadedBy,
		ImportType:   req.ImportType,
		Status:       domain.JobStatusPending,
		BlobURL:      blobURL,
		Errors:       []domain.RowError{},
		EntitySample: []domain.EntitySummary{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.jobRepo.CreateImportJob(ctx, job); err != nil {
		return nil, fmt.Errorf("create import job: %w", err)
	}
	metrics.JobsCreated.WithLabelValues(string(job.ImportType)).Inc()

	event := domain.ImportEvent{
		JobID:      job.ID,
		BlobURL:    blobURL,
		TenantID:   job.TenantID,
		FileName:   job.FileName,
		ImportType: job.ImportType,
	}
	if err := s.scheduler.Schedule(ctx, EventProcessImport, event); err != nil {
		// The job is durable; the recovery sweeper schedules it later.
		log.Warn("Schedule failed, job left pending", "job_id", job.ID, "error", err)
	} else {
		log.Info("Import job queued", "job_id", job.ID)
	}

	return job, nil
}

// GetImportJob returns the job, or ErrJobNotFound when it does not exist or
// belongs to another tenant.
func (s *ImportService) GetImportJob(ctx context.Context, tenantID, id string) (*domain.ImportJob, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrJobNotFound
	}
	job, err := s.jobRepo.GetImportJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get import job: %w", err)
	}
	if job == nil || job.TenantID != tenantID {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}

// CancelImport asks the runner to stop the job at the next chunk boundary.
// It returns ErrJobTerminal when the job already finished.
func (s *ImportService) CancelImport(ctx context.Context, tenantID, id string) (*domain.ImportJob, error) {
	job, err := s.GetImportJob(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if job.Status.IsTerminal() {
		return job, domain.ErrJobTerminal
	}
	if err := s.jobRepo.RequestCancel(ctx, id); err != nil {
		return nil, fmt.Errorf("request cancel: %w", err)
	}
	job.CancelRequested = true
	return job, nil
}

func isCSV(fileName, contentType string) bool {
	if !strings.EqualFold(filepath.Ext(fileName), ".csv") {
		return false
	}
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return slices.Contains(csvContentTypes, strings.ToLower(mediaType))
}

// limitedReader fails the read once more than max bytes came through.
type limitedReader struct {
	r        io.Reader
	max      int64
	n        int64
	exceeded bool
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.n += int64(n)
	if l.n > l.max {
		l.exceeded = true
		return n, domain.ErrFileTooLarge
	}
	return n, err
}
