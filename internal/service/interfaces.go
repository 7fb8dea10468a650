package service

import (
	"context"
	"io"

	"tenant-bulk-import/internal/domain"
)

// ImportServiceInterface defines the interface for import operations.
// Used for dependency injection and mocking in tests.
type ImportServiceInterface interface {
	// StartImport stores the upload, creates a pending job and schedules it.
	StartImport(ctx context.Context, req StartImportRequest) (*domain.ImportJob, error)
	// GetImportJob returns the job when it belongs to tenantID.
	GetImportJob(ctx context.Context, tenantID, id string) (*domain.ImportJob, error)
	// CancelImport flags a running or pending job for cancellation.
	CancelImport(ctx context.Context, tenantID, id string) (*domain.ImportJob, error)
}

// Scheduler hands an import event to the background runner. Delivery is
// at-least-once.
type Scheduler interface {
	Schedule(ctx context.Context, eventName string, event domain.ImportEvent) error
}

// StartImportRequest is one uploaded file.
type StartImportRequest struct {
	TenantID    string
	UploadedBy  string
	ImportType  domain.ImportType
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}
