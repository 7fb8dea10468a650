package repository

import (
	"context"
	"time"

	"tenant-bulk-import/internal/domain"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// FindByEmail returns the user with the email in the tenant, or nil.
	FindByEmail(ctx context.Context, tenantID, email string) (*domain.ExistingRecord, error)
	// CreateWithLoyalty inserts the user and its loyalty points in one transaction.
	CreateWithLoyalty(ctx context.Context, user *domain.User, points *domain.LoyaltyPoints) error
}

// ProductRepository defines methods for product data access.
type ProductRepository interface {
	// FindBySKU returns the product with the SKU in the tenant, or nil.
	FindBySKU(ctx context.Context, tenantID, sku string) (*domain.ExistingRecord, error)
	// CreateWithStock inserts the product and, when non-nil, its inventory and
	// stock movement in one transaction.
	CreateWithStock(ctx context.Context, product *domain.Product, inventory *domain.Inventory, movement *domain.StockMovement) error
}

// ImportJobRepository defines methods for import job data access.
type ImportJobRepository interface {
	CreateImportJob(ctx context.Context, job *domain.ImportJob) error
	// GetImportJob returns nil when no job has the id.
	GetImportJob(ctx context.Context, id string) (*domain.ImportJob, error)
	// Claim moves a pending job, or a processing job idle since staleBefore,
	// to processing under token. It returns nil when the job is not claimable.
	Claim(ctx context.Context, id, token string, staleBefore time.Time) (*domain.ImportJob, error)
	// SetTotalRecords records the parsed row count once.
	SetTotalRecords(ctx context.Context, id, token string, total int) error
	// ApplyChunk adds a chunk's counters and errors and advances NextChunk.
	ApplyChunk(ctx context.Context, id, token string, result domain.ChunkResult, sample []domain.EntitySummary) error
	Complete(ctx context.Context, id, token string, results domain.ImportResults) error
	Fail(ctx context.Context, id, token string, cause domain.RowError) error
	// RequestCancel flags a non-terminal job for cancellation.
	RequestCancel(ctx context.Context, id string) error
	IsCancelRequested(ctx context.Context, id string) (bool, error)
	// ListResumable returns pending jobs created before pendingBefore and
	// processing jobs idle since staleBefore.
	ListResumable(ctx context.Context, pendingBefore, staleBefore time.Time, limit int) ([]*domain.ImportJob, error)
}
