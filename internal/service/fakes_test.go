package service_test

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"tenant-bulk-import/internal/domain"
)

// memJobRepo is an in-memory ImportJobRepository with the same lease and
// chunk-ordering rules as the Postgres implementation.
type memJobRepo struct {
	mu     sync.Mutex
	jobs   map[string]*domain.ImportJob
	tokens map[string]string

	// cancelAfterChunks flags the job for cancellation once this many chunks
	// were applied. Zero disables it.
	cancelAfterChunks int
	applied           int

	// history holds a snapshot after every progress write.
	history []domain.ImportJob
}

func newMemJobRepo(jobs ...*domain.ImportJob) *memJobRepo {
	r := &memJobRepo{
		jobs:   make(map[string]*domain.ImportJob),
		tokens: make(map[string]string),
	}
	for _, j := range jobs {
		r.jobs[j.ID] = cloneJob(j)
	}
	return r
}

func cloneJob(j *domain.ImportJob) *domain.ImportJob {
	c := *j
	c.Errors = slices.Clone(j.Errors)
	c.EntitySample = slices.Clone(j.EntitySample)
	return &c
}

func (r *memJobRepo) snapshot(j *domain.ImportJob) {
	r.history = append(r.history, *cloneJob(j))
}

func (r *memJobRepo) held(id, token string) (*domain.ImportJob, error) {
	j, ok := r.jobs[id]
	if !ok || r.tokens[id] != token || j.Status != domain.JobStatusProcessing {
		return nil, domain.ErrLeaseLost
	}
	return j, nil
}

func (r *memJobRepo) CreateImportJob(_ context.Context, job *domain.ImportJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = cloneJob(job)
	return nil
}

func (r *memJobRepo) GetImportJob(_ context.Context, id string) (*domain.ImportJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	return cloneJob(j), nil
}

func (r *memJobRepo) Claim(_ context.Context, id, token string, staleBefore time.Time) (*domain.ImportJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	stale := j.Status == domain.JobStatusProcessing && j.UpdatedAt.Before(staleBefore)
	if j.Status != domain.JobStatusPending && !stale {
		return nil, nil
	}
	now := time.Now()
	j.Status = domain.JobStatusProcessing
	j.Attempts++
	j.UpdatedAt = now
	if j.StartedAt == nil {
		j.StartedAt = &now
	}
	r.tokens[id] = token
	r.snapshot(j)
	return cloneJob(j), nil
}

func (r *memJobRepo) SetTotalRecords(_ context.Context, id, token string, total int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, err := r.held(id, token)
	if err != nil {
		return err
	}
	j.TotalRecords = total
	j.UpdatedAt = time.Now()
	r.snapshot(j)
	return nil
}

func (r *memJobRepo) ApplyChunk(_ context.Context, id, token string, result domain.ChunkResult, sample []domain.EntitySummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, err := r.held(id, token)
	if err != nil {
		return err
	}
	if j.NextChunk != result.Index {
		return domain.ErrLeaseLost
	}
	j.ProcessedRecords += result.Processed()
	j.SuccessCount += result.SuccessCount
	j.FailureCount += result.FailedCount
	j.Errors = append(j.Errors, result.Errors...)
	j.EntitySample = slices.Clone(sample)
	j.NextChunk = result.Index + 1
	j.UpdatedAt = time.Now()
	r.applied++
	if r.cancelAfterChunks > 0 && r.applied >= r.cancelAfterChunks {
		j.CancelRequested = true
	}
	r.snapshot(j)
	return nil
}

func (r *memJobRepo) Complete(_ context.Context, id, token string, results domain.ImportResults) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, err := r.held(id, token)
	if err != nil {
		return err
	}
	now := time.Now()
	j.Status = domain.JobStatusCompleted
	j.Results = &results
	j.CompletedAt = &now
	j.UpdatedAt = now
	delete(r.tokens, id)
	r.snapshot(j)
	return nil
}

func (r *memJobRepo) Fail(_ context.Context, id, token string, cause domain.RowError) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, err := r.held(id, token)
	if err != nil {
		return err
	}
	now := time.Now()
	j.Status = domain.JobStatusFailed
	j.Errors = []domain.RowError{cause}
	j.CompletedAt = &now
	j.UpdatedAt = now
	delete(r.tokens, id)
	r.snapshot(j)
	return nil
}

func (r *memJobRepo) RequestCancel(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return domain.ErrJobNotFound
	}
	if j.Status.IsTerminal() {
		return domain.ErrJobTerminal
	}
	j.CancelRequested = true
	return nil
}

func (r *memJobRepo) IsCancelRequested(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return false, domain.ErrJobNotFound
	}
	return j.CancelRequested, nil
}

func (r *memJobRepo) ListResumable(_ context.Context, pendingBefore, staleBefore time.Time, limit int) ([]*domain.ImportJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.ImportJob
	for _, j := range r.jobs {
		if (j.Status == domain.JobStatusPending && j.CreatedAt.Before(pendingBefore)) ||
			(j.Status == domain.JobStatusProcessing && j.UpdatedAt.Before(staleBefore)) {
			out = append(out, cloneJob(j))
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memJobRepo) job(id string) *domain.ImportJob {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneJob(r.jobs[id])
}

func (r *memJobRepo) progress() []domain.ImportJob {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.history)
}

// memUserRepo is an in-memory UserRepository keyed by tenant and email.
type memUserRepo struct {
	mu       sync.Mutex
	existing map[string]*domain.ExistingRecord
	users    []*domain.User
	points   []*domain.LoyaltyPoints

	// failOn makes CreateWithLoyalty return the error for the email.
	failOn map[string]error
	// block makes CreateWithLoyalty wait for its context to end.
	block bool
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		existing: make(map[string]*domain.ExistingRecord),
		failOn:   make(map[string]error),
	}
}

func userKey(tenantID, email string) string {
	return tenantID + "|" + strings.ToLower(email)
}

func (r *memUserRepo) FindByEmail(_ context.Context, tenantID, email string) (*domain.ExistingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.existing[userKey(tenantID, email)], nil
}

func (r *memUserRepo) CreateWithLoyalty(ctx context.Context, user *domain.User, points *domain.LoyaltyPoints) error {
	if r.block {
		<-ctx.Done()
		return ctx.Err()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.failOn[user.Email]; ok {
		return err
	}
	key := userKey(user.TenantID, user.Email)
	if _, ok := r.existing[key]; ok {
		return domain.ErrDuplicate
	}
	jobID, row := user.ImportJobID, user.ImportRow
	r.existing[key] = &domain.ExistingRecord{ID: user.ID, ImportJobID: &jobID, ImportRow: &row}
	r.users = append(r.users, user)
	r.points = append(r.points, points)
	return nil
}

func (r *memUserRepo) created() []*domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.users)
}

// memBlobs serves fixed contents by URL.
type memBlobs map[string]string

func (b memBlobs) Fetch(_ context.Context, url string) (string, error) {
	text, ok := b[url]
	if !ok {
		return "", fmt.Errorf("fetch %s: status 404", url)
	}
	return text, nil
}

func (b memBlobs) Store(_ context.Context, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	url := "mem://" + name
	b[url] = string(data)
	return url, nil
}
