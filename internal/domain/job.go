package domain

import (
	"math"
	"time"
)

// JobStatus represents the status of an import job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// IsTerminal reports whether no further transition is possible.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// ImportType discriminates which entity kind a job imports.
type ImportType string

const (
	ImportTypeUsers    ImportType = "users"
	ImportTypeProducts ImportType = "products"
)

// MaxResultEntities caps the successful entity sample kept on a job.
const MaxResultEntities = 100

// ImportJob represents a persisted import job.
type ImportJob struct {
	ID               string          `json:"id"`
	TenantID         string          `json:"tenant_id"`
	FileName         string          `json:"file_name"`
	UploadedBy       string          `json:"uploaded_by"`
	ImportType       ImportType      `json:"import_type"`
	Status           JobStatus       `json:"status"`
	BlobURL          string          `json:"-"`
	TotalRecords     int             `json:"total_records"`
	ProcessedRecords int             `json:"processed_records"`
	SuccessCount     int             `json:"successful_records"`
	FailureCount     int             `json:"failed_records"`
	Errors           []RowError      `json:"errors"`
	Results          *ImportResults  `json:"results,omitempty"`
	CancelRequested  bool            `json:"cancel_requested"`
	Attempts         int             `json:"attempts"`
	NextChunk        int             `json:"-"`
	EntitySample     []EntitySummary `json:"-"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	StartedAt        *time.Time      `json:"started_at,omitempty"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
}

// ProgressPercent returns processed/total as a rounded percentage.
func (j *ImportJob) ProgressPercent() int {
	if j.TotalRecords <= 0 {
		return 0
	}
	return int(math.Round(float64(j.ProcessedRecords) / float64(j.TotalRecords) * 100))
}

// RowError is one failed row. Row is the 1-based line in the uploaded file,
// header included.
type RowError struct {
	Row        int     `json:"row"`
	Identifier *string `json:"identifier"`
	Message    string  `json:"message"`
}

// EntitySummary identifies an entity created by an import.
type EntitySummary struct {
	ID      string            `json:"id"`
	Display map[string]string `json:"display,omitempty"`
}

// ImportResults is the summary written when a job completes.
type ImportResults struct {
	Successful         int             `json:"successful"`
	Failed             int             `json:"failed"`
	SuccessfulEntities []EntitySummary `json:"successful_entities"`
}

// ChunkResult is what processing one chunk produced.
type ChunkResult struct {
	Index        int
	SuccessCount int
	FailedCount  int
	Errors       []RowError
	Entities     []EntitySummary
}

// Processed returns the number of rows accounted for by the chunk.
func (r ChunkResult) Processed() int {
	return r.SuccessCount + r.FailedCount
}

// ImportEvent is the payload handed to the background scheduler.
type ImportEvent struct {
	JobID      string     `json:"job_id"`
	BlobURL    string     `json:"blob_url"`
	TenantID   string     `json:"tenant_id"`
	FileName   string     `json:"file_name"`
	ImportType ImportType `json:"import_type"`
}

// ValidImportTypes contains all supported import types.
var ValidImportTypes = []ImportType{ImportTypeUsers, ImportTypeProducts}

// IsValidImportType checks if an import type is supported.
func IsValidImportType(importType string) bool {
	for _, t := range ValidImportTypes {
		if string(t) == importType {
			return true
		}
	}
	return false
}

// AppendCapped appends entities to sample without growing past MaxResultEntities.
func AppendCapped(sample []EntitySummary, entities []EntitySummary) []EntitySummary {
	room := MaxResultEntities - len(sample)
	if room <= 0 {
		return sample
	}
	if len(entities) > room {
		entities = entities[:room]
	}
	return append(sample, entities...)
}
