package domain

import "errors"

var (
	// ErrInvalidFileType is returned when an upload is not a CSV file.
	ErrInvalidFileType = errors.New("only CSV files are accepted")
	// ErrInvalidImportType is returned for an import type with no strategy.
	ErrInvalidImportType = errors.New("invalid import type")
	// ErrFileTooLarge is returned when an upload exceeds the configured limit.
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")
	// ErrDuplicate is returned by repositories on a uniqueness violation.
	ErrDuplicate = errors.New("record already exists")
	// ErrStoreUnavailable marks data store failures that must fail the whole job.
	ErrStoreUnavailable = errors.New("data store unavailable")
	// ErrLeaseLost is returned when another runner took over a job.
	ErrLeaseLost = errors.New("job lease lost")
	// ErrJobTerminal is returned when an operation needs a non-terminal job.
	ErrJobTerminal = errors.New("job already finished")
	// ErrJobNotFound is returned when no job exists for the given id and tenant.
	ErrJobNotFound = errors.New("import job not found")
)
