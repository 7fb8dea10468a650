// Package importer holds the per-entity import strategies: which CSV columns
// an entity accepts, how a row is validated, how duplicates are detected and
// which records a row writes.
package importer

import (
	"context"
	"errors"
	"fmt"

	"tenant-bulk-import/internal/domain"
	"tenant-bulk-import/internal/parser"
)

// Scope identifies the job a row is processed for.
type Scope struct {
	TenantID string
	JobID    string
	// Row is the file line of the row being written.
	Row int
}

// RowOutcome is the result of a row that did not hit an unexpected error.
// Exactly one of Entity or Failure is set.
type RowOutcome struct {
	Identifier *string
	Entity     *domain.EntitySummary
	Failure    []string
}

// Failed reports whether the row was rejected.
func (o RowOutcome) Failed() bool {
	return len(o.Failure) > 0
}

// Strategy imports one entity kind.
type Strategy interface {
	Type() domain.ImportType
	Columns() []parser.Column
	ChunkSize() int
	// ProcessRow validates, checks duplicates and writes one record. A non-nil
	// error is an unexpected failure.
	ProcessRow(ctx context.Context, scope Scope, rec parser.Record) (RowOutcome, error)
}

// RowHandler implements the entity specific steps of a Strategy on a typed row.
type RowHandler[R any] interface {
	Decode(rec parser.Record) R
	Identifier(row R) string
	Validate(row R) []string
	FindExisting(ctx context.Context, tenantID string, row R) (*domain.ExistingRecord, error)
	DuplicateMessage(row R) string
	Write(ctx context.Context, scope Scope, row R) (string, error)
	Summary(id string, row R) domain.EntitySummary
}

type strategy[R any] struct {
	importType domain.ImportType
	columns    []parser.Column
	chunkSize  int
	handler    RowHandler[R]
}

// NewStrategy builds a Strategy from a typed row handler.
func NewStrategy[R any](importType domain.ImportType, columns []parser.Column, chunkSize int, handler RowHandler[R]) Strategy {
	return &strategy[R]{
		importType: importType,
		columns:    columns,
		chunkSize:  chunkSize,
		handler:    handler,
	}
}

func (s *strategy[R]) Type() domain.ImportType  { return s.importType }
func (s *strategy[R]) Columns() []parser.Column { return s.columns }
func (s *strategy[R]) ChunkSize() int           { return s.chunkSize }

func (s *strategy[R]) ProcessRow(ctx context.Context, scope Scope, rec parser.Record) (out RowOutcome, err error) {
	row := s.handler.Decode(rec)
	scope.Row = rec.Line()
	out.Identifier = optional(s.handler.Identifier(row))

	// A panic past this point still reports the row's identifier.
	defer func() {
		if r := recover(); r != nil {
			out.Failure, out.Entity = nil, nil
			err = fmt.Errorf("unexpected error: %v", r)
		}
	}()

	if violations := s.handler.Validate(row); len(violations) > 0 {
		out.Failure = violations
		return out, nil
	}

	existing, err := s.handler.FindExisting(ctx, scope.TenantID, row)
	if err != nil {
		return out, fmt.Errorf("check duplicate: %w", err)
	}
	if existing != nil {
		// Written by an earlier delivery of this same job.
		if existing.CreatedBy(scope.JobID, scope.Row) {
			summary := s.handler.Summary(existing.ID, row)
			out.Entity = &summary
			return out, nil
		}
		out.Failure = []string{s.handler.DuplicateMessage(row)}
		return out, nil
	}

	id, err := s.handler.Write(ctx, scope, row)
	if errors.Is(err, domain.ErrDuplicate) {
		out.Failure = []string{s.handler.DuplicateMessage(row)}
		return out, nil
	}
	if err != nil {
		return out, err
	}

	summary := s.handler.Summary(id, row)
	out.Entity = &summary
	return out, nil
}

// Registry looks strategies up by import type.
type Registry struct {
	strategies map[domain.ImportType]Strategy
}

// NewRegistry creates a registry of the given strategies.
func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{strategies: make(map[domain.ImportType]Strategy, len(strategies))}
	for _, s := range strategies {
		r.strategies[s.Type()] = s
	}
	return r
}

// Get returns the strategy for importType.
func (r *Registry) Get(importType domain.ImportType) (Strategy, bool) {
	s, ok := r.strategies[importType]
	return s, ok
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
