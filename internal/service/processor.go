package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tenant-bulk-import/internal/domain"
	"tenant-bulk-import/internal/importer"
	"tenant-bulk-import/internal/parser"
)

// ChunkProcessor runs the rows of one chunk through a strategy.
type ChunkProcessor struct{}

// NewChunkProcessor creates a ChunkProcessor.
func NewChunkProcessor() *ChunkProcessor {
	return &ChunkProcessor{}
}

// ProcessChunk processes records in order. Every record ends up as either a
// success or a row error. Only a store outage or a cancelled context stops the
// chunk early; the partial result is discarded by the caller.
func (p *ChunkProcessor) ProcessChunk(ctx context.Context, s importer.Strategy, scope importer.Scope, index int, records []parser.Record) (domain.ChunkResult, error) {
	result := domain.ChunkResult{
		Index:  index,
		Errors: make([]domain.RowError, 0),
	}

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		out, err := p.processRow(ctx, s, scope, rec)
		if err != nil {
			if isFatal(err) {
				return result, fmt.Errorf("row %d: %w", rec.Line(), err)
			}
			result.FailedCount++
			result.Errors = append(result.Errors, domain.RowError{
				Row:        rec.Line(),
				Identifier: out.Identifier,
				Message:    err.Error(),
			})
			continue
		}

		if out.Failed() {
			result.FailedCount++
			result.Errors = append(result.Errors, domain.RowError{
				Row:        rec.Line(),
				Identifier: out.Identifier,
				Message:    strings.Join(out.Failure, "; "),
			})
			continue
		}

		result.SuccessCount++
		if out.Entity != nil {
			result.Entities = append(result.Entities, *out.Entity)
		}
	}

	return result, nil
}

func (p *ChunkProcessor) processRow(ctx context.Context, s importer.Strategy, scope importer.Scope, rec parser.Record) (out importer.RowOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected error: %v", r)
		}
	}()
	return s.ProcessRow(ctx, scope, rec)
}

func isFatal(err error) bool {
	return errors.Is(err, domain.ErrStoreUnavailable) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// splitChunks slices records into consecutive chunks of at most size.
func splitChunks(records []parser.Record, size int) [][]parser.Record {
	if size < 1 {
		size = 1
	}
	chunks := make([][]parser.Record, 0, (len(records)+size-1)/size)
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		chunks = append(chunks, records[start:end])
	}
	return chunks
}
