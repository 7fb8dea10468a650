package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"tenant-bulk-import/internal/domain"
)

// Error report formats.
const (
	FormatCSV    = "csv"
	FormatNDJSON = "ndjson"
)

// IsValidReportFormat checks if a report format is supported.
func IsValidReportFormat(format string) bool {
	return format == FormatCSV || format == FormatNDJSON
}

// WriteErrorReport writes the row errors of a job as CSV or NDJSON and
// returns how many rows were written.
func WriteErrorReport(w io.Writer, format string, errs []domain.RowError) (int, error) {
	switch format {
	case FormatCSV:
		return writeErrorsCSV(w, errs)
	case FormatNDJSON:
		return writeErrorsNDJSON(w, errs)
	default:
		return 0, fmt.Errorf("unsupported report format: %s", format)
	}
}

func writeErrorsCSV(w io.Writer, errs []domain.RowError) (int, error) {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"row", "identifier", "message"}); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	count := 0
	for _, e := range errs {
		identifier := ""
		if e.Identifier != nil {
			identifier = *e.Identifier
		}
		if err := writer.Write([]string{strconv.Itoa(e.Row), identifier, e.Message}); err != nil {
			return count, fmt.Errorf("write row: %w", err)
		}
		count++
	}

	writer.Flush()
	return count, writer.Error()
}

func writeErrorsNDJSON(w io.Writer, errs []domain.RowError) (int, error) {
	encoder := json.NewEncoder(w)
	count := 0
	for _, e := range errs {
		if err := encoder.Encode(e); err != nil {
			return count, fmt.Errorf("encode row: %w", err)
		}
		count++
	}
	return count, nil
}
