// Package parser turns uploaded CSV text into field-keyed records.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

var (
	// ErrEmptyFile is returned when the input has no header line.
	ErrEmptyFile = errors.New("CSV file is empty")
	// ErrNoDataRows is returned when the input has a header but no data rows.
	ErrNoDataRows = errors.New("CSV file must contain a header row and at least one data row")
)

// MissingColumnsError lists required fields no header column resolved to.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("Required columns missing: %s", strings.Join(e.Missing, ", "))
}

// Column describes one target field and the header names accepted for it.
type Column struct {
	Field    string
	Aliases  []string
	Required bool
}

// Record is one data row keyed by target field.
type Record struct {
	// Index is the 0-based position among data rows.
	Index  int
	Values map[string]string
}

// Get returns the trimmed value of field, or "" when the column is absent.
func (r Record) Get(field string) string {
	return r.Values[field]
}

// Line returns the 1-based line of the record in the file, header included.
func (r Record) Line() int {
	return r.Index + 2
}

// File is the result of parsing one CSV upload.
type File struct {
	Header []string
	// Mapping maps target field to header column index.
	Mapping map[string]int
	Records []Record
}

// Parse parses text against columns. It performs no I/O and returns the same
// records for the same input.
//
// Each line is tokenized on its own, so an unbalanced quote only affects the
// line it appears on. Quoted fields cannot span lines.
func Parse(text string, columns []Column) (*File, error) {
	text = strings.TrimPrefix(text, utf8BOM)
	lines := strings.Split(text, "\n")

	var header []string
	next := 0
	for ; next < len(lines) && header == nil; next++ {
		row, err := splitLine(lines[next])
		if err != nil {
			return nil, fmt.Errorf("read CSV header: %w", err)
		}
		if !isBlank(row) {
			header = row
		}
	}
	if header == nil {
		return nil, ErrEmptyFile
	}

	mapping, err := ResolveHeader(header, columns)
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, line := range lines[next:] {
		row, err := splitLine(line)
		if err != nil {
			return nil, fmt.Errorf("read CSV row %d: %w", len(records)+2, err)
		}
		if isBlank(row) {
			continue
		}

		values := make(map[string]string, len(mapping))
		for field, idx := range mapping {
			if idx < len(row) {
				values[field] = strings.TrimSpace(row[idx])
			}
		}
		records = append(records, Record{Index: len(records), Values: values})
	}

	if len(records) == 0 {
		return nil, ErrNoDataRows
	}

	return &File{Header: header, Mapping: mapping, Records: records}, nil
}

// splitLine tokenizes a single line. A blank line yields one empty cell.
func splitLine(line string) ([]string, error) {
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" {
		return []string{""}, nil
	}

	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	row, err := reader.Read()
	if err == io.EOF {
		return []string{""}, nil
	}
	return row, err
}

// ResolveHeader maps each column to the first header cell matching one of its
// aliases, ignoring case and surrounding whitespace. Unknown header cells are
// ignored.
func ResolveHeader(header []string, columns []Column) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		key := normalize(name)
		if _, seen := positions[key]; !seen {
			positions[key] = i
		}
	}

	mapping := make(map[string]int, len(columns))
	var missing []string
	for _, col := range columns {
		idx, ok := lookup(positions, col)
		if ok {
			mapping[col.Field] = idx
			continue
		}
		if col.Required {
			missing = append(missing, col.Field)
		}
	}

	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}
	return mapping, nil
}

func lookup(positions map[string]int, col Column) (int, bool) {
	best := -1
	for _, alias := range append([]string{col.Field}, col.Aliases...) {
		if idx, ok := positions[normalize(alias)]; ok && (best == -1 || idx < best) {
			best = idx
		}
	}
	return best, best >= 0
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isBlank(row []string) bool {
	return len(row) == 1 && strings.TrimSpace(row[0]) == ""
}
