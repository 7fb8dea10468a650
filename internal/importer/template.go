package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"tenant-bulk-import/internal/domain"
)

// XLSXTemplateNote tells users the workbook is a reference copy. Uploads
// accept CSV only.
const XLSXTemplateNote = "Reference copy only. Imports accept CSV files: save the first sheet as CSV (UTF-8) before uploading."

const instructionsSheet = "Instructions"

// Template is the header row and example rows offered for download.
type Template struct {
	Name    string
	Headers []string
	Samples [][]string
}

// TemplateFor returns the template of an import type.
func TemplateFor(importType domain.ImportType) (Template, bool) {
	switch importType {
	case domain.ImportTypeUsers:
		return UserTemplate, true
	case domain.ImportTypeProducts:
		return ProductTemplate, true
	default:
		return Template{}, false
	}
}

// WriteCSVTemplate writes t as CSV.
func WriteCSVTemplate(w io.Writer, t Template) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(t.Samples); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	return nil
}

// WriteXLSXTemplate writes t as a workbook whose first sheet holds the
// template and whose second sheet carries XLSXTemplateNote.
func WriteXLSXTemplate(w io.Writer, t Template) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, t.Name); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	sheet = t.Name

	rows := append([][]string{t.Headers}, t.Samples...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), 1)
		_ = f.SetCellStyle(sheet, "A1", last, style)
	}

	if _, err := f.NewSheet(instructionsSheet); err != nil {
		return fmt.Errorf("add instructions: %w", err)
	}
	if err := f.SetCellStr(instructionsSheet, "A1", XLSXTemplateNote); err != nil {
		return fmt.Errorf("write instructions: %w", err)
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
