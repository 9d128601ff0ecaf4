// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"

	"github.com/chloeskafte/gardening-mvp/internal/formatters"
	"github.com/chloeskafte/gardening-mvp/internal/formatters/shared"
	"github.com/chloeskafte/gardening-mvp/internal/report"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	entitiesSheet = "Entities"
)

// Formatter writes the report as an Excel workbook: a Summary sheet, one
// sheet per vocabulary table and an Entities sheet when entities were found
type Formatter struct{}

// NewFormatter creates a new xlsx formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "xlsx"
}

func (f *Formatter) Description() string {
	return "Excel workbook with a summary sheet and one sheet per table"
}

func (f *Formatter) FileExtension() string {
	return ".xlsx"
}

func (f *Formatter) Format(r *report.Report, options formatters.FormatterOptions) ([]byte, error) {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("xlsx summary sheet: %w", err)
	}

	headerStyle, err := book.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx style: %w", err)
	}

	sw := &sheetWriter{book: book, headerStyle: headerStyle}

	sw.writeSummary(r)
	for _, section := range shared.Sections(r) {
		sw.writeMatches(section)
	}
	if labels := shared.EntityLabels(r); len(labels) > 0 {
		sw.writeEntities(r, labels)
	}
	if sw.err != nil {
		return nil, sw.err
	}

	index, _ := book.GetSheetIndex(summarySheet)
	book.SetActiveSheet(index)

	buf, err := book.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the first error so row writes can be chained
type sheetWriter struct {
	book        *excelize.File
	headerStyle int
	err         error
}

func (w *sheetWriter) ensureSheet(sheet string) {
	if w.err != nil {
		return
	}
	if index, _ := w.book.GetSheetIndex(sheet); index == -1 {
		if _, err := w.book.NewSheet(sheet); err != nil {
			w.err = fmt.Errorf("xlsx sheet %s: %w", sheet, err)
		}
	}
}

func (w *sheetWriter) row(sheet string, row int, values ...any) {
	if w.err != nil {
		return
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			w.err = err
			return
		}
		if err := w.book.SetCellValue(sheet, cell, v); err != nil {
			w.err = fmt.Errorf("xlsx cell %s!%s: %w", sheet, cell, err)
			return
		}
	}
}

func (w *sheetWriter) header(sheet string, row int, values ...any) {
	w.row(sheet, row, values...)
	if w.err != nil || len(values) == 0 {
		return
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(values), row)
	if err := w.book.SetCellStyle(sheet, first, last, w.headerStyle); err != nil {
		w.err = fmt.Errorf("xlsx style %s: %w", sheet, err)
	}
}

func (w *sheetWriter) writeSummary(r *report.Report) {
	sheet := summarySheet
	doc := r.Document

	w.header(sheet, 1, "Field", "Value")
	w.row(sheet, 2, "Source", doc.Source)
	w.row(sheet, 3, "Run ID", doc.RunID)
	w.row(sheet, 4, "Generated", doc.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	w.row(sheet, 5, "Pages", doc.PageCount)
	w.row(sheet, 6, "Characters", doc.Characters)
	w.row(sheet, 7, "Gardening terms", r.Summary.TotalGardeningTerms)
	w.row(sheet, 8, "Plant names", r.Summary.TotalPlantNames)
	w.row(sheet, 9, "Gardening techniques", r.Summary.TotalTechniques)
	w.row(sheet, 10, "Entities", r.Summary.TotalEntities)

	row := 12
	w.header(sheet, row, "Category", "Count", "Term", "Term count")
	row++
	for _, category := range r.Summary.Categories {
		w.row(sheet, row, category.Category, category.Count)
		row++
		for _, term := range category.MostCommon {
			w.row(sheet, row, "", "", term.Term, term.Count)
			row++
		}
	}

	if w.err == nil {
		_ = w.book.SetColWidth(sheet, "A", "A", 24)
		_ = w.book.SetColWidth(sheet, "B", "B", 40)
		_ = w.book.SetColWidth(sheet, "C", "C", 24)
	}
}

func (w *sheetWriter) writeMatches(section shared.Section) {
	sheet := section.Title
	w.ensureSheet(sheet)

	w.header(sheet, 1, "Text", "Category", "Start", "End")
	for i, m := range section.Matches {
		w.row(sheet, i+2, m.Text, m.Category, m.Start, m.End)
	}

	if w.err == nil {
		_ = w.book.SetColWidth(sheet, "A", "A", 28)
		_ = w.book.SetColWidth(sheet, "B", "B", 22)
	}
}

func (w *sheetWriter) writeEntities(r *report.Report, labels []string) {
	w.ensureSheet(entitiesSheet)

	w.header(entitiesSheet, 1, "Label", "Text", "Start", "End")
	row := 2
	for _, label := range labels {
		for _, e := range r.StandardEntities[label] {
			w.row(entitiesSheet, row, e.Label, e.Text, e.Start, e.End)
			row++
		}
	}

	if w.err == nil {
		_ = w.book.SetColWidth(entitiesSheet, "B", "B", 36)
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
