// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/chloeskafte/gardening-mvp/internal/formatters"
	"github.com/chloeskafte/gardening-mvp/internal/formatters/shared"
	"github.com/chloeskafte/gardening-mvp/internal/report"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "One row per match in document order, for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(r *report.Report, options formatters.FormatterOptions) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	headers := []string{"Table", "Category", "Text", "Start", "End"}
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range shared.MatchRows(r) {
		record := []string{row.Table, row.Category, row.Text, strconv.Itoa(row.Start), strconv.Itoa(row.End)}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	// entities follow the vocabulary rows, with the label in the category column
	if options.Verbose {
		for _, label := range shared.EntityLabels(r) {
			for _, e := range r.StandardEntities[label] {
				record := []string{"standard_entities", e.Label, e.Text, strconv.Itoa(e.Start), strconv.Itoa(e.End)}
				if err := w.Write(record); err != nil {
					return nil, fmt.Errorf("error writing CSV row: %w", err)
				}
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("error formatting CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
