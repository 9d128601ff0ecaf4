// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textsource

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFSource extracts page text from PDF documents using ledongthuc/pdf.
// Pages are read sequentially; any page failure aborts the extraction.
type PDFSource struct {
	// MaxPages limits how many pages are read, 0 reads all of them
	MaxPages int
}

// NewPDFSource creates a PDF source. maxPages <= 0 reads every page.
func NewPDFSource(maxPages int) *PDFSource {
	if maxPages < 0 {
		maxPages = 0
	}
	return &PDFSource{MaxPages: maxPages}
}

func (s *PDFSource) Name() string {
	return "pdf"
}

// CanProcess checks the extension and falls back to the %PDF- header
func (s *PDFSource) CanProcess(filePath string) bool {
	return IsPDF(filePath)
}

// Pages extracts the text of every page in document order.
func (s *PDFSource) Pages(filePath string) ([]Page, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	if s.MaxPages > 0 && pageCount > s.MaxPages {
		pageCount = s.MaxPages
	}

	pages := make([]Page, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			return nil, fmt.Errorf("error reading page %d: null page object", i)
		}

		text, err := extractPageText(p)
		if err != nil {
			return nil, fmt.Errorf("error extracting text from page %d: %w", i, err)
		}
		pages = append(pages, Page{Number: i, Text: text})
	}

	return pages, nil
}

// extractPageText extracts text using row-based positioning, falling back to
// the plain content stream when rows are unavailable
func extractPageText(p pdf.Page) (text string, err error) {
	// the pdf package panics on some malformed content streams
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()

	rows, rowErr := p.GetTextByRow()
	if rowErr != nil {
		return p.GetPlainText(nil)
	}

	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}

	// PDF y grows upwards, so the top of the page has the largest y
	sort.SliceStable(sortedRows, func(i, j int) bool {
		return averageY(sortedRows[i].Content) > averageY(sortedRows[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sortedRows {
		rowText := reconstructRowText(row.Content)
		if strings.TrimSpace(rowText) != "" {
			buf.WriteString(rowText)
			buf.WriteString("\n")
		}
	}

	return buf.String(), nil
}

func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}

	var total float64
	for _, element := range elements {
		total += element.Y
	}
	return total / float64(len(elements))
}

// reconstructRowText joins the glyph runs of a row left to right, inserting a
// space where the horizontal gap exceeds 20% of the font size
func reconstructRowText(elements []pdf.Text) string {
	if len(elements) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	for i, element := range sorted {
		buf.WriteString(element.S)

		if i < len(sorted)-1 {
			next := sorted[i+1]
			gap := next.X - (element.X + element.W)

			fontSize := element.FontSize
			if fontSize <= 0 {
				fontSize = 12
			}

			if gap > fontSize*0.2 && !strings.HasSuffix(element.S, " ") && !strings.HasPrefix(next.S, " ") {
				buf.WriteString(" ")
			}
		}
	}

	return buf.String()
}
