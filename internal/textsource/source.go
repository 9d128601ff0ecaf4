// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package textsource turns input documents into ordered page texts.
package textsource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chloeskafte/gardening-mvp/internal/observability"
)

// ErrUnsupportedFile is returned when no source can read a file.
var ErrUnsupportedFile = errors.New("file type not supported")

// Page is the plain text of one document page. Number is 1-based.
type Page struct {
	Number int
	Text   string
}

// Source converts a file into its pages.
type Source interface {
	// Name returns a short identifier used in logs
	Name() string

	// CanProcess checks if this source can handle the given file
	CanProcess(filePath string) bool

	// Pages extracts the text of every page in order
	Pages(filePath string) ([]Page, error)
}

// Router picks the first registered source able to process a file.
type Router struct {
	sources  []Source
	observer *observability.StandardObserver
}

// NewRouter creates a router with the given sources, tried in order.
func NewRouter(sources ...Source) *Router {
	return &Router{sources: sources}
}

// DefaultRouter returns a router for PDF and plain text inputs.
func DefaultRouter(maxPages int) *Router {
	return NewRouter(NewPDFSource(maxPages), NewPlainTextSource())
}

// SetObserver sets the observability component
func (r *Router) SetObserver(observer *observability.StandardObserver) {
	r.observer = observer
}

// Route returns the source for filePath.
func (r *Router) Route(filePath string) (Source, error) {
	for _, source := range r.sources {
		if source.CanProcess(filePath) {
			return source, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filePath)
}

// Pages routes filePath and extracts its pages.
func (r *Router) Pages(filePath string) ([]Page, Source, error) {
	source, err := r.Route(filePath)
	if err != nil {
		return nil, nil, err
	}

	var finishTiming func(bool, map[string]interface{})
	var finishStep func(bool, string)
	if r.observer != nil {
		finishTiming = r.observer.StartTiming("text_source", "extract_pages", filePath)
		if r.observer.DebugObserver != nil {
			finishStep = r.observer.DebugObserver.StartStep("text_source", source.Name(), filePath)
		}
	}

	pages, err := source.Pages(filePath)

	if finishTiming != nil {
		finishTiming(err == nil, map[string]interface{}{"source": source.Name(), "page_count": len(pages)})
	}
	if finishStep != nil {
		if err != nil {
			finishStep(false, err.Error())
		} else {
			finishStep(true, fmt.Sprintf("%d pages", len(pages)))
		}
	}

	if err != nil {
		return nil, source, err
	}
	return pages, source, nil
}

// Document is an input file read into pages together with the text that
// is analysed. For PDFs Text is the rendered page artifact; text inputs are
// analysed verbatim.
type Document struct {
	Path     string
	Source   string
	Pages    []Page
	Text     string
	Rendered bool
}

// rawReader is implemented by sources whose files are already plain text
type rawReader interface {
	Read(filePath string) (string, error)
}

// Load routes filePath, extracts its pages and builds the analysed text.
func (r *Router) Load(filePath string) (*Document, error) {
	pages, source, err := r.Pages(filePath)
	if err != nil {
		return nil, err
	}

	doc := &Document{Path: filePath, Source: source.Name(), Pages: pages}
	if raw, ok := source.(rawReader); ok {
		text, err := raw.Read(filePath)
		if err != nil {
			return nil, err
		}
		doc.Text = text
	} else {
		doc.Text = Render(pages)
		doc.Rendered = true
	}
	return doc, nil
}

// IsPDF reports whether filePath looks like a PDF by extension or header.
func IsPDF(filePath string) bool {
	if strings.EqualFold(filepath.Ext(filePath), ".pdf") {
		return true
	}

	file, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return false
	}
	defer file.Close()

	header := make([]byte, 5)
	n, _ := file.Read(header)
	return n == 5 && string(header) == "%PDF-"
}
