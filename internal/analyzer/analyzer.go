// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package analyzer runs the extraction, tagging and reporting pipeline.
package analyzer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/chloeskafte/gardening-mvp/internal/discovery"
	"github.com/chloeskafte/gardening-mvp/internal/entities"
	"github.com/chloeskafte/gardening-mvp/internal/formatters"
	"github.com/chloeskafte/gardening-mvp/internal/observability"
	"github.com/chloeskafte/gardening-mvp/internal/paths"
	"github.com/chloeskafte/gardening-mvp/internal/report"
	"github.com/chloeskafte/gardening-mvp/internal/tagger"
	"github.com/chloeskafte/gardening-mvp/internal/textsource"
	"github.com/chloeskafte/gardening-mvp/internal/version"
	"github.com/chloeskafte/gardening-mvp/internal/vocabulary"
)

var (
	// ErrInputNotFound is returned when the input file does not exist
	ErrInputNotFound = errors.New("input file not found")

	// ErrInputUnreadable is returned when the input exists but cannot be read as a file
	ErrInputUnreadable = errors.New("input file unreadable")
)

const DefaultFormat = "json"

// Options configures an Analyzer
type Options struct {
	Vocabulary vocabulary.Set
	TopN       int

	// Entities enables the general recognizer. Recognizer, when set, is used
	// instead of loading the rule recognizer with Gazetteer.
	Entities   bool
	Gazetteer  string
	EntityTopN int
	Recognizer entities.Recognizer

	Format         string
	OutputDir      string
	WriteExtracted bool
	MaxPages       int

	Router   *textsource.Router
	Observer *observability.StandardObserver
}

// Analyzer tags documents with the vocabulary tables and optional entities
type Analyzer struct {
	opts       Options
	taggers    map[string]*tagger.Tagger
	combined   *tagger.Tagger
	recognizer entities.Recognizer
	router     *textsource.Router
	observer   *observability.StandardObserver
	now        func() time.Time
}

// Result describes one processed input file
type Result struct {
	Document      *textsource.Document
	Report        *report.Report
	ExtractedPath string
	ReportPath    string
}

// New compiles the vocabulary and loads the recognizer when enabled
func New(opts Options) (*Analyzer, error) {
	if opts.Vocabulary.IsEmpty() {
		opts.Vocabulary = vocabulary.Default()
	}
	if opts.Format == "" {
		opts.Format = DefaultFormat
	}
	if _, ok := formatters.Get(opts.Format); !ok {
		return nil, fmt.Errorf("unsupported format '%s'", opts.Format)
	}

	a := &Analyzer{
		opts:     opts,
		taggers:  make(map[string]*tagger.Tagger, len(vocabulary.TableNames)),
		router:   opts.Router,
		observer: opts.Observer,
		now:      time.Now,
	}
	if a.router == nil {
		a.router = textsource.DefaultRouter(opts.MaxPages)
	}
	if a.observer == nil {
		a.observer = observability.NewStandardObserver(observability.ObservabilityOff, os.Stderr)
	}
	observability.Attach(a.observer, a.router)

	for _, name := range vocabulary.TableNames {
		categories, _ := opts.Vocabulary.Table(name)
		t, err := tagger.Compile(categories)
		if err != nil {
			return nil, fmt.Errorf("vocabulary table %s: %w", name, err)
		}
		a.taggers[name] = t.WithTopN(opts.TopN)
	}

	combined, err := tagger.Compile(opts.Vocabulary.All())
	if err != nil {
		return nil, fmt.Errorf("vocabulary: %w", err)
	}
	a.combined = combined

	if opts.Recognizer != nil {
		a.recognizer = opts.Recognizer
	} else if opts.Entities {
		finish := a.observer.StartTiming("entities", "load", opts.Gazetteer)
		recognizer, err := entities.Load(opts.Gazetteer)
		finish(err == nil, nil)
		if err != nil {
			return nil, err
		}
		a.recognizer = recognizer
	}

	return a, nil
}

// Analyze tags text with every vocabulary table and, when enabled, the
// general recognizer. The returned report has an empty document section.
func (a *Analyzer) Analyze(text string) (*report.Report, error) {
	finish := a.observer.StartTiming("analyzer", "analyze", "")

	in := report.Input{
		Text:       text,
		TopN:       a.opts.TopN,
		EntityTopN: a.opts.EntityTopN,
	}

	matches := make(map[string][]tagger.Match, len(a.taggers))
	for _, name := range vocabulary.TableNames {
		t := a.taggers[name]
		found := t.Tag(text)
		matches[name] = found
		if debug := a.observer.DebugObserver; debug != nil {
			debug.LogMetric("analyzer", name, len(found))
		}
		in.Categories = append(in.Categories, t.Summarize(found).Categories...)
	}
	in.GardeningTerms = matches[vocabulary.TableGardeningTerms]
	in.PlantNames = matches[vocabulary.TablePlantNames]
	in.GardeningTechniques = matches[vocabulary.TableGardeningTechniques]

	if a.recognizer != nil {
		found, err := a.recognizer.Recognize(text)
		if err != nil {
			finish(false, map[string]interface{}{"error": err.Error()})
			return nil, fmt.Errorf("entity recognition failed: %w", err)
		}
		in.Entities = found
	}

	r := report.Build(in)
	finish(true, map[string]interface{}{
		"match_count": r.TotalMatches(),
		"entities":    r.Summary.TotalEntities,
		"characters":  len(text),
	})
	return r, nil
}

// Discover lists frequent words in text that no vocabulary table covers
func (a *Analyzer) Discover(text string, stopwords map[string]bool, opts discovery.Options) []tagger.TermCount {
	if stopwords == nil {
		stopwords = vocabulary.Stopwords()
	}
	return discovery.Candidates(text, a.combined, stopwords, opts)
}

// Load checks and reads an input file without writing anything
func (a *Analyzer) Load(inputPath string) (*textsource.Document, *textsource.DocumentInfo, error) {
	if err := checkInput(inputPath); err != nil {
		return nil, nil, err
	}

	source, err := a.router.Route(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}

	var info *textsource.DocumentInfo
	if _, isPDF := source.(*textsource.PDFSource); isPDF {
		finish := a.observer.StartTiming("text_source", "inspect", inputPath)
		info, err = textsource.Inspect(inputPath)
		finish(err == nil, nil)
		if err != nil {
			return nil, nil, err
		}
		if debug := a.observer.DebugObserver; debug != nil {
			debug.LogDetail("text_source", fmt.Sprintf("%d pages, producer %q", info.PageCount, info.Producer))
		}
	}

	doc, err := a.router.Load(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("text extraction failed: %w", err)
	}
	return doc, info, nil
}

// ExtractFile reads inputPath and writes the page text artifact
func (a *Analyzer) ExtractFile(inputPath string) (*Result, error) {
	doc, _, err := a.Load(inputPath)
	if err != nil {
		return nil, err
	}

	result := &Result{Document: doc}
	result.ExtractedPath = paths.ExtractedTextPath(inputPath, a.opts.OutputDir)
	if err := a.write(result.ExtractedPath, []byte(textsource.Render(doc.Pages))); err != nil {
		return nil, err
	}
	return result, nil
}

// AnalyzeFile runs the full pipeline on inputPath and writes the report
func (a *Analyzer) AnalyzeFile(inputPath string) (*Result, error) {
	doc, info, err := a.Load(inputPath)
	if err != nil {
		return nil, err
	}

	result := &Result{Document: doc}
	if doc.Rendered && a.opts.WriteExtracted {
		result.ExtractedPath = paths.ExtractedTextPath(inputPath, a.opts.OutputDir)
		if err := a.write(result.ExtractedPath, []byte(doc.Text)); err != nil {
			return nil, err
		}
	}

	r, err := a.Analyze(doc.Text)
	if err != nil {
		return nil, err
	}
	r.Document = a.describe(doc, info)
	result.Report = r

	data, err := formatters.Export(a.opts.Format, r, formatters.FormatterOptions{NoColor: true, Verbose: true})
	if err != nil {
		a.observer.LogError("analyzer", "format", err)
		return nil, fmt.Errorf("formatting %s report: %w", a.opts.Format, err)
	}

	format := formatters.GetFormatInfo(a.opts.Format)
	result.ReportPath = paths.AnalysisPath(inputPath, a.opts.OutputDir, format.Extension)
	if err := a.write(result.ReportPath, data); err != nil {
		return nil, err
	}

	return result, nil
}

func (a *Analyzer) describe(doc *textsource.Document, info *textsource.DocumentInfo) report.Document {
	d := report.Document{
		Source:      doc.Path,
		RunID:       a.observer.RunID(),
		GeneratedAt: a.now().UTC(),
		Generator:   "garden-ner " + version.Short(),
		PageCount:   len(doc.Pages),
		Characters:  utf8.RuneCountInString(doc.Text),
	}
	if info != nil {
		d.Title = info.Title
		d.Author = info.Author
	}
	return d
}

func (a *Analyzer) write(path string, data []byte) error {
	finish := a.observer.StartTiming("analyzer", "write", path)

	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err == nil {
		err = os.WriteFile(path, data, 0644)
	}

	finish(err == nil, map[string]interface{}{"bytes": len(data)})
	if err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

func checkInput(inputPath string) error {
	info, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInputUnreadable, inputPath)
	}

	file, err := os.Open(filepath.Clean(inputPath))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	return file.Close()
}
