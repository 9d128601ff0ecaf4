// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/chloeskafte/gardening-mvp/internal/formatters"
	"github.com/chloeskafte/gardening-mvp/internal/formatters/shared"
	"github.com/chloeskafte/gardening-mvp/internal/report"
	"github.com/chloeskafte/gardening-mvp/internal/tagger"

	"github.com/fatih/color"
)

const ruleWidth = 50

// Formatter implements the human-readable console summary
type Formatter struct{}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable summary with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

type palette struct {
	title  *color.Color
	label  *color.Color
	count  *color.Color
	plant  *color.Color
	tool   *color.Color
	entity *color.Color
	dim    *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		title:  color.New(color.FgCyan, color.Bold),
		label:  color.New(color.FgWhite, color.Bold),
		count:  color.New(color.FgGreen),
		plant:  color.New(color.FgGreen, color.Bold),
		tool:   color.New(color.FgYellow, color.Bold),
		entity: color.New(color.FgMagenta, color.Bold),
		dim:    color.New(color.FgBlue),
	}
	if noColor {
		for _, c := range []*color.Color{p.title, p.label, p.count, p.plant, p.tool, p.entity, p.dim} {
			c.DisableColor()
		}
	}
	return p
}

func (f *Formatter) Format(r *report.Report, options formatters.FormatterOptions) ([]byte, error) {
	p := newPalette(options.NoColor)
	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)

	b.WriteString("\n" + rule + "\n")
	b.WriteString(p.title.Sprint("📊 NER ANALYSIS SUMMARY") + "\n")
	b.WriteString(rule + "\n")

	if r.Document.Source != "" {
		fmt.Fprintf(&b, "%s %s\n", p.label.Sprint("Source:"), r.Document.Source)
	}
	fmt.Fprintf(&b, "%s %s\n", p.label.Sprint("Gardening terms:"), p.count.Sprint(r.Summary.TotalGardeningTerms))
	fmt.Fprintf(&b, "%s %s\n", p.label.Sprint("Plant names:"), p.count.Sprint(r.Summary.TotalPlantNames))
	fmt.Fprintf(&b, "%s %s\n", p.label.Sprint("Gardening techniques:"), p.count.Sprint(r.Summary.TotalTechniques))
	if r.StandardEntities != nil {
		fmt.Fprintf(&b, "%s %s\n", p.label.Sprint("Standard entities:"), p.count.Sprint(r.Summary.TotalEntities))
	}

	writeCounts(&b, p.plant.Sprint("🌱 Most common plants:"), r.Summary.MostCommonPlants, p)
	writeCounts(&b, p.tool.Sprint("🔧 Most common techniques:"), r.Summary.MostCommonTechniques, p)

	if options.Verbose {
		writeCounts(&b, p.plant.Sprint("🪴 Most common gardening terms:"), r.Summary.MostCommonTerms, p)
		writeCategories(&b, r.Summary.Categories, p)
	}

	for _, label := range shared.EntityLabels(r) {
		writeCounts(&b, p.entity.Sprintf("🏷  %s:", label), r.Summary.MostCommonEntities[label], p)
	}

	if options.Verbose {
		rows := shared.MatchRows(r)
		if len(rows) > 0 {
			b.WriteString("\n" + p.label.Sprint("Matches in document order:") + "\n")
			for _, row := range rows {
				fmt.Fprintf(&b, "   %s %-20s %s\n", p.dim.Sprintf("[%d:%d]", row.Start, row.End), row.Category, row.Text)
			}
		}
	}

	b.WriteString(rule + "\n")
	return []byte(b.String()), nil
}

func writeCounts(b *strings.Builder, heading string, counts []tagger.TermCount, p palette) {
	if len(counts) == 0 {
		return
	}
	b.WriteString("\n" + heading + "\n")
	for _, c := range counts {
		fmt.Fprintf(b, "   %s: %s\n", c.Term, p.count.Sprint(c.Count))
	}
}

func writeCategories(b *strings.Builder, categories []tagger.CategorySummary, p palette) {
	if len(categories) == 0 {
		return
	}
	b.WriteString("\n" + p.label.Sprint("Categories:") + "\n")
	for _, c := range categories {
		fmt.Fprintf(b, "   %-22s %s\n", c.Category, p.count.Sprint(c.Count))
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
