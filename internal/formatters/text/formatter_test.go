// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chloeskafte/gardening-mvp/internal/entities"
	"github.com/chloeskafte/gardening-mvp/internal/formatters"
	"github.com/chloeskafte/gardening-mvp/internal/report"
	"github.com/chloeskafte/gardening-mvp/internal/tagger"
)

func sampleReport(withEntities bool) *report.Report {
	plants := []tagger.Match{
		{Text: "Tomato", Start: 0, End: 6, Category: "vegetable"},
		{Text: "tomato", Start: 20, End: 26, Category: "vegetable"},
	}
	in := report.Input{
		Document:            report.Document{Source: "guide.pdf"},
		PlantNames:          plants,
		GardeningTechniques: []tagger.Match{{Text: "pruning", Start: 8, End: 15, Category: "gardening_technique"}},
		Categories:          tagger.Summarize(plants, 10).Categories,
	}
	if withEntities {
		in.Entities = []entities.Entity{{Text: "Canberra", Start: 30, End: 38, Label: entities.LabelGPE}}
	}
	return report.Build(in)
}

func TestFormatSummary(t *testing.T) {
	data, err := NewFormatter().Format(sampleReport(false), formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "📊 NER ANALYSIS SUMMARY")
	assert.Contains(t, out, "Gardening terms: 0")
	assert.Contains(t, out, "Plant names: 2")
	assert.Contains(t, out, "Gardening techniques: 1")
	assert.Contains(t, out, "🌱 Most common plants:\n   tomato: 2\n")
	assert.Contains(t, out, "🔧 Most common techniques:\n   pruning: 1\n")
	assert.NotContains(t, out, "Standard entities")
	assert.NotContains(t, out, "Matches in document order")
	assert.NotContains(t, out, "\x1b[")
}

func TestFormatVerboseWithEntities(t *testing.T) {
	data, err := NewFormatter().Format(sampleReport(true), formatters.FormatterOptions{NoColor: true, Verbose: true})
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "Standard entities: 1")
	assert.Contains(t, out, "GPE:\n   Canberra: 1\n")
	assert.Contains(t, out, "Categories:")
	assert.Contains(t, out, "Matches in document order:")
	assert.Contains(t, out, "[8:15]")
}

func TestFormatterMetadata(t *testing.T) {
	formatter, ok := formatters.Get("text")
	require.True(t, ok)
	assert.Equal(t, ".txt", formatter.FileExtension())
}
