// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chloeskafte/gardening-mvp/internal/formatters"
	"github.com/chloeskafte/gardening-mvp/internal/report"
	"github.com/chloeskafte/gardening-mvp/internal/tagger"
)

func sampleReport() *report.Report {
	plants := []tagger.Match{
		{Text: "Tomatoes", Start: 0, End: 8, Category: "vegetable"},
		{Text: "beans & peas", Start: 13, End: 25, Category: "vegetable"},
	}
	return report.Build(report.Input{
		Document: report.Document{
			Source:      "guide.pdf",
			RunID:       "run-1",
			GeneratedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			PageCount:   1,
			Characters:  25,
		},
		PlantNames: plants,
		Categories: tagger.Summarize(plants, 10).Categories,
	})
}

func TestFormatterRegistered(t *testing.T) {
	formatter, ok := formatters.Get("json")
	require.True(t, ok)
	assert.Equal(t, ".json", formatter.FileExtension())
}

func TestFormatIndentedAndValid(t *testing.T) {
	data, err := NewFormatter().Format(sampleReport(), formatters.FormatterOptions{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "{\n  \"document\""))
	assert.Contains(t, string(data), `"beans & peas"`)
	assert.NoError(t, report.Validate(data))

	var decoded report.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.Summary.TotalPlantNames)
	assert.Equal(t, []tagger.TermCount{{Term: "tomatoes", Count: 1}, {Term: "beans & peas", Count: 1}}, decoded.Summary.MostCommonPlants)
}

func TestFormatCompact(t *testing.T) {
	data, err := NewFormatter().Format(sampleReport(), formatters.FormatterOptions{Compact: true})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestSummaryRoundTrip(t *testing.T) {
	original := sampleReport()
	data, err := NewFormatter().Format(original, formatters.FormatterOptions{})
	require.NoError(t, err)

	var decoded report.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.Summary, decoded.Summary)
}
