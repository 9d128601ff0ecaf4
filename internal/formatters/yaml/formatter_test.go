// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/chloeskafte/gardening-mvp/internal/formatters"
	"github.com/chloeskafte/gardening-mvp/internal/report"
	"github.com/chloeskafte/gardening-mvp/internal/tagger"
)

func TestFormatYAML(t *testing.T) {
	techniques := []tagger.Match{{Text: "Mulching", Start: 4, End: 12, Category: "gardening_technique"}}
	r := report.Build(report.Input{
		Document:            report.Document{Source: "notes.txt", RunID: "run-2", PageCount: 1, Characters: 12},
		GardeningTechniques: techniques,
		Categories:          tagger.Summarize(techniques, 10).Categories,
	})

	data, err := NewFormatter().Format(r, formatters.FormatterOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "total_techniques: 1")
	assert.NotContains(t, string(data), "standard_entities")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "gardening_techniques")

	summary := decoded["summary"].(map[string]any)
	plants := summary["most_common_techniques"].([]any)
	require.Len(t, plants, 1)
	assert.Equal(t, "mulching", plants[0].(map[string]any)["term"])
}

func TestFormatterRegistered(t *testing.T) {
	_, ok := formatters.Get("yaml")
	assert.True(t, ok)
}
