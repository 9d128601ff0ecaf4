// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chloeskafte/gardening-mvp/internal/report"
)

type stubFormatter struct {
	name string
}

func (s stubFormatter) Format(r *report.Report, options FormatterOptions) ([]byte, error) {
	return []byte(s.name + ":" + r.Document.Source), nil
}

func (s stubFormatter) Name() string          { return s.name }
func (s stubFormatter) Description() string   { return "stub " + s.name }
func (s stubFormatter) FileExtension() string { return "." + s.name }

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.Register(stubFormatter{name: "yaml"})
	registry.Register(stubFormatter{name: "json"})

	assert.Equal(t, []string{"json", "yaml"}, registry.List())

	formatter, ok := registry.Get("json")
	require.True(t, ok)
	assert.Equal(t, ".json", formatter.FileExtension())

	_, ok = registry.Get("sarif")
	assert.False(t, ok)
}

func TestExportAndFormatInfo(t *testing.T) {
	saved := DefaultRegistry
	t.Cleanup(func() { DefaultRegistry = saved })
	DefaultRegistry = NewRegistry()

	Register(stubFormatter{name: "xlsx"})

	data, err := Export("xlsx", &report.Report{Document: report.Document{Source: "guide.pdf"}}, FormatterOptions{})
	require.NoError(t, err)
	assert.Equal(t, "xlsx:guide.pdf", string(data))

	_, err = Export("docx", &report.Report{}, FormatterOptions{})
	assert.ErrorContains(t, err, "unsupported format 'docx'")

	info := GetFormatInfo("xlsx")
	assert.True(t, info.Binary)
	assert.Equal(t, ".xlsx", info.Extension)
	assert.Equal(t, FormatInfo{}, GetFormatInfo("docx"))

	require.Len(t, GetSupportedFormats(), 1)
}
