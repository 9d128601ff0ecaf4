// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/chloeskafte/gardening-mvp/internal/formatters"
	"github.com/chloeskafte/gardening-mvp/internal/report"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON report for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// Format encodes the report without HTML escaping and checks the result
// against the report schema
func (f *Formatter) Format(r *report.Report, options formatters.FormatterOptions) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if !options.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(r); err != nil {
		return nil, fmt.Errorf("error formatting JSON: %w", err)
	}

	data := buf.Bytes()
	if err := report.Validate(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
