// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// StandardObserver records timed pipeline operations as JSON lines
type StandardObserver struct {
	level         ObservabilityLevel
	writer        io.Writer
	runID         string
	mu            sync.Mutex
	DebugObserver *DebugObserver // Reference to debug observer when in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates observability component
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
		runID:  uuid.NewString(),
	}
}

// New builds the observer used by the CLI. With debug enabled the returned
// observer also carries a DebugObserver writing to the same writer.
func New(debug bool, writer io.Writer) *StandardObserver {
	if !debug {
		return NewStandardObserver(ObservabilityMetrics, writer)
	}
	observer := NewStandardObserver(ObservabilityDebug, writer)
	observer.DebugObserver = newDebugObserver(observer)
	return observer
}

// RunID identifies one analysis run across all log records and reports
func (o *StandardObserver) RunID() string {
	return o.runID
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation, filePath string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		duration := time.Since(start)

		data := StandardObservabilityData{
			Component:  component,
			Operation:  operation,
			FilePath:   filePath,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		}
		if count, ok := metadata["match_count"].(int); ok {
			data.MatchCount = count
		}

		o.LogOperation(data)
	}
}

// LogError records a failed operation without timing
func (o *StandardObserver) LogError(component, operation string, err error) {
	if err == nil {
		return
	}
	o.LogOperation(StandardObservabilityData{
		Component: component,
		Operation: operation,
		Success:   false,
		Error:     err.Error(),
	})
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	if o == nil || o.level == ObservabilityOff {
		return
	}

	data.RunID = o.runID
	data.Timestamp = time.Now().UTC().Format(time.RFC3339)

	// Only log JSON in debug mode
	if o.level == ObservabilityDebug {
		o.mu.Lock()
		defer o.mu.Unlock()
		_ = json.NewEncoder(o.writer).Encode(data)
	}
}

// StandardObservabilityData for all components
type StandardObservabilityData struct {
	Component  string                 `json:"component"`
	Operation  string                 `json:"operation"`
	RunID      string                 `json:"run_id"`
	Timestamp  string                 `json:"timestamp"`
	FilePath   string                 `json:"file_path,omitempty"`
	DurationMs int64                  `json:"duration_ms,omitempty"`
	Success    bool                   `json:"success"`
	Error      string                 `json:"error,omitempty"`
	MatchCount int                    `json:"match_count,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
