// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"strings"
	"time"
)

// DebugObserver prints nested pipeline steps for --debug runs
type DebugObserver struct {
	*StandardObserver
	indent int
}

func newDebugObserver(parent *StandardObserver) *DebugObserver {
	return &DebugObserver{StandardObserver: parent}
}

func (d *DebugObserver) prefix() string {
	return strings.Repeat("  ", d.indent)
}

// StartStep begins a processing step with indentation
func (d *DebugObserver) StartStep(component, step, filePath string) func(success bool, details string) {
	start := time.Now()

	d.mu.Lock()
	if filePath != "" {
		fmt.Fprintf(d.writer, "%s🔄 %s: %s (%s)\n", d.prefix(), component, step, filePath)
	} else {
		fmt.Fprintf(d.writer, "%s🔄 %s: %s\n", d.prefix(), component, step)
	}
	d.indent++
	d.mu.Unlock()

	return func(success bool, details string) {
		d.mu.Lock()
		defer d.mu.Unlock()

		d.indent--
		elapsed := time.Since(start).Milliseconds()

		if success {
			fmt.Fprintf(d.writer, "%s✅ %s: %s completed (%dms) %s\n", d.prefix(), component, step, elapsed, details)
		} else {
			fmt.Fprintf(d.writer, "%s❌ %s: %s failed (%dms) %s\n", d.prefix(), component, step, elapsed, details)
		}
	}
}

// LogDetail logs a detail within the current step
func (d *DebugObserver) LogDetail(component, detail string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.writer, "%s   → %s: %s\n", d.prefix(), component, detail)
}

// LogMetric logs a metric value
func (d *DebugObserver) LogMetric(component, metric string, value interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.writer, "%s   📊 %s: %s = %v\n", d.prefix(), component, metric, value)
}
