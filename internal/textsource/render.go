// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textsource

import (
	"fmt"
	"strings"
)

// Render concatenates pages, each preceded by a "--- Page N ---" marker line.
func Render(pages []Page) string {
	var builder strings.Builder
	for _, page := range pages {
		fmt.Fprintf(&builder, "\n--- Page %d ---\n", page.Number)
		builder.WriteString(page.Text)
	}
	return builder.String()
}

// Preview returns the first n characters of text, marking truncation with "...".
func Preview(text string, n int) string {
	runes := []rune(text)
	if n <= 0 || len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
