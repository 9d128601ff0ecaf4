// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package tagger

import (
	"sort"
	"strings"
)

// DefaultTopN is the number of most common terms kept per category.
const DefaultTopN = 10

// TermCount is a case-folded literal and how often it was matched.
type TermCount struct {
	Term  string `json:"term" yaml:"term"`
	Count int    `json:"count" yaml:"count"`
}

// CategorySummary aggregates the matches of one category.
type CategorySummary struct {
	Category   string      `json:"category" yaml:"category"`
	Count      int         `json:"count" yaml:"count"`
	MostCommon []TermCount `json:"most_common" yaml:"most_common"`
}

// Summary is the per-category frequency report derived from a match list.
type Summary struct {
	Categories []CategorySummary `json:"categories" yaml:"categories"`
}

// Summarize groups matches by category in first-seen order and keeps the topN
// most common case-folded literals of each. topN <= 0 uses DefaultTopN.
func Summarize(matches []Match, topN int) Summary {
	return summarize(nil, matches, topN)
}

// Summarize is like the package-level Summarize but also lists declared
// categories that had no matches, with a zero count.
func (t *Tagger) Summarize(matches []Match) Summary {
	return summarize(t.Categories(), matches, t.topN)
}

func summarize(declared []string, matches []Match, topN int) Summary {
	if topN <= 0 {
		topN = DefaultTopN
	}

	var order []string
	matchesByCategory := make(map[string][]Match)
	for _, name := range declared {
		if _, seen := matchesByCategory[name]; !seen {
			order = append(order, name)
			matchesByCategory[name] = nil
		}
	}
	for _, m := range matches {
		if _, seen := matchesByCategory[m.Category]; !seen {
			order = append(order, m.Category)
		}
		matchesByCategory[m.Category] = append(matchesByCategory[m.Category], m)
	}

	summary := Summary{Categories: make([]CategorySummary, 0, len(order))}
	for _, name := range order {
		group := matchesByCategory[name]
		summary.Categories = append(summary.Categories, CategorySummary{
			Category:   name,
			Count:      len(group),
			MostCommon: MostCommon(group, topN),
		})
	}
	return summary
}

// MostCommon counts case-folded match texts and returns the n most frequent,
// ordered by descending count with ties in first-seen order.
func MostCommon(matches []Match, n int) []TermCount {
	counts := make(map[string]int)
	var order []string
	for _, m := range matches {
		key := strings.ToLower(m.Text)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	result := make([]TermCount, len(order))
	for i, term := range order {
		result[i] = TermCount{Term: term, Count: counts[term]}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if n > 0 && len(result) > n {
		result = result[:n]
	}
	return result
}
