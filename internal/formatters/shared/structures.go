// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"sort"

	"github.com/chloeskafte/gardening-mvp/internal/entities"
	"github.com/chloeskafte/gardening-mvp/internal/report"
	"github.com/chloeskafte/gardening-mvp/internal/tagger"
	"github.com/chloeskafte/gardening-mvp/internal/vocabulary"
)

// Section is one vocabulary table of a report with its display title
type Section struct {
	Key        string
	Title      string
	Matches    []tagger.Match
	MostCommon []tagger.TermCount
}

// Sections returns the three vocabulary tables in report order
func Sections(r *report.Report) []Section {
	return []Section{
		{Key: vocabulary.TableGardeningTerms, Title: "Gardening Terms", Matches: r.GardeningTerms, MostCommon: r.Summary.MostCommonTerms},
		{Key: vocabulary.TablePlantNames, Title: "Plant Names", Matches: r.PlantNames, MostCommon: r.Summary.MostCommonPlants},
		{Key: vocabulary.TableGardeningTechniques, Title: "Gardening Techniques", Matches: r.GardeningTechniques, MostCommon: r.Summary.MostCommonTechniques},
	}
}

// EntityLabels returns the labels present in the report, in the recognizer's
// label order with unknown labels sorted at the end
func EntityLabels(r *report.Report) []string {
	var labels []string
	seen := make(map[string]bool)
	for _, label := range entities.Labels {
		if len(r.StandardEntities[label]) > 0 {
			labels = append(labels, label)
			seen[label] = true
		}
	}

	var extra []string
	for label := range r.StandardEntities {
		if !seen[label] {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)
	return append(labels, extra...)
}

// MatchRow is a flattened match used by tabular formatters
type MatchRow struct {
	Table    string
	Category string
	Text     string
	Start    int
	End      int
}

// MatchRows flattens every table in document order
func MatchRows(r *report.Report) []MatchRow {
	tables := make(map[string]string)
	var all []tagger.Match
	for _, section := range Sections(r) {
		for _, m := range section.Matches {
			tables[m.Category] = section.Key
		}
		all = append(all, section.Matches...)
	}

	var rows []MatchRow
	for _, m := range tagger.SortByOffset(all) {
		rows = append(rows, MatchRow{Table: tables[m.Category], Category: m.Category, Text: m.Text, Start: m.Start, End: m.End})
	}
	return rows
}
