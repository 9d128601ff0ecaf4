// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package entities recognizes general named entities (people, places, dates,
// quantities, ...) in English text.
//
// Recognition is rule based: compiled expressions per label plus a gazetteer
// of known names. Entities carry byte offsets satisfying
// text[e.Start:e.End] == e.Text and are returned sorted by Start.
package entities

import (
	"errors"
	"slices"
	"sort"
	"strings"

	"github.com/chloeskafte/gardening-mvp/internal/tagger"
)

// Labels produced by the recognizer.
const (
	LabelPerson    = "PERSON"
	LabelOrg       = "ORG"
	LabelGPE       = "GPE"
	LabelDate      = "DATE"
	LabelTime      = "TIME"
	LabelQuantity  = "QUANTITY"
	LabelCardinal  = "CARDINAL"
	LabelOrdinal   = "ORDINAL"
	LabelProduct   = "PRODUCT"
	LabelEvent     = "EVENT"
	LabelWorkOfArt = "WORK_OF_ART"
	LabelLaw       = "LAW"
	LabelLanguage  = "LANGUAGE"
	LabelFacility  = "FAC"
	LabelLocation  = "LOC"
	LabelMoney     = "MONEY"
	LabelPercent   = "PERCENT"
)

// DefaultTopLabel is the number of most common texts kept per label.
const DefaultTopLabel = 5

// Labels lists every label in report order.
var Labels = []string{
	LabelPerson, LabelOrg, LabelGPE, LabelDate, LabelTime, LabelQuantity, LabelCardinal, LabelOrdinal,
	LabelProduct, LabelEvent, LabelWorkOfArt, LabelLaw, LabelLanguage, LabelFacility, LabelLocation,
	LabelMoney, LabelPercent,
}

// ErrModelUnavailable is returned when configured recognizer data cannot be found.
var ErrModelUnavailable = errors.New("entity recognizer data unavailable")

// Entity is a labeled span of text.
type Entity struct {
	Text  string `json:"text" yaml:"text"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Label string `json:"label" yaml:"label"`
}

// Recognizer finds general entities in text.
type Recognizer interface {
	Recognize(text string) ([]Entity, error)
}

// Group buckets entities by label, keeping only labels with at least one entity.
func Group(entities []Entity) map[string][]Entity {
	grouped := make(map[string][]Entity)
	for _, e := range entities {
		grouped[e.Label] = append(grouped[e.Label], e)
	}
	return grouped
}

// MostCommon returns, per label, the n most frequent entity texts. Unlike
// term summaries the texts are not case-folded.
func MostCommon(entities []Entity, n int) map[string][]tagger.TermCount {
	if n <= 0 {
		n = DefaultTopLabel
	}

	result := make(map[string][]tagger.TermCount)
	for label, group := range Group(entities) {
		counts := make(map[string]int)
		var order []string
		for _, e := range group {
			if _, seen := counts[e.Text]; !seen {
				order = append(order, e.Text)
			}
			counts[e.Text]++
		}

		common := make([]tagger.TermCount, len(order))
		for i, text := range order {
			common[i] = tagger.TermCount{Term: text, Count: counts[text]}
		}
		sort.SliceStable(common, func(i, j int) bool {
			return common[i].Count > common[j].Count
		})
		if len(common) > n {
			common = common[:n]
		}
		result[label] = common
	}
	return result
}

// resolveOverlaps keeps the longest span among overlapping candidates; equal
// lengths fall back to rule priority, then to the earlier start.
func resolveOverlaps(candidates []candidate) []Entity {
	sort.SliceStable(candidates, func(i, j int) bool {
		li := candidates[i].end - candidates[i].start
		lj := candidates[j].end - candidates[j].start
		if li != lj {
			return li > lj
		}
		if candidates[i].priority != candidates[j].priority {
			return candidates[i].priority > candidates[j].priority
		}
		return candidates[i].start < candidates[j].start
	})

	// kept stays sorted by start; its spans are disjoint, so only the last
	// span starting before c.end can overlap c
	var kept []candidate
	for _, c := range candidates {
		i := sort.Search(len(kept), func(i int) bool { return kept[i].start >= c.end })
		if i > 0 && kept[i-1].end > c.start {
			continue
		}
		kept = slices.Insert(kept, i, c)
	}

	entities := make([]Entity, len(kept))
	for i, k := range kept {
		entities[i] = Entity{Text: k.text, Start: k.start, End: k.end, Label: k.label}
	}
	return entities
}

type candidate struct {
	text     string
	start    int
	end      int
	label    string
	priority int
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
