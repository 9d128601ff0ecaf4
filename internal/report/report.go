// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report defines the analysis document written for each input.
package report

import (
	"time"

	"github.com/chloeskafte/gardening-mvp/internal/entities"
	"github.com/chloeskafte/gardening-mvp/internal/tagger"
)

// Document describes the analysed input and the run that produced the report
type Document struct {
	Source      string    `json:"source" yaml:"source"`
	RunID       string    `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Generator   string    `json:"generator" yaml:"generator"`
	PageCount   int       `json:"page_count" yaml:"page_count"`
	Characters  int       `json:"characters" yaml:"characters"`
	Title       string    `json:"title,omitempty" yaml:"title,omitempty"`
	Author      string    `json:"author,omitempty" yaml:"author,omitempty"`
}

// Summary holds totals and frequency lists across the three vocabulary tables
type Summary struct {
	TotalGardeningTerms  int                           `json:"total_gardening_terms" yaml:"total_gardening_terms"`
	TotalPlantNames      int                           `json:"total_plant_names" yaml:"total_plant_names"`
	TotalTechniques      int                           `json:"total_techniques" yaml:"total_techniques"`
	TotalEntities        int                           `json:"total_entities" yaml:"total_entities"`
	Categories           []tagger.CategorySummary      `json:"categories" yaml:"categories"`
	MostCommonPlants     []tagger.TermCount            `json:"most_common_plants" yaml:"most_common_plants"`
	MostCommonTechniques []tagger.TermCount            `json:"most_common_techniques" yaml:"most_common_techniques"`
	MostCommonTerms      []tagger.TermCount            `json:"most_common_terms" yaml:"most_common_terms"`
	MostCommonEntities   map[string][]tagger.TermCount `json:"most_common_entities,omitempty" yaml:"most_common_entities,omitempty"`
}

// Report is the full analysis of one document. Match and entity offsets
// count characters (code points) of the analysed text.
type Report struct {
	Document            Document                     `json:"document" yaml:"document"`
	GardeningTerms      []tagger.Match               `json:"gardening_terms" yaml:"gardening_terms"`
	PlantNames          []tagger.Match               `json:"plant_names" yaml:"plant_names"`
	GardeningTechniques []tagger.Match               `json:"gardening_techniques" yaml:"gardening_techniques"`
	StandardEntities    map[string][]entities.Entity `json:"standard_entities,omitempty" yaml:"standard_entities,omitempty"`
	Summary             Summary                      `json:"summary" yaml:"summary"`
}

// Input carries everything Build needs. Entities is nil when the general
// recognizer did not run. Offsets are byte offsets into Text.
type Input struct {
	Document            Document
	Text                string
	GardeningTerms      []tagger.Match
	PlantNames          []tagger.Match
	GardeningTechniques []tagger.Match
	Categories          []tagger.CategorySummary
	Entities            []entities.Entity
	TopN                int
	EntityTopN          int
}

// Build assembles a report and its summary
func Build(in Input) *Report {
	topN := in.TopN
	if topN <= 0 {
		topN = tagger.DefaultTopN
	}

	chars := newCharIndex(in.Text)
	in.GardeningTerms = chars.matches(in.GardeningTerms)
	in.PlantNames = chars.matches(in.PlantNames)
	in.GardeningTechniques = chars.matches(in.GardeningTechniques)
	in.Entities = chars.entities(in.Entities)

	r := &Report{
		Document:            in.Document,
		GardeningTerms:      nonNil(in.GardeningTerms),
		PlantNames:          nonNil(in.PlantNames),
		GardeningTechniques: nonNil(in.GardeningTechniques),
		Summary: Summary{
			TotalGardeningTerms:  len(in.GardeningTerms),
			TotalPlantNames:      len(in.PlantNames),
			TotalTechniques:      len(in.GardeningTechniques),
			Categories:           in.Categories,
			MostCommonPlants:     nonNilCounts(tagger.MostCommon(in.PlantNames, topN)),
			MostCommonTechniques: nonNilCounts(tagger.MostCommon(in.GardeningTechniques, topN)),
			MostCommonTerms:      nonNilCounts(tagger.MostCommon(in.GardeningTerms, topN)),
		},
	}
	if r.Summary.Categories == nil {
		r.Summary.Categories = []tagger.CategorySummary{}
	}

	if in.Entities != nil {
		r.StandardEntities = entities.Group(in.Entities)
		r.Summary.TotalEntities = len(in.Entities)
		r.Summary.MostCommonEntities = entities.MostCommon(in.Entities, in.EntityTopN)
	}

	return r
}

// TotalMatches is the number of vocabulary matches in all three tables
func (r *Report) TotalMatches() int {
	return r.Summary.TotalGardeningTerms + r.Summary.TotalPlantNames + r.Summary.TotalTechniques
}

func nonNil(matches []tagger.Match) []tagger.Match {
	if matches == nil {
		return []tagger.Match{}
	}
	return matches
}

func nonNilCounts(counts []tagger.TermCount) []tagger.TermCount {
	if counts == nil {
		return []tagger.TermCount{}
	}
	return counts
}
