// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package vocabulary holds the gardening category tables fed to the tagger.
package vocabulary

import (
	"fmt"
	"strings"

	"github.com/chloeskafte/gardening-mvp/internal/tagger"
)

// Report keys of the three tables.
const (
	TableGardeningTerms      = "gardening_terms"
	TablePlantNames          = "plant_names"
	TableGardeningTechniques = "gardening_techniques"
)

// TableNames lists the tables in the order they are tagged and reported.
var TableNames = []string{TableGardeningTerms, TablePlantNames, TableGardeningTechniques}

// Set groups the category tables by report key.
type Set struct {
	GardeningTerms      []tagger.Category `yaml:"gardening_terms"`
	PlantNames          []tagger.Category `yaml:"plant_names"`
	GardeningTechniques []tagger.Category `yaml:"gardening_techniques"`
}

// Default returns a copy of the built-in tables that callers may modify.
func Default() Set {
	return Set{
		GardeningTerms:      cloneCategories(gardeningTerms),
		PlantNames:          cloneCategories(plantCategories),
		GardeningTechniques: cloneCategories(gardeningTechniques),
	}
}

// Table returns the categories stored under a report key.
func (s Set) Table(name string) ([]tagger.Category, error) {
	switch name {
	case TableGardeningTerms:
		return s.GardeningTerms, nil
	case TablePlantNames:
		return s.PlantNames, nil
	case TableGardeningTechniques:
		return s.GardeningTechniques, nil
	}
	return nil, fmt.Errorf("unknown vocabulary table %q", name)
}

// All flattens every table into one category list in report order.
func (s Set) All() []tagger.Category {
	all := make([]tagger.Category, 0, len(s.GardeningTerms)+len(s.PlantNames)+len(s.GardeningTechniques))
	all = append(all, s.GardeningTerms...)
	all = append(all, s.PlantNames...)
	all = append(all, s.GardeningTechniques...)
	return all
}

// IsEmpty reports whether no table has any category.
func (s Set) IsEmpty() bool {
	return len(s.GardeningTerms) == 0 && len(s.PlantNames) == 0 && len(s.GardeningTechniques) == 0
}

// Validate compiles every table so malformed patterns surface at load time.
func (s Set) Validate() error {
	for _, name := range TableNames {
		categories, _ := s.Table(name)
		if _, err := tagger.Compile(categories); err != nil {
			return fmt.Errorf("vocabulary table %s: %w", name, err)
		}
	}
	return nil
}

// Merge applies overrides on top of base. With replace set, any table present
// in overrides replaces the base table. Otherwise categories with a known name
// get their patterns appended and unknown categories are added at the end.
func Merge(base, overrides Set, replace bool) Set {
	return Set{
		GardeningTerms:      mergeTable(base.GardeningTerms, overrides.GardeningTerms, replace),
		PlantNames:          mergeTable(base.PlantNames, overrides.PlantNames, replace),
		GardeningTechniques: mergeTable(base.GardeningTechniques, overrides.GardeningTechniques, replace),
	}
}

func mergeTable(base, overrides []tagger.Category, replace bool) []tagger.Category {
	if len(overrides) == 0 {
		return cloneCategories(base)
	}
	if replace {
		return cloneCategories(overrides)
	}

	merged := cloneCategories(base)
	for _, override := range overrides {
		found := false
		for i := range merged {
			if strings.EqualFold(merged[i].Name, override.Name) {
				merged[i].Patterns = appendMissing(merged[i].Patterns, override.Patterns)
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, tagger.Category{
				Name:     override.Name,
				Patterns: append([]string(nil), override.Patterns...),
			})
		}
	}
	return merged
}

func appendMissing(patterns, extra []string) []string {
	seen := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		seen[p] = true
	}
	for _, p := range extra {
		if !seen[p] {
			patterns = append(patterns, p)
			seen[p] = true
		}
	}
	return patterns
}

func cloneCategories(categories []tagger.Category) []tagger.Category {
	if categories == nil {
		return nil
	}
	clone := make([]tagger.Category, len(categories))
	for i, c := range categories {
		clone[i] = tagger.Category{Name: c.Name, Patterns: append([]string(nil), c.Patterns...)}
	}
	return clone
}

// Stopwords returns the default English stopwords ignored by term discovery.
func Stopwords() map[string]bool {
	set := make(map[string]bool, len(stopwords))
	for _, w := range stopwords {
		set[w] = true
	}
	return set
}
