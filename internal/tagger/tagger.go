// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package tagger finds domain vocabulary in free text.
//
// Each Category is compiled into a single case-insensitive, word-bounded
// alternation. Categories are scanned independently and their matches are
// concatenated in declaration order, so the output of Tag is grouped by
// category rather than ordered by position. Use SortByOffset when document
// order is needed.
package tagger

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrInvalidPattern is wrapped by PatternError when a category fails to compile.
	ErrInvalidPattern = errors.New("invalid category pattern")

	// ErrEmptyCategory is returned for a category without a name or patterns.
	ErrEmptyCategory = errors.New("category must have a name and at least one pattern")
)

// Category is a named group of pattern fragments describing one class of term.
type Category struct {
	Name     string   `yaml:"name" json:"name"`
	Patterns []string `yaml:"patterns" json:"patterns"`
}

// Match is one occurrence of a category pattern in the scanned text.
// Start and End are byte offsets, text[Start:End] == Text.
type Match struct {
	Text     string `json:"text" yaml:"text"`
	Start    int    `json:"start" yaml:"start"`
	End      int    `json:"end" yaml:"end"`
	Category string `json:"category" yaml:"category"`
}

// PatternError reports the category whose combined expression did not compile.
type PatternError struct {
	Category string
	Err      error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%s: category %q: %v", ErrInvalidPattern, e.Category, e.Err)
}

func (e *PatternError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}

type compiledCategory struct {
	name  string
	regex *regexp.Regexp
}

// Tagger holds compiled categories. It is immutable and safe for concurrent use.
type Tagger struct {
	categories []compiledCategory
	topN       int
}

// Compile builds a Tagger for the given categories, preserving their order.
func Compile(categories []Category) (*Tagger, error) {
	t := &Tagger{
		categories: make([]compiledCategory, 0, len(categories)),
		topN:       DefaultTopN,
	}

	for _, category := range categories {
		if strings.TrimSpace(category.Name) == "" || len(category.Patterns) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyCategory, category.Name)
		}

		regex, err := regexp.Compile(CategoryExpression(category.Patterns))
		if err != nil {
			return nil, &PatternError{Category: category.Name, Err: err}
		}

		t.categories = append(t.categories, compiledCategory{name: category.Name, regex: regex})
	}

	return t, nil
}

// CategoryExpression joins pattern fragments into one case-insensitive,
// word-bounded alternation. RE2's \b only knows ASCII word characters, so Tag
// also drops matches that touch a non-ASCII letter or digit ("tomatoé").
func CategoryExpression(patterns []string) string {
	return `(?i)\b(?:` + strings.Join(patterns, "|") + `)\b`
}

// WithTopN returns a copy of the tagger whose Summarize keeps n entries per category.
func (t *Tagger) WithTopN(n int) *Tagger {
	clone := *t
	if n > 0 {
		clone.topN = n
	}
	return &clone
}

// Categories returns the category names in declaration order.
func (t *Tagger) Categories() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.name
	}
	return names
}

// Tag scans text with every category and returns all matches, grouped by
// category in declaration order.
func (t *Tagger) Tag(text string) []Match {
	matches := []Match{}
	if text == "" {
		return matches
	}

	for _, category := range t.categories {
		for _, loc := range category.regex.FindAllStringIndex(text, -1) {
			if !isWordBoundary(text, loc[0]) || !isWordBoundary(text, loc[1]) {
				continue
			}
			matches = append(matches, Match{
				Text:     text[loc[0]:loc[1]],
				Start:    loc[0],
				End:      loc[1],
				Category: category.name,
			})
		}
	}

	return matches
}

// isWordBoundary reports whether offset separates a word character from a
// non-word character, with Unicode letters and digits counted as word characters.
func isWordBoundary(text string, offset int) bool {
	before, after := false, false
	if offset > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:offset])
		before = isWordRune(r)
	}
	if offset < len(text) {
		r, _ := utf8.DecodeRuneInString(text[offset:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// Covers reports whether any category matches the whole of word.
func (t *Tagger) Covers(word string) bool {
	for _, category := range t.categories {
		loc := category.regex.FindStringIndex(word)
		if loc != nil && loc[0] == 0 && loc[1] == len(word) {
			return true
		}
	}
	return false
}

// Tag compiles categories and scans text in one step.
func Tag(text string, categories []Category) ([]Match, error) {
	t, err := Compile(categories)
	if err != nil {
		return nil, err
	}
	return t.Tag(text), nil
}

// SortByOffset returns a copy of matches ordered by position in the document.
// Ties on start keep the shorter span first, then the original order.
func SortByOffset(matches []Match) []Match {
	sorted := make([]Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})
	return sorted
}
