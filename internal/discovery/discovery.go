// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package discovery suggests frequent words that the vocabulary does not yet cover.
package discovery

import (
	"regexp"
	"sort"
	"strings"

	"github.com/chloeskafte/gardening-mvp/internal/tagger"
)

var wordPattern = regexp.MustCompile(`\b[a-z]+\b`)

const (
	DefaultMinLength = 3
	DefaultLimit     = 30
)

// Vocabulary reports whether a word is already tagged
type Vocabulary interface {
	Covers(word string) bool
}

// Options controls candidate selection
type Options struct {
	MinLength int `yaml:"min_length"`
	Limit     int `yaml:"limit"`
}

func (o Options) withDefaults() Options {
	if o.MinLength <= 0 {
		o.MinLength = DefaultMinLength
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	return o
}

// Candidates counts lowercase words of at least MinLength ASCII letters,
// skipping stopwords and words the vocabulary covers, and returns the Limit
// most frequent. Ties keep first-seen order.
func Candidates(text string, vocab Vocabulary, stopwords map[string]bool, opts Options) []tagger.TermCount {
	opts = opts.withDefaults()

	counts := make(map[string]int)
	known := make(map[string]bool)
	var order []string

	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(word) < opts.MinLength || stopwords[word] || known[word] {
			continue
		}
		if _, seen := counts[word]; !seen {
			if vocab != nil && vocab.Covers(word) {
				known[word] = true
				continue
			}
			order = append(order, word)
		}
		counts[word]++
	}

	result := make([]tagger.TermCount, len(order))
	for i, word := range order {
		result[i] = tagger.TermCount{Term: word, Count: counts[word]}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if len(result) > opts.Limit {
		result = result[:opts.Limit]
	}
	return result
}
