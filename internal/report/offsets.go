// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"unicode/utf8"

	"github.com/chloeskafte/gardening-mvp/internal/entities"
	"github.com/chloeskafte/gardening-mvp/internal/tagger"
)

// charIndex maps byte offsets of a text to character (code point) offsets.
// It is nil for ASCII text, where both are the same.
type charIndex []int

func newCharIndex(text string) charIndex {
	ascii := true
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return nil
	}

	index := make(charIndex, len(text)+1)
	count := 0
	for i := range text {
		index[i] = count
		count++
	}
	index[len(text)] = count
	return index
}

func (x charIndex) at(offset int) int {
	if x == nil || offset < 0 || offset >= len(x) {
		return offset
	}
	return x[offset]
}

func (x charIndex) matches(matches []tagger.Match) []tagger.Match {
	if x == nil || matches == nil {
		return matches
	}
	converted := make([]tagger.Match, len(matches))
	for i, m := range matches {
		m.Start, m.End = x.at(m.Start), x.at(m.End)
		converted[i] = m
	}
	return converted
}

func (x charIndex) entities(found []entities.Entity) []entities.Entity {
	if x == nil || found == nil {
		return found
	}
	converted := make([]entities.Entity, len(found))
	for i, e := range found {
		e.Start, e.End = x.at(e.Start), x.at(e.End)
		converted[i] = e
	}
	return converted
}
