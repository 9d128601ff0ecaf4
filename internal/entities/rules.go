// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entities

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// rule is a compiled expression for one label
type rule struct {
	name     string
	label    string
	regex    *regexp.Regexp
	priority int
}

const (
	months      = `January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sept?|Oct|Nov|Dec`
	weekdays    = `Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday`
	numberWords = `one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|twenty|thirty|forty|fifty|hundred|dozen`
	units       = `mm|cm|m|km|metres?|meters?|millimetres?|centimetres?|inch(?:es)?|feet|foot|ft|g|kg|grams?|kilograms?|tonnes?|litres?|liters?|ml|L|hectares?|ha|acres?|degrees?|°C|°F|weeks?|days?|months?|years?|hours?|minutes?`
)

var ruleDefinitions = []struct {
	name     string
	label    string
	pattern  string
	priority int
}{
	{"money_symbol", LabelMoney, `\$\s?\d+(?:,\d{3})*(?:\.\d{1,2})?`, 9},
	{"money_words", LabelMoney, `\b\d+(?:\.\d+)?\s+(?:dollars|cents)\b`, 9},
	{"percent", LabelPercent, `\b\d+(?:\.\d+)?\s?(?:%|percent\b|per cent\b)`, 9},
	{"time_clock", LabelTime, `\b\d{1,2}(?::\d{2})?\s?(?:am|pm|a\.m\.|p\.m\.)`, 8},
	{"time_of_day", LabelTime, `(?i)\b(?:dawn|dusk|midday|noon|midnight|early morning|late afternoon)\b`, 4},
	{"date_full", LabelDate, `\b(?:\d{1,2}(?:st|nd|rd|th)?\s+)?(?:` + months + `)\.?(?:\s+\d{1,2}(?:st|nd|rd|th)?)?(?:,?\s+\d{4})?\b`, 7},
	{"date_numeric", LabelDate, `\b\d{1,2}/\d{1,2}/\d{2,4}\b`, 8},
	{"date_year", LabelDate, `\b(?:1[89]\d{2}|20\d{2})s?\b`, 5},
	{"date_weekday", LabelDate, `\b(?:` + weekdays + `)\b`, 6},
	{"date_relative", LabelDate, `(?i)\b(?:(?:early|mid|late)[- ])?(?:spring|summer|autumn|winter)\s+(?:months?|weeks?)\b|\b(?:each|every|this|next|last)\s+(?:year|season|week|month)\b`, 6},
	{"quantity", LabelQuantity, `(?i)\b(?:\d+(?:\.\d+)?|` + numberWords + `)(?:\s?(?:-|to)\s?\d+(?:\.\d+)?)?\s?(?:` + units + `)\b`, 7},
	{"ordinal_digits", LabelOrdinal, `\b\d+(?:st|nd|rd|th)\b`, 6},
	{"ordinal_words", LabelOrdinal, `(?i)\b(?:first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth)\b`, 3},
	{"cardinal_digits", LabelCardinal, `\b\d+(?:,\d{3})*(?:\.\d+)?\b`, 2},
	{"cardinal_words", LabelCardinal, `(?i)\b(?:` + numberWords + `)\b`, 1},
	{"person_titled", LabelPerson, `\b(?:Mr|Ms|Mrs|Dr|Prof|Sir|Dame|Lord|Lady)\.?\s+[A-Z][a-z]{1,29}(?:\s+[A-Z][a-z]{1,29})?\b`, 8},
	{"person_initial", LabelPerson, `\b[A-Z][a-z]{1,29}\s+[A-Z]\.\s+[A-Z][a-z]{1,29}\b`, 7},
	{"org_suffix", LabelOrg, `\b(?:[A-Z][A-Za-z&'\-]*\s+){1,5}(?:Society|Council|Club|Association|Institute|University|Department|Nursery|Nurseries|Ltd|Inc|Pty|Trust|Gardens|Co-op)\b\.?`, 6},
	{"org_acronym", LabelOrg, `\b(?:CSIRO|ABC|RHS|CWA|ANU|ACT Government)\b`, 6},
	{"event_show", LabelEvent, `\b(?:[A-Z][a-z]+\s+){1,3}(?:Show|Festival|Fair|Expo|Open Day|Market)\b`, 6},
	{"law_act", LabelLaw, `\b(?:[A-Z][a-z]+\s+){1,5}Act(?:\s+\d{4})?\b`, 6},
	{"language", LabelLanguage, `\b(?:English|Latin|Italian|French|Greek|Chinese|Japanese|German|Spanish)\b`, 4},
}

// Gazetteer maps a label to known names for that label.
type Gazetteer map[string][]string

// DefaultGazetteer returns the built-in place names.
func DefaultGazetteer() Gazetteer {
	return Gazetteer{
		LabelGPE: {
			"Australia", "Canberra", "Sydney", "Melbourne", "Brisbane", "Adelaide", "Perth", "Hobart", "Darwin",
			"Queanbeyan", "Goulburn", "Yass", "Cooma", "Tasmania", "Victoria", "Queensland", "New South Wales",
			"NSW", "ACT", "Australian Capital Territory", "New Zealand", "England", "Britain", "United Kingdom",
			"Europe", "America", "United States", "Asia", "Japan", "China", "Italy", "France",
		},
		LabelLocation: {
			"Southern Tablelands", "Monaro", "Brindabella Ranges", "Murrumbidgee", "Lake Burley Griffin",
			"Snowy Mountains", "Blue Mountains", "Mediterranean", "Northern Hemisphere", "Southern Hemisphere",
		},
		LabelFacility: {
			"Australian National Botanic Gardens", "Canberra Centre",
		},
	}
}

// LoadGazetteer reads a YAML gazetteer (label -> names).
func LoadGazetteer(path string) (Gazetteer, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: gazetteer %s not found; install it or remove entities.gazetteer from the configuration", ErrModelUnavailable, path)
		}
		return nil, fmt.Errorf("error reading gazetteer: %w", err)
	}

	gazetteer := Gazetteer{}
	if err := yaml.Unmarshal(data, &gazetteer); err != nil {
		return nil, fmt.Errorf("error parsing gazetteer %s: %w", path, err)
	}

	for label := range gazetteer {
		if !isKnownLabel(label) {
			return nil, fmt.Errorf("gazetteer %s: unknown label %q", path, label)
		}
	}
	return gazetteer, nil
}

// Merge adds the names of other to g.
func (g Gazetteer) Merge(other Gazetteer) Gazetteer {
	merged := Gazetteer{}
	for label, names := range g {
		merged[label] = append([]string(nil), names...)
	}
	for label, names := range other {
		merged[label] = append(merged[label], names...)
	}
	return merged
}

// RuleRecognizer is a Recognizer driven by regular expressions and a gazetteer.
// It holds no mutable state and is safe for concurrent use.
type RuleRecognizer struct {
	rules []rule
}

// NewRuleRecognizer compiles the built-in rules together with gazetteer entries.
func NewRuleRecognizer(gazetteer Gazetteer) (*RuleRecognizer, error) {
	r := &RuleRecognizer{}

	for _, def := range ruleDefinitions {
		regex, err := regexp.Compile(def.pattern)
		if err != nil {
			return nil, fmt.Errorf("entity rule %s: %w", def.name, err)
		}
		r.rules = append(r.rules, rule{name: def.name, label: def.label, regex: regex, priority: def.priority})
	}

	labels := make([]string, 0, len(gazetteer))
	for label := range gazetteer {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		names := gazetteerNames(gazetteer[label])
		if len(names) == 0 {
			continue
		}
		regex, err := regexp.Compile(`\b(?:` + strings.Join(names, "|") + `)\b`)
		if err != nil {
			return nil, fmt.Errorf("gazetteer %s: %w", label, err)
		}
		// gazetteer hits outrank the generic shape rules
		r.rules = append(r.rules, rule{name: "gazetteer_" + strings.ToLower(label), label: label, regex: regex, priority: 10})
	}

	return r, nil
}

// Load builds a recognizer from the built-in gazetteer extended with the file
// at gazetteerPath. An empty path uses the built-in data only.
func Load(gazetteerPath string) (*RuleRecognizer, error) {
	gazetteer := DefaultGazetteer()
	if gazetteerPath != "" {
		extra, err := LoadGazetteer(gazetteerPath)
		if err != nil {
			return nil, err
		}
		gazetteer = gazetteer.Merge(extra)
	}
	return NewRuleRecognizer(gazetteer)
}

// Recognize returns the entities found in text, sorted by start offset.
func (r *RuleRecognizer) Recognize(text string) ([]Entity, error) {
	if text == "" {
		return []Entity{}, nil
	}

	var candidates []candidate
	for _, rl := range r.rules {
		for _, loc := range rl.regex.FindAllStringIndex(text, -1) {
			span := strings.TrimRight(text[loc[0]:loc[1]], " .")
			if span == "" {
				continue
			}
			candidates = append(candidates, candidate{
				text:     span,
				start:    loc[0],
				end:      loc[0] + len(span),
				label:    rl.label,
				priority: rl.priority,
			})
		}
	}

	return resolveOverlaps(candidates), nil
}

// gazetteerNames quotes names for use in an alternation, longest first so
// "New South Wales" wins over "Wales".
func gazetteerNames(names []string) []string {
	seen := make(map[string]bool)
	var quoted []string
	for _, name := range names {
		name = normalizeName(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		quoted = append(quoted, regexp.QuoteMeta(name))
	}
	sort.SliceStable(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })
	return quoted
}

func isKnownLabel(label string) bool {
	for _, l := range Labels {
		if l == label {
			return true
		}
	}
	return false
}
