// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package vocabulary

import "github.com/chloeskafte/gardening-mvp/internal/tagger"

// Category names used by the built-in tables.
const (
	CategoryGardeningTerm      = "gardening_term"
	CategoryGardeningTechnique = "gardening_technique"
	CategoryVegetable          = "vegetable"
	CategoryFruit              = "fruit"
	CategoryHerb               = "herb"
	CategoryFlower             = "flower"
)

// Plant names common in cool-temperate Australian kitchen gardens.
var plantCategories = []tagger.Category{
	{
		Name: CategoryVegetable,
		Patterns: []string{
			`carrots?`, `beetroots?`, `broccolis?`, `cabbages?`, `cauliflowers?`, `lettuces?`, `spinach`, `silverbeet`,
			`peas?`, `beans?`, `zucchinis?`, `pumpkins?`, `potatoes?`, `onions?`, `leeks?`, `radishes?`, `turnips?`,
			`parsnips?`, `celery`, `spring onions?`, `garlic`, `tomatoes?`, `capsicums?`, `bell peppers?`, `chillies?`,
			`cucumbers?`, `squash`, `corn`, `kale`, `brussels sprouts?`,
		},
	},
	{
		Name: CategoryFruit,
		Patterns: []string{
			`apples?`, `pears?`, `plums?`, `cherries?`, `peaches?`, `nectarines?`, `apricots?`, `quinces?`, `figs?`,
			`strawberries?`, `raspberries?`, `blackberries?`, `blueberries?`, `grapes?`, `gooseberries?`, `currants?`,
			`lemons?`, `mandarins?`, `avocados?`,
		},
	},
	{
		Name: CategoryHerb,
		Patterns: []string{
			`parsley`, `coriander`, `basil`, `rosemary`, `thyme`, `oregano`, `mint`, `chives`, `sage`, `cilantro`, `dill`,
		},
	},
	{
		Name:     CategoryFlower,
		Patterns: []string{`roses?`, `tulips?`, `daffodils?`, `marigolds?`, `sunflowers?`},
	},
}

var gardeningTerms = []tagger.Category{
	{
		Name: CategoryGardeningTerm,
		Patterns: []string{
			`soil`, `compost`, `fertilizer`, `mulch`, `seeds?`, `seedlings?`, `transplant`, `harvest`, `prune`, `water`,
			`irrigation`, `drainage`, `garden`, `plot`, `bed`, `row`, `container`, `pot`, `greenhouse`, `shed`, `tool`,
			`shovel`, `rake`, `hoe`, `trowel`, `organic`, `pesticide`, `herbicide`, `fungicide`, `pest`, `disease`,
			`blight`, `mildew`, `rot`, `sunlight`, `shade`, `full sun`, `partial shade`, `hardiness zone`, `climate`,
			`season`, `spring`, `summer`, `autumn`, `winter`, `germination`, `pollination`, `photosynthesis`, `root`,
			`stem`, `leaf`, `leaves`, `flower`, `fruit`, `vegetable`, `herb`,
		},
	},
}

var gardeningTechniques = []tagger.Category{
	{
		Name: CategoryGardeningTechnique,
		Patterns: []string{
			`planting`, `sowing`, `watering`, `fertilizing`, `pruning`, `harvesting`, `weeding`, `mulching`, `composting`,
			`transplanting`, `thinning`, `pinching`, `deadheading`, `staking`, `trellising`, `crop rotation`,
			`seed starting`, `germination`, `hardening off`, `direct sowing`, `indoor growing`, `organic gardening`,
			`companion planting`, `succession planting`, `intercropping`,
		},
	},
}

var stopwords = []string{
	"the", "and", "for", "with", "from", "into", "over", "when", "where", "you", "your", "they", "their", "these",
	"those", "will", "have", "has", "are", "was", "not", "can", "may", "all", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten", "it", "in", "on", "at", "by", "to", "of", "as", "be", "is", "or", "an",
	"a", "we", "if", "so", "do", "no", "up", "out", "some", "more", "most", "any", "each", "many", "much", "such",
	"only", "own", "same", "than", "too", "very", "just", "even", "still", "also", "after", "before", "again",
	"once", "about", "because", "how", "while", "during", "without", "within", "between", "through", "since",
	"until", "although", "though", "nor", "yet", "both", "either", "neither", "whether", "why", "which", "what",
	"who", "whose", "whom", "here", "there", "every", "another", "few", "less", "least", "great", "greater",
	"greatest", "best", "better", "worst", "bad", "worse", "good", "new", "old", "young", "first", "last", "next",
	"previous", "other", "none",
}
