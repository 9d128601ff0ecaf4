// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"github.com/chloeskafte/gardening-mvp/internal/tagger"
	"github.com/chloeskafte/gardening-mvp/internal/vocabulary"
)

func vocabularyWith(plants ...tagger.Category) vocabulary.Set {
	set := vocabulary.Default()
	set.PlantNames = plants
	return set
}
