// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package analyzer

// Import formatters to register them
import (
	_ "github.com/chloeskafte/gardening-mvp/internal/formatters/csv"
	_ "github.com/chloeskafte/gardening-mvp/internal/formatters/json"
	_ "github.com/chloeskafte/gardening-mvp/internal/formatters/text"
	_ "github.com/chloeskafte/gardening-mvp/internal/formatters/xlsx"
	_ "github.com/chloeskafte/gardening-mvp/internal/formatters/yaml"
)
