// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textsource

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// DocumentInfo is the descriptive metadata of a PDF document.
type DocumentInfo struct {
	PageCount int
	Title     string
	Author    string
	Producer  string
}

// Inspect validates a PDF with pdfcpu and reads its info dictionary.
func Inspect(filePath string) (*DocumentInfo, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("file error: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	if err := api.ValidateFile(filePath, conf); err != nil {
		return nil, fmt.Errorf("invalid PDF file: %w", err)
	}

	ctx, err := api.ReadContextFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	return &DocumentInfo{
		PageCount: ctx.PageCount,
		Title:     strings.TrimSpace(ctx.Title),
		Author:    strings.TrimSpace(ctx.Author),
		Producer:  strings.TrimSpace(ctx.Producer),
	}, nil
}
