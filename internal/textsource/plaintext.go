// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textsource

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var pageMarker = regexp.MustCompile(`(?m)^--- Page (\d+) ---$`)

// PlainTextSource reads pre-extracted text files. Files produced by Render
// are split back into pages on their markers.
type PlainTextSource struct{}

// NewPlainTextSource creates a plain text source
func NewPlainTextSource() *PlainTextSource {
	return &PlainTextSource{}
}

func (s *PlainTextSource) Name() string {
	return "plaintext"
}

// GetSupportedExtensions returns the file extensions this source accepts
func (s *PlainTextSource) GetSupportedExtensions() []string {
	return []string{".txt", ".text", ".md", ".markdown", ".rst"}
}

// CanProcess accepts known text extensions, or any file whose first bytes are
// printable UTF-8
func (s *PlainTextSource) CanProcess(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, supported := range s.GetSupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	if ext == ".pdf" {
		return false
	}

	isText, err := isTextFile(filePath)
	return err == nil && isText
}

// Read returns the file content unchanged.
func (s *PlainTextSource) Read(filePath string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return "", fmt.Errorf("error reading text file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("error reading text file: %s is not valid UTF-8", filePath)
	}
	return string(data), nil
}

// Pages reads the file and splits it on page markers when present.
func (s *PlainTextSource) Pages(filePath string) ([]Page, error) {
	text, err := s.Read(filePath)
	if err != nil {
		return nil, err
	}
	return SplitPages(text), nil
}

// SplitPages is the inverse of Render. Text without markers is one page.
func SplitPages(text string) []Page {
	locs := pageMarker.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return []Page{{Number: 1, Text: text}}
	}

	pages := make([]Page, 0, len(locs))
	for i, loc := range locs {
		number, _ := strconv.Atoi(text[loc[2]:loc[3]])

		start := loc[1]
		if start < len(text) && text[start] == '\n' {
			start++
		}
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
			// drop the newline that Render puts before each marker
			if end > start && text[end-1] == '\n' {
				end--
			}
		}

		pages = append(pages, Page{Number: number, Text: text[start:end]})
	}
	return pages
}

func isTextFile(filePath string) (bool, error) {
	file, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && n == 0 {
		return false, err
	}
	buffer = buffer[:n]

	printable := 0
	for _, b := range buffer {
		if b == 0 {
			return false, nil
		}
		if (b >= 32 && b <= 126) || b == 9 || b == 10 || b == 13 || b >= 0x80 {
			printable++
		}
	}

	return float64(printable)/float64(len(buffer)) > 0.95, nil
}
