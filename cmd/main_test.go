// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chloeskafte/gardening-mvp/internal/paths"
	"github.com/chloeskafte/gardening-mvp/internal/report"
)

const guideText = "Plant tomatoes and BASIL in spring. Mulching helps the soil.\n" +
	"Rhubarb likes rich soil. Rhubarb crowns rot in wet clay.\n"

// isolate keeps tests away from any config file on the machine
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, filepath.Join(dir, "config"))
	chdir(t, dir)
	return dir
}

func writeGuide(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "guide.txt")
	require.NoError(t, os.WriteFile(path, []byte(guideText), 0644))
	return path
}

func execute(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestMissingArgumentPrintsUsage(t *testing.T) {
	isolate(t)

	code, stdout, _ := execute()
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "garden-ner <file>")
}

func TestMissingFileIsNotAFailure(t *testing.T) {
	dir := isolate(t)

	code, _, stderr := execute(filepath.Join(dir, "absent.pdf"))
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "input file not found")
}

func TestDirectoryInputIsUnreadable(t *testing.T) {
	dir := isolate(t)

	code, _, stderr := execute(dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "input file unreadable")
}

func TestPermissionDeniedIsNotAFailure(t *testing.T) {
	if os.Geteuid() == 0 || runtime.GOOS == "windows" {
		t.Skip("file mode does not restrict reads here")
	}
	dir := isolate(t)
	input := writeGuide(t, dir)
	require.NoError(t, os.Chmod(input, 0000))

	code, _, stderr := execute(input)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "input file unreadable")
	assert.Contains(t, stderr, "permission denied")
}

func TestDiscoverLongMinLength(t *testing.T) {
	dir := isolate(t)
	input := writeGuide(t, dir)

	code, stdout, stderr := execute("discover", input, "--min-length", "1001")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "No uncovered words found\n", stdout)
}

func TestAnalyzeWritesJSONReport(t *testing.T) {
	dir := isolate(t)
	input := writeGuide(t, dir)

	code, stdout, stderr := execute(input)
	require.Equal(t, 0, code, stderr)

	reportPath := filepath.Join(dir, "guide_ner_analysis.json")
	assert.Contains(t, stdout, "Analysis saved to: "+reportPath)
	assert.Contains(t, stdout, "NER ANALYSIS SUMMARY")
	assert.NotContains(t, stdout, "\x1b[", "colors are off when stdout is not a terminal")

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	require.NoError(t, report.Validate(data))

	var r report.Report
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, input, r.Document.Source)
	assert.Equal(t, 2, r.Summary.TotalPlantNames)
	assert.Nil(t, r.StandardEntities)

	_, err = os.Stat(filepath.Join(dir, "guide_extracted.txt"))
	assert.True(t, os.IsNotExist(err), "text input is not re-extracted")
}

func TestAnalyzePDF(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "internal", "textsource", "testdata", "garden_guide.pdf"))
	require.NoError(t, err)
	dir := isolate(t)
	input := filepath.Join(dir, "garden_guide.pdf")
	require.NoError(t, os.WriteFile(input, data, 0644))

	code, stdout, stderr := execute(input, "--format", "csv")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "Extracted text saved to: "+filepath.Join(dir, "garden_guide_extracted.txt"))
	assert.Contains(t, stdout, "Analysis saved to: "+filepath.Join(dir, "garden_guide_ner_analysis.csv"))
	assert.Contains(t, stdout, "Plant names: 2")
}

func TestAnalyzeSubcommandWithFlags(t *testing.T) {
	dir := isolate(t)
	input := writeGuide(t, dir)
	outDir := filepath.Join(dir, "out")

	code, stdout, stderr := execute("analyze", input, "--format", "yaml", "--output-dir", outDir, "--entities", "--quiet")
	require.Equal(t, 0, code, stderr)

	reportPath := filepath.Join(outDir, "guide_ner_analysis.yaml")
	assert.FileExists(t, reportPath)
	assert.Contains(t, stdout, reportPath)
	assert.NotContains(t, stdout, "NER ANALYSIS SUMMARY")
}

func TestUnsupportedFormatFails(t *testing.T) {
	dir := isolate(t)
	input := writeGuide(t, dir)

	code, _, stderr := execute(input, "--format", "pdf")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unsupported format 'pdf'")
}

func TestInvalidTopFails(t *testing.T) {
	dir := isolate(t)
	input := writeGuide(t, dir)

	code, _, stderr := execute(input, "--top", "0")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--top must be at least 1")
}

func TestUnknownProfileFails(t *testing.T) {
	dir := isolate(t)
	input := writeGuide(t, dir)

	code, _, stderr := execute(input, "--profile", "nightly")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "profile 'nightly' not found")
}

func TestProfileFromConfigFile(t *testing.T) {
	dir := isolate(t)
	input := writeGuide(t, dir)

	configYAML := `
profiles:
  sheets:
    description: Spreadsheet output
    format: xlsx
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "garden-ner.yaml"), []byte(configYAML), 0644))

	code, _, stderr := execute(input, "--profile", "sheets")
	require.Equal(t, 0, code, stderr)
	assert.FileExists(t, filepath.Join(dir, "guide_ner_analysis.xlsx"))

	// flags win over the profile
	code, _, stderr = execute(input, "--profile", "sheets", "--format", "csv")
	require.Equal(t, 0, code, stderr)
	assert.FileExists(t, filepath.Join(dir, "guide_ner_analysis.csv"))
}

func TestExplicitConfigMustLoad(t *testing.T) {
	dir := isolate(t)
	input := writeGuide(t, dir)

	code, _, stderr := execute(input, "--config", filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error reading config file")
}

func TestExtractTextFile(t *testing.T) {
	dir := isolate(t)
	input := writeGuide(t, dir)

	code, stdout, stderr := execute("extract", input)
	require.Equal(t, 0, code, stderr)

	artifact := filepath.Join(dir, "guide_extracted.txt")
	assert.Contains(t, stdout, "Extracted 1 pages to: "+artifact)
	assert.Contains(t, stdout, "Preview:")

	data, err := os.ReadFile(artifact)
	require.NoError(t, err)
	assert.Equal(t, "\n--- Page 1 ---\n"+guideText, string(data))
}

func TestDiscoverListsUncoveredWords(t *testing.T) {
	dir := isolate(t)
	input := writeGuide(t, dir)

	code, stdout, stderr := execute("discover", input, "--limit", "1")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "rhubarb: 2\n", stdout)
}

func TestProfilesListsDefaults(t *testing.T) {
	isolate(t)

	code, stdout, _ := execute("profiles")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "full")
	assert.Contains(t, stdout, "quick")

	code, stdout, _ = execute("profiles", "full")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Format:      xlsx")
}

func TestVersion(t *testing.T) {
	isolate(t)

	code, stdout, _ := execute("version")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "garden-ner")

	code, stdout, _ = execute("version", "--full")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "version: ")
}

func TestSchemaPrintsReportSchema(t *testing.T) {
	isolate(t)

	code, stdout, _ := execute("schema")
	require.Equal(t, 0, code)
	assert.Equal(t, string(report.Schema()), stdout)

	var doc struct {
		Title    string   `json:"title"`
		Required []string `json:"required"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "garden-ner analysis report", doc.Title)
	assert.Contains(t, doc.Required, "plant_names")
}

func TestFormatsListsRegistry(t *testing.T) {
	isolate(t)

	code, stdout, _ := execute("formats")
	require.Equal(t, 0, code)
	for _, name := range []string{"csv", "json", "text", "xlsx", "yaml"} {
		assert.Contains(t, stdout, "  "+name)
	}
}

// chdir changes the working directory for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
