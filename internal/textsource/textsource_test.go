// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textsource

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chloeskafte/gardening-mvp/internal/observability"
)

// two pages: "Plant tomatoes and basil in spring." and "Mulching helps the soil."
const guidePDF = "testdata/garden_guide.pdf"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestRenderAndSplitPagesRoundTrip(t *testing.T) {
	pages := []Page{
		{Number: 1, Text: "Plant tomatoes in spring.\n"},
		{Number: 2, Text: "Prune the roses."},
	}

	rendered := Render(pages)
	assert.Equal(t, "\n--- Page 1 ---\nPlant tomatoes in spring.\n\n--- Page 2 ---\nPrune the roses.", rendered)
	assert.Equal(t, pages, SplitPages(rendered))
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(nil))
}

func TestSplitPagesWithoutMarkers(t *testing.T) {
	pages := SplitPages("just some compost notes")
	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, "just some compost notes", pages[0].Text)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short", 500))
	assert.Equal(t, "abc...", Preview("abcdef", 3))
	assert.Equal(t, "abcdef", Preview("abcdef", 0))
	assert.Equal(t, "séd...", Preview("sédum", 3))
}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF("missing.PDF"))

	headerOnly := writeFile(t, "guide.bin", []byte("%PDF-1.7\n"))
	assert.True(t, IsPDF(headerOnly))

	text := writeFile(t, "notes.bin", []byte("hello"))
	assert.False(t, IsPDF(text))

	assert.False(t, IsPDF(filepath.Join(t.TempDir(), "absent.bin")))
}

func TestPlainTextSourcePages(t *testing.T) {
	path := writeFile(t, "guide_extracted.txt", []byte("\n--- Page 1 ---\nSow basil.\n--- Page 2 ---\nWater daily."))

	source := NewPlainTextSource()
	require.True(t, source.CanProcess(path))

	pages, err := source.Pages(path)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "Sow basil.", pages[0].Text)
	assert.Equal(t, 2, pages[1].Number)
	assert.Equal(t, "Water daily.", pages[1].Text)
}

func TestPlainTextSourceRejectsBinary(t *testing.T) {
	source := NewPlainTextSource()

	binary := writeFile(t, "blob.dat", []byte{0x00, 0x01, 0x02, 0x03})
	assert.False(t, source.CanProcess(binary))
	assert.False(t, source.CanProcess("guide.pdf"))

	invalid := writeFile(t, "bad.txt", []byte{0xff, 0xfe, 0xfd})
	_, err := source.Pages(invalid)
	assert.Error(t, err)
}

func TestRouterRoutesByType(t *testing.T) {
	router := DefaultRouter(0)

	source, err := router.Route("guide.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf", source.Name())

	notes := writeFile(t, "notes.md", []byte("# Compost\n"))
	source, err = router.Route(notes)
	require.NoError(t, err)
	assert.Equal(t, "plaintext", source.Name())

	binary := writeFile(t, "image.raw", []byte{0x00, 0x00, 0x10})
	_, err = router.Route(binary)
	assert.True(t, errors.Is(err, ErrUnsupportedFile))
}

func TestRouterPagesLogsTiming(t *testing.T) {
	var buf bytes.Buffer
	router := DefaultRouter(0)
	router.SetObserver(observability.New(true, &buf))

	path := writeFile(t, "notes.txt", []byte("Deadhead the marigolds."))
	pages, source, err := router.Pages(path)
	require.NoError(t, err)
	assert.Equal(t, "plaintext", source.Name())
	require.Len(t, pages, 1)

	assert.Contains(t, buf.String(), `"operation":"extract_pages"`)
	assert.Contains(t, buf.String(), "1 pages")
}

func TestPDFSourceRejectsCorruptFile(t *testing.T) {
	path := writeFile(t, "broken.pdf", []byte("this is not a pdf"))

	_, err := NewPDFSource(0).Pages(path)
	assert.Error(t, err)
}

func TestPDFSourceMissingFile(t *testing.T) {
	_, err := NewPDFSource(5).Pages(filepath.Join(t.TempDir(), "absent.pdf"))
	assert.Error(t, err)
}

func TestNewPDFSourceClampsNegative(t *testing.T) {
	assert.Equal(t, 0, NewPDFSource(-3).MaxPages)
}

func TestInspectErrors(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "absent.pdf"))
	assert.Error(t, err)

	corrupt := writeFile(t, "broken.pdf", []byte("%PDF-1.4\nnot really"))
	_, err = Inspect(corrupt)
	assert.Error(t, err)
}

func TestReconstructRowText(t *testing.T) {
	row := []pdf.Text{
		{S: "beds", X: 60, W: 20, FontSize: 10},
		{S: "Raised", X: 10, W: 30, FontSize: 10},
		{S: "!", X: 80.5, W: 2, FontSize: 10},
	}

	assert.Equal(t, "Raised beds!", reconstructRowText(row))
	assert.Equal(t, "", reconstructRowText(nil))
}

func TestAverageY(t *testing.T) {
	assert.Equal(t, 0.0, averageY(nil))
	assert.Equal(t, 15.0, averageY([]pdf.Text{{Y: 10}, {Y: 20}}))
}

func TestRouterLoadPlainTextKeepsContent(t *testing.T) {
	content := "\n--- Page 1 ---\nSow basil.\n--- Page 2 ---\nWater daily."
	path := writeFile(t, "guide_extracted.txt", []byte(content))

	doc, err := DefaultRouter(0).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "plaintext", doc.Source)
	assert.Equal(t, content, doc.Text)
	assert.Len(t, doc.Pages, 2)
}

type fixedSource struct{}

func (fixedSource) Name() string           { return "fixed" }
func (fixedSource) CanProcess(string) bool { return true }
func (fixedSource) Pages(string) ([]Page, error) {
	return []Page{{Number: 1, Text: "Prune roses."}, {Number: 2, Text: "Mulch beds."}}, nil
}

func TestRouterLoadRendersPages(t *testing.T) {
	doc, err := NewRouter(fixedSource{}).Load("anything.pdf")
	require.NoError(t, err)
	assert.Equal(t, "\n--- Page 1 ---\nPrune roses.\n--- Page 2 ---\nMulch beds.", doc.Text)
	assert.True(t, doc.Rendered)
}

func TestPDFSourcePages(t *testing.T) {
	pages, err := NewPDFSource(0).Pages(guidePDF)
	require.NoError(t, err)
	require.Len(t, pages, 2)

	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, "Plant tomatoes and basil in spring.", strings.TrimSpace(pages[0].Text))
	assert.Equal(t, 2, pages[1].Number)
	assert.Equal(t, "Mulching helps the soil.", strings.TrimSpace(pages[1].Text))
}

func TestPDFSourceMaxPages(t *testing.T) {
	pages, err := NewPDFSource(1).Pages(guidePDF)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].Number)

	pages, err = NewPDFSource(5).Pages(guidePDF)
	require.NoError(t, err)
	assert.Len(t, pages, 2)
}

func TestInspectReadsInfo(t *testing.T) {
	info, err := Inspect(guidePDF)
	require.NoError(t, err)

	assert.Equal(t, &DocumentInfo{
		PageCount: 2,
		Title:     "Raised Bed Basics",
		Author:    "Canberra Garden Club",
		Producer:  "garden-ner fixture",
	}, info)
}

func TestRouterLoadRendersPDF(t *testing.T) {
	doc, err := DefaultRouter(0).Load(guidePDF)
	require.NoError(t, err)

	assert.Equal(t, "pdf", doc.Source)
	assert.True(t, doc.Rendered)
	require.Len(t, doc.Pages, 2)
	assert.Equal(t, Render(doc.Pages), doc.Text)
	assert.True(t, strings.HasPrefix(doc.Text, "\n--- Page 1 ---\nPlant tomatoes and basil in spring."))
	assert.Contains(t, doc.Text, "\n--- Page 2 ---\nMulching helps the soil.")

	assert.Equal(t, doc.Pages, SplitPages(doc.Text))
}
