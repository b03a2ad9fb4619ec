// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderToParts renders blocks and returns the package parts by name.
func renderToParts(t *testing.T, blocks []Block) map[string]string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, RenderDOCX(blocks, &buf))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		parts[f.Name] = string(data)
	}
	return parts
}

func TestRenderDOCX_PackageParts(t *testing.T) {
	parts := renderToParts(t, Parse("# Title\n\nBody."))

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/numbering.xml",
		"word/document.xml",
	} {
		assert.Contains(t, parts, name)
	}
}

func TestRenderDOCX_StylesCarryDocumentDefaults(t *testing.T) {
	parts := renderToParts(t, nil)

	styles := parts["word/styles.xml"]
	assert.Contains(t, styles, `w:ascii="Times New Roman"`)
	// 12pt body text, in half-points.
	assert.Contains(t, styles, `<w:sz w:val="24"/>`)
	for _, style := range []string{"Heading1", "Heading2", "Heading3", "ListBullet", "ListNumber"} {
		assert.Contains(t, styles, `w:styleId="`+style+`"`)
	}
}

func TestRenderDOCX_HeadingAndParagraphStyles(t *testing.T) {
	parts := renderToParts(t, Parse("## Methods\nPlain body text."))

	doc := parts["word/document.xml"]
	assert.Contains(t, doc, `<w:pStyle w:val="Heading2"/>`)
	assert.Contains(t, doc, `>Methods</w:t>`)
	assert.Contains(t, doc, `>Plain body text.</w:t>`)
}

func TestRenderDOCX_ListStyles(t *testing.T) {
	parts := renderToParts(t, Parse("- bullet item\n1. numbered item"))

	doc := parts["word/document.xml"]
	assert.Contains(t, doc, `<w:pStyle w:val="ListBullet"/>`)
	assert.Contains(t, doc, `<w:pStyle w:val="ListNumber"/>`)
}

func TestRenderDOCX_FigurePlaceholder(t *testing.T) {
	parts := renderToParts(t, Parse("[FIGURE: Conceptual model]"))

	doc := parts["word/document.xml"]
	// Blank paragraph, italic marker paragraph, blank paragraph.
	assert.Contains(t, doc, `<w:p/><w:p><w:r><w:rPr><w:i/></w:rPr>`)
	assert.Contains(t, doc, `[FIGURE: Conceptual model]</w:t></w:r></w:p><w:p/>`)
}

func TestRenderDOCX_BlankAfterListSuppressed(t *testing.T) {
	parts := renderToParts(t, Parse("- item\n\nAfter the list."))

	doc := parts["word/document.xml"]
	assert.NotContains(t, doc, "<w:p/>")
	assert.Contains(t, doc, `>After the list.</w:t>`)
}

func TestRenderDOCX_BlankBetweenParagraphsKept(t *testing.T) {
	parts := renderToParts(t, Parse("First.\n\nSecond."))

	doc := parts["word/document.xml"]
	assert.Contains(t, doc, "<w:p/>")
}

func TestRenderDOCX_EscapesMarkup(t *testing.T) {
	parts := renderToParts(t, Parse("AT&T results show x < y"))

	doc := parts["word/document.xml"]
	assert.Contains(t, doc, "AT&amp;T")
	assert.Contains(t, doc, "x &lt; y")
	assert.NotContains(t, doc, "x < y")
}

func TestRenderDOCX_Deterministic(t *testing.T) {
	blocks := Parse("# Same\n\nEvery time.")

	var first, second bytes.Buffer
	require.NoError(t, RenderDOCX(blocks, &first))
	require.NoError(t, RenderDOCX(blocks, &second))
	assert.True(t, bytes.Equal(first.Bytes(), second.Bytes()))
}

func TestRenderDOCX_PreservesRunWhitespace(t *testing.T) {
	parts := renderToParts(t, []Block{{Kind: KindParagraph, Text: "  padded  "}})

	doc := parts["word/document.xml"]
	assert.Contains(t, doc, `<w:t xml:space="preserve">  padded  </w:t>`)
	assert.True(t, strings.Contains(doc, "padded"))
}
