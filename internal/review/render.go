// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// RenderDOCX renders blocks into a DOCX document on w. Headings map to the
// Heading1-3 styles, list items to the ListBullet/ListNumber styles, figure
// placeholders to an italicized paragraph padded with a blank paragraph on
// each side, and everything else to Normal paragraphs (Times New Roman 12pt
// via the document defaults).
//
// A blank line immediately after a list item is suppressed rather than
// rendered: the list styles already carry their own spacing, and the inList
// flag is cleared instead.
func RenderDOCX(blocks []Block, w io.Writer) error {
	var body strings.Builder
	inList := false

	for _, b := range blocks {
		switch b.Kind {
		case KindHeading:
			body.WriteString(styledParagraph(fmt.Sprintf("Heading%d", b.Level), b.Text))
		case KindBullet:
			inList = true
			body.WriteString(styledParagraph("ListBullet", b.Text))
		case KindNumbered:
			inList = true
			body.WriteString(styledParagraph("ListNumber", b.Text))
		case KindFigure:
			body.WriteString(emptyParagraph)
			body.WriteString(italicParagraph(b.Text))
			body.WriteString(emptyParagraph)
		case KindParagraph:
			inList = false
			body.WriteString(plainParagraph(b.Text))
		case KindBlank:
			if inList {
				inList = false
				continue
			}
			body.WriteString(emptyParagraph)
		}
	}

	return writePackage(w, body.String())
}

const emptyParagraph = "<w:p/>"

func styledParagraph(style, text string) string {
	return fmt.Sprintf(
		`<w:p><w:pPr><w:pStyle w:val=%q/></w:pPr>%s</w:p>`,
		style, run(text, false),
	)
}

func plainParagraph(text string) string {
	return fmt.Sprintf("<w:p>%s</w:p>", run(text, false))
}

func italicParagraph(text string) string {
	return fmt.Sprintf("<w:p>%s</w:p>", run(text, true))
}

// run emits a single text run, optionally italic. Text is XML-escaped and
// space-preserved so leading or trailing whitespace survives round trips.
func run(text string, italic bool) string {
	var props string
	if italic {
		props = "<w:rPr><w:i/></w:rPr>"
	}
	return fmt.Sprintf(`<w:r>%s<w:t xml:space="preserve">%s</w:t></w:r>`, props, escape(text))
}

func escape(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails on a failing writer; bytes.Buffer never fails.
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
