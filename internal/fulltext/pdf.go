// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fulltext extracts text and lightweight metadata from local PDF
// files so a researcher can attach papers they already have on disk.
package fulltext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Metadata holds what can be cheaply sniffed from a PDF without relying on
// its (frequently absent) info dictionary.
type Metadata struct {
	// Title is the first substantial line of the first page. Best effort;
	// may be empty.
	Title string

	// Pages is the page count.
	Pages int
}

// ExtractPDF reads the PDF at path and returns its plain text and metadata.
// Pages that fail to decode are skipped; the extraction only fails when the
// file itself cannot be opened or yields no text at all.
func ExtractPDF(path string) (string, Metadata, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", Metadata{}, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	meta := Metadata{Pages: r.NumPage()}

	var builder strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	text := builder.String()
	if strings.TrimSpace(text) == "" {
		return "", meta, fmt.Errorf("no extractable text in %s", path)
	}

	meta.Title = sniffTitle(text)
	return text, meta, nil
}

// sniffTitle returns the first line long enough to plausibly be a title.
func sniffTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 20 {
			return line
		}
	}
	return ""
}
