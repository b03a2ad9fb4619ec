// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import (
	"fmt"
	"os"
)

// Format selects the export target.
type Format string

const (
	FormatDOCX     Format = "docx"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps a CLI argument to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatDOCX, FormatText, FormatMarkdown:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown export format %q (want docx, text, or markdown)", s)
}

// Export writes content to path in the given format. DOCX goes through the
// block model; text and markdown write the content bytes unchanged, with no
// block-model round trip, so exporting twice produces byte-identical files.
// Any I/O failure is reported with the target path and format.
func Export(content, path string, format Format) error {
	switch format {
	case FormatDOCX:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("exporting %s to %s: %w", format, path, err)
		}
		if err := RenderDOCX(Parse(content), f); err != nil {
			f.Close()
			return fmt.Errorf("exporting %s to %s: %w", format, path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("exporting %s to %s: %w", format, path, err)
		}
		return nil
	case FormatText, FormatMarkdown:
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("exporting %s to %s: %w", format, path, err)
		}
		return nil
	}
	return fmt.Errorf("unknown export format %q", format)
}
