// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package conclusion extracts the conclusion section from free-form article
// text. This is a documented heuristic, not a parser: a small ordered list of
// section-header patterns, first match wins.
package conclusion

import (
	"regexp"
	"strings"
)

// Each pattern matches a case-insensitive section header and captures the
// body through to the next capitalized line start or the end of the text.
// The body may span newlines. Order is the tie-break: the first pattern that
// matches wins, even if a later one would produce a better-bounded body.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)(?i:conclusions?)\s*(.*?)(?:\n\s*[A-Z][a-z]+|\z)`),
	regexp.MustCompile(`(?s)(?i:discussion and conclusions?)\s*(.*?)(?:\n\s*[A-Z][a-z]+|\z)`),
	regexp.MustCompile(`(?s)(?i:summary)\s*(.*?)(?:\n\s*[A-Z][a-z]+|\z)`),
}

// Extract returns the trimmed body of the first matching conclusion-like
// section, or ("", false) when fullText is empty or no pattern matches.
func Extract(fullText string) (string, bool) {
	if fullText == "" {
		return "", false
	}
	for _, p := range patterns {
		if m := p.FindStringSubmatch(fullText); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}
