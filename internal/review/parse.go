// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package review turns the markdown-like review text produced by the
// generation capability into structural blocks and renders them into the
// export targets: a styled DOCX document, plain text, or markdown.
package review

import "strings"

// BlockKind tags the structural role of one line of review text.
type BlockKind int

const (
	KindHeading BlockKind = iota
	KindBullet
	KindNumbered
	KindFigure
	KindParagraph
	KindBlank
)

// Block is one structural unit of parsed review text. Level is meaningful
// only for KindHeading (1..3). For KindFigure, Text carries the whole
// placeholder marker including its brackets.
type Block struct {
	Kind  BlockKind
	Level int
	Text  string
}

// Parse classifies content line by line into blocks. Lines are classified
// independently, in source order, first matching rule wins: heading rules,
// then list rules, then the figure rule, then paragraph. Parse never fails;
// anything unrecognized is a paragraph. A single trailing newline does not
// produce a trailing blank block.
func Parse(content string) []Block {
	if content == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, classify(line))
	}
	return blocks
}

func classify(line string) Block {
	switch {
	case strings.HasPrefix(line, "# "):
		return Block{Kind: KindHeading, Level: 1, Text: line[2:]}
	case strings.HasPrefix(line, "## "):
		return Block{Kind: KindHeading, Level: 2, Text: line[3:]}
	case strings.HasPrefix(line, "### "):
		return Block{Kind: KindHeading, Level: 3, Text: line[4:]}
	}

	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "- ") {
		return Block{Kind: KindBullet, Text: trimmed[2:]}
	}
	if isNumberedItem(trimmed) {
		_, text, _ := strings.Cut(trimmed, ". ")
		return Block{Kind: KindNumbered, Text: text}
	}

	// Figure placeholders: the opening marker and a closing bracket, first
	// occurrence of each. Not nested-bracket-safe.
	if open := strings.Index(line, "[FIGURE:"); open >= 0 {
		if close := strings.Index(line, "]"); close > open {
			return Block{Kind: KindFigure, Text: line[open : close+1]}
		}
	}

	if trimmed != "" {
		return Block{Kind: KindParagraph, Text: line}
	}
	return Block{Kind: KindBlank}
}

// isNumberedItem reports whether the trimmed line starts with a single digit
// followed by ". ".
func isNumberedItem(trimmed string) bool {
	return len(trimmed) >= 3 && trimmed[0] >= '0' && trimmed[0] <= '9' && trimmed[1] == '.' && trimmed[2] == ' '
}
