// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import "strings"

// SectionBody returns the body of the section whose heading text equals
// title: the lines after the heading, up to the next heading of the same or
// higher level. The second return is false when no heading matches.
func SectionBody(content, title string) (string, bool) {
	lines := strings.Split(content, "\n")
	start, level := findHeading(lines, title)
	if start < 0 {
		return "", false
	}
	end := sectionEnd(lines, start, level)
	return strings.Join(lines[start+1:end], "\n"), true
}

// ReplaceSection swaps the body of the titled section for replacement,
// keeping the heading line itself. Content is returned unchanged when no
// heading matches.
func ReplaceSection(content, title, replacement string) string {
	lines := strings.Split(content, "\n")
	start, level := findHeading(lines, title)
	if start < 0 {
		return content
	}
	end := sectionEnd(lines, start, level)

	out := make([]string, 0, len(lines))
	out = append(out, lines[:start+1]...)
	out = append(out, strings.Split(replacement, "\n")...)
	out = append(out, lines[end:]...)
	return strings.Join(out, "\n")
}

func findHeading(lines []string, title string) (index, level int) {
	for i, line := range lines {
		if l, text := headingOf(line); l > 0 && text == title {
			return i, l
		}
	}
	return -1, 0
}

func sectionEnd(lines []string, start, level int) int {
	for i := start + 1; i < len(lines); i++ {
		if l, _ := headingOf(lines[i]); l > 0 && l <= level {
			return i
		}
	}
	return len(lines)
}

// headingOf reports the heading level (1-3) and title of a line, or level 0
// for non-headings.
func headingOf(line string) (int, string) {
	for level := 3; level >= 1; level-- {
		prefix := strings.Repeat("#", level) + " "
		if strings.HasPrefix(line, prefix) {
			return level, strings.TrimSpace(line[len(prefix):])
		}
	}
	return 0, ""
}
