// Package ingestion loads job descriptions from plain-text or HTML sources and cleans them for analysis.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	spaceRun     = regexp.MustCompile(`\s+`)
	blankLineRun = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings and whitespace while preserving headings, bullets and indentation
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	// at most one blank line between paragraphs
	result := blankLineRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims trailing space and collapses inner whitespace. Headings and bullets keep their markers.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := strings.Repeat(" ", len(line)-len(trimmed))
	if isBulletLine(trimmed) {
		return indent + trimmed
	}
	return indent + spaceRun.ReplaceAllString(trimmed, " ")
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// LoadJobDescription reads a job description file. HTML files (by extension or content) are
// reduced to their main text first; the result is cleaned either way.
func LoadJobDescription(path string) (*JobDescription, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseJobDescription(string(content), path)
}

// ParseJobDescription cleans raw job description content. source is recorded as-is.
func ParseJobDescription(content, source string) (*JobDescription, error) {
	if !IsHTML(source, content) {
		return NewJobDescription(CleanText(content), source, FormatText, ""), nil
	}

	page, err := ExtractHTML(content, DefaultContentSelectors())
	if err != nil {
		return nil, err
	}
	return NewJobDescription(CleanText(page.Text), source, FormatHTML, page.Title), nil
}
