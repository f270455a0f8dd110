package ingestion

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are removed before text extraction
const noiseSelectors = "nav, footer, header, script, style, noscript, form, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup, .apply-button"

// Page is the text content of an HTML job posting
type Page struct {
	Title string
	Text  string
}

// DefaultContentSelectors returns selectors tried in order to find the posting body.
func DefaultContentSelectors() []string {
	return []string{
		".job-description",
		"#job-description",
		"[itemprop=description]",
		"main",
		"article",
		".content",
		"#content",
	}
}

// IsHTML reports whether content should be treated as HTML, by file extension or a leading tag.
func IsHTML(path, content string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	head := strings.ToLower(strings.TrimSpace(content))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// ExtractHTML parses html, drops navigation and script noise, and returns the text of the first
// element matching contentSelectors, falling back to body. Block elements end up on separate lines.
func ExtractHTML(html string, contentSelectors []string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	doc.Find(noiseSelectors).Remove()

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			main = selection.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	// goquery's Text concatenates without separators; break block elements onto their own lines
	main.Find("p, li, h1, h2, h3, h4, h5, h6, div, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return &Page{
		Title: title,
		Text:  cleanWhitespace(main.Text()),
	}, nil
}

// cleanWhitespace trims every line and drops empty ones
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = spaceRun.ReplaceAllString(strings.TrimSpace(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
