// Package observability provides formatted, human-readable output for CLI commands.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-wizard/internal/lexicon"
	"github.com/jonathan/cv-wizard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
	// maxBar is the longest frequency bar drawn for a keyword
	maxBar = 20
)

// coverageTips are printed under every coverage report
var coverageTips = []string{
	"Add the most important missing keywords to Skills or descriptions",
	"Use technical terms naturally inside descriptions",
	"Use industry language when describing achievements",
	"Aim to use each keyword 1-2 times, without stuffing",
}

// Printer handles formatted output for CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintJSON writes v as indented JSON
func (p *Printer) PrintJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// PrintMatchResult outputs the match score with matched and missing job keywords.
func (p *Printer) PrintMatchResult(result types.MatchResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %d%%\n", result.Score))
	sb.WriteString(fmt.Sprintf("Language: %s\n", result.Language))
	sb.WriteString(fmt.Sprintf("Keywords: %d matched / %d considered\n", len(result.Matched), result.Considered()))

	if result.Considered() == 0 {
		sb.WriteString("\nNo keywords found in the job description.\n")
	}
	if len(result.Matched) > 0 {
		sb.WriteString("\nMatched:\n")
		writeList(&sb, result.Matched)
	}
	if len(result.Missing) > 0 {
		sb.WriteString("\nMissing:\n")
		writeList(&sb, result.Missing)
	}
	for _, w := range result.Warnings {
		sb.WriteString(fmt.Sprintf("\n⚠ %s\n", w))
	}

	p.printBox("JOB MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchResults outputs one line per scored job description
func (p *Printer) PrintBatchResults(sources []string, results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	for i, r := range results {
		name := fmt.Sprintf("#%d", i+1)
		if i < len(sources) && sources[i] != "" {
			name = sources[i]
		}
		sb.WriteString(fmt.Sprintf("%-38s %3d%%  (%d/%d)\n", truncate(name, 38), r.Score, len(r.Matched), r.Considered()))
	}
	p.printBox("JOB MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCoverageReport outputs summary statistics, the most used keywords, per-category findings and advice.
func (p *Printer) PrintCoverageReport(report types.CoverageReport) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total words:     %d\n", report.TotalWords))
	sb.WriteString(fmt.Sprintf("Unique keywords: %d\n", report.UniqueFound))
	sb.WriteString(fmt.Sprintf("Coverage:        %.1f%% (%d/%d)\n", report.Coverage, report.UniqueFound, report.TaxonomySize))
	sb.WriteString(fmt.Sprintf("Rating:          %s\n", strings.ToUpper(string(report.Tier))))
	p.printBox("KEYWORD COVERAGE", strings.TrimSuffix(sb.String(), "\n"))

	if len(report.TopKeywords) > 0 {
		sb.Reset()
		for _, kc := range report.TopKeywords {
			bar := strings.Repeat("█", min(kc.Count, maxBar))
			sb.WriteString(fmt.Sprintf("%-24s %s %dx\n", truncate(kc.Keyword, 24), bar, kc.Count))
		}
		p.printBox(fmt.Sprintf("MOST USED KEYWORDS (Top %d)", len(report.TopKeywords)), strings.TrimSuffix(sb.String(), "\n"))
	}

	for _, cat := range report.Categories {
		if len(cat.Found) > 0 {
			sb.Reset()
			for _, kc := range cat.Found {
				sb.WriteString(fmt.Sprintf("  • %-30s (%dx)\n", truncate(kc.Keyword, 30), kc.Count))
			}
			p.printBox(fmt.Sprintf("%s - found (%d)", strings.ToUpper(cat.Category), len(cat.Found)), strings.TrimSuffix(sb.String(), "\n"))
		}
		if cat.ReportMissing && len(cat.Missing) > 0 {
			sb.Reset()
			sb.WriteString("Keywords to add:\n")
			writeList(&sb, cat.Missing)
			p.printBox(fmt.Sprintf("%s - missing (%d)", strings.ToUpper(cat.Category), len(cat.Missing)), strings.TrimSuffix(sb.String(), "\n"))
		}
	}

	sb.Reset()
	if report.Advice != "" {
		sb.WriteString(fmt.Sprintf("%s %s\n\n", tierMarker(report.Tier), report.Advice))
	}
	for i, tip := range coverageTips {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, tip))
	}
	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs weak phrases with their alternatives
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		p.printBox("TEXT SUGGESTIONS", "No weak phrases found.")
		return
	}

	var sb strings.Builder
	for _, s := range suggestions {
		sb.WriteString(fmt.Sprintf("%q → %s\n", s.WeakPhrase, strings.Join(s.Alternatives, ", ")))
	}
	p.printBox(fmt.Sprintf("TEXT SUGGESTIONS (%d)", len(suggestions)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBulletReviews outputs per-bullet style findings
func (p *Printer) PrintBulletReviews(reviews []types.BulletReview) {
	if len(reviews) == 0 {
		return
	}

	var sb strings.Builder
	for i, r := range reviews {
		sb.WriteString(fmt.Sprintf("%s\n", r.Text))
		sb.WriteString(fmt.Sprintf("  verb %s  metric %s", check(r.StrongVerb), check(r.Quantified)))
		if len(r.WeakPhrases) > 0 {
			sb.WriteString(fmt.Sprintf("  weak: %s", strings.Join(r.WeakPhrases, ", ")))
		}
		sb.WriteString("\n")
		if i < len(reviews)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("BULLET REVIEW", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywords outputs ranked keywords with frequency bars
func (p *Printer) PrintKeywords(lang lexicon.Language, ranked []types.RankedKeyword) {
	if len(ranked) == 0 {
		p.printBox("KEYWORDS", "No keywords found.")
		return
	}

	var sb strings.Builder
	for i, rk := range ranked {
		bar := strings.Repeat("█", min(rk.Count, maxBar))
		sb.WriteString(fmt.Sprintf("%2d. %-22s %s %dx\n", i+1, truncate(rk.Keyword, 22), bar, rk.Count))
	}
	p.printBox(fmt.Sprintf("KEYWORDS [%s] (%d)", lang, len(ranked)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTaxonomy outputs every category with its keywords
func (p *Printer) PrintTaxonomy(tax lexicon.Taxonomy) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Version:  %s\n", tax.Version))
	sb.WriteString(fmt.Sprintf("Keywords: %d\n", tax.Size()))
	for _, cat := range tax.Categories {
		sb.WriteString(fmt.Sprintf("\n%s (%d)\n", cat.Name, len(cat.Keywords)))
		for _, kw := range cat.Keywords {
			sb.WriteString(fmt.Sprintf("  • %s\n", kw))
		}
	}
	p.printBox("KEYWORD TAXONOMY", strings.TrimSuffix(sb.String(), "\n"))
}

// writeList writes up to maxItemsToShow bullet items and a remainder count
func writeList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func tierMarker(tier types.CoverageTier) string {
	switch tier {
	case types.TierLow:
		return "🔴 LOW:"
	case types.TierMedium:
		return "🟡 MEDIUM:"
	default:
		return "🟢 GOOD:"
	}
}

func check(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
