package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-wizard/internal/lexicon"
	"github.com/jonathan/cv-wizard/internal/types"
)

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(types.MatchResult{
		Score:    67,
		Matched:  []string{"python", "excel"},
		Missing:  []string{"sql"},
		Language: "en",
		Warnings: []string{`unsupported language "de", using "tr"`},
	})
	output := buf.String()

	assert.Contains(t, output, "JOB MATCH")
	assert.Contains(t, output, "67%")
	assert.Contains(t, output, "2 matched / 3 considered")
	assert.Contains(t, output, "• python")
	assert.Contains(t, output, "• sql")
	assert.Contains(t, output, "unsupported language")
}

func TestPrintMatchResult_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(types.MatchResult{Matched: []string{}, Missing: []string{}})

	assert.Contains(t, buf.String(), "No keywords found in the job description.")
}

func TestPrintBatchResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchResults([]string{"a.txt", ""}, []types.MatchResult{
		{Score: 50, Matched: []string{"x"}, Missing: []string{"y"}},
		{Score: 0},
	})
	output := buf.String()

	assert.Contains(t, output, "a.txt")
	assert.Contains(t, output, "#2")
	assert.Contains(t, output, "(1/2)")
}

func TestPrintCoverageReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	missing := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		missing = append(missing, "kw"+strings.Repeat("x", i))
	}

	p.PrintCoverageReport(types.CoverageReport{
		Categories: []types.CategoryCoverage{
			{
				Category:      "Technical Skills",
				Found:         []types.KeywordCount{{Keyword: "Python", Count: 25}},
				Missing:       missing,
				ReportMissing: true,
			},
			{
				Category: "Domains",
				Missing:  []string{"Finance"},
			},
		},
		UniqueFound:  1,
		TaxonomySize: 13,
		Coverage:     7.69,
		Tier:         types.TierLow,
		Advice:       "Keyword coverage is very low.",
		TotalWords:   120,
		TopKeywords:  []types.KeywordCount{{Keyword: "Python", Count: 25}},
	})
	output := buf.String()

	assert.Contains(t, output, "KEYWORD COVERAGE")
	assert.Contains(t, output, "7.7% (1/13)")
	assert.Contains(t, output, "LOW")
	assert.Contains(t, output, strings.Repeat("█", maxBar)+" 25x")
	assert.NotContains(t, output, strings.Repeat("█", maxBar+1))
	assert.Contains(t, output, "TECHNICAL SKILLS - found (1)")
	assert.Contains(t, output, "TECHNICAL SKILLS - missing (12)")
	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "DOMAINS - missing", "categories without report_missing hide missing keywords")
	assert.Contains(t, output, "Keyword coverage is very low.")
	assert.Contains(t, output, "RECOMMENDATIONS")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions([]types.Suggestion{{WeakPhrase: "made", Alternatives: []string{"Built", "Created"}}})
	assert.Contains(t, buf.String(), `"made" → Built, Created`)

	buf.Reset()
	p.PrintSuggestions(nil)
	assert.Contains(t, buf.String(), "No weak phrases found.")
}

func TestPrintBulletReviews(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBulletReviews([]types.BulletReview{
		{Text: "Built ETL", StrongVerb: true},
		{Text: "Made reports", Quantified: false, WeakPhrases: []string{"made"}},
	})
	output := buf.String()

	assert.Contains(t, output, "BULLET REVIEW")
	assert.Contains(t, output, "verb ✓")
	assert.Contains(t, output, "weak: made")

	buf.Reset()
	p.PrintBulletReviews(nil)
	assert.Empty(t, buf.String())
}

func TestPrintKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywords(lexicon.English, []types.RankedKeyword{{Keyword: "sql", Count: 3}, {Keyword: "python", Count: 2}})
	output := buf.String()

	assert.Contains(t, output, "KEYWORDS [en] (2)")
	assert.Contains(t, output, " 1. sql")
	assert.Contains(t, output, "███ 3x")
}

func TestPrintTaxonomy(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTaxonomy(lexicon.Taxonomy{
		Version:    "v1",
		Categories: []lexicon.Category{{Name: "Cat1", Keywords: []string{"Python", "SQL"}}},
	})
	output := buf.String()

	assert.Contains(t, output, "Version:  v1")
	assert.Contains(t, output, "Keywords: 2")
	assert.Contains(t, output, "Cat1 (2)")
	assert.Contains(t, output, "• SQL")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	require.NoError(t, p.PrintJSON(types.MatchResult{Score: 10, Matched: []string{}, Missing: []string{"go"}}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, float64(10), decoded["score"])
	assert.Equal(t, []any{"go"}, decoded["missing"])
}

func TestPrintBox_TruncatesByRune(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("ş", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.True(t, utf8.ValidString(line))
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
}
