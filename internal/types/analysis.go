// Package types provides type definitions for structured data used throughout the cv-wizard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// KeywordSet is the unique, unordered vocabulary of a text
type KeywordSet map[string]struct{}

// Has reports whether keyword is in the set
func (s KeywordSet) Has(keyword string) bool {
	_, ok := s[keyword]
	return ok
}

// RankedKeyword is a token with its frequency in the source text
type RankedKeyword struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// MatchResult is the outcome of comparing a résumé against a job description.
// Matched and Missing partition the top-K job keywords that were considered.
type MatchResult struct {
	Score    int      `json:"score"`
	Matched  []string `json:"matched"`
	Missing  []string `json:"missing"`
	Language string   `json:"language,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Considered returns the number of job keywords the score was computed over
func (r MatchResult) Considered() int {
	return len(r.Matched) + len(r.Missing)
}

// KeywordCount is a taxonomy keyword and how often it occurs in the résumé
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// CategoryCoverage holds found and missing taxonomy keywords for one category
type CategoryCoverage struct {
	Category      string         `json:"category"`
	Found         []KeywordCount `json:"found"`
	Missing       []string       `json:"missing"`
	ReportMissing bool           `json:"report_missing,omitempty"`
}

// CoverageTier is the qualitative rating of a coverage percentage
type CoverageTier string

const (
	TierLow    CoverageTier = "low"
	TierMedium CoverageTier = "medium"
	TierGood   CoverageTier = "good"
)

// CoverageReport summarizes how much of the keyword taxonomy a résumé covers
type CoverageReport struct {
	TaxonomyVersion string             `json:"taxonomy_version,omitempty"`
	Categories      []CategoryCoverage `json:"categories"`
	UniqueFound     int                `json:"unique_found"`
	TaxonomySize    int                `json:"taxonomy_size"`
	Coverage        float64            `json:"coverage"`
	Tier            CoverageTier       `json:"tier"`
	Advice          string             `json:"advice,omitempty"`
	TotalWords      int                `json:"total_words"`
	TopKeywords     []KeywordCount     `json:"top_keywords"`
}

// Category returns the coverage entry for the named category, or nil
func (r *CoverageReport) Category(name string) *CategoryCoverage {
	for i := range r.Categories {
		if r.Categories[i].Category == name {
			return &r.Categories[i]
		}
	}
	return nil
}

// Suggestion pairs a weak phrase found in text with stronger alternatives
type Suggestion struct {
	WeakPhrase   string   `json:"weak_phrase"`
	Alternatives []string `json:"alternatives"`
}

// BulletReview holds style findings for a single description bullet
type BulletReview struct {
	Text        string   `json:"text"`
	StrongVerb  bool     `json:"strong_verb"`
	Quantified  bool     `json:"quantified"`
	WeakPhrases []string `json:"weak_phrases,omitempty"`
}
