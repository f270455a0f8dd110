// Package analysis ties the keyword tools together behind the three public operations:
// match scoring, taxonomy coverage and text improvement suggestions.
package analysis

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jonathan/cv-wizard/internal/coverage"
	"github.com/jonathan/cv-wizard/internal/keywords"
	"github.com/jonathan/cv-wizard/internal/lexicon"
	"github.com/jonathan/cv-wizard/internal/matching"
	"github.com/jonathan/cv-wizard/internal/profile"
	"github.com/jonathan/cv-wizard/internal/rewriting"
	"github.com/jonathan/cv-wizard/internal/types"
)

// Options configures an Engine. Zero values select the built-in defaults.
// A nil Thresholds selects the 30/50 coverage tiers; a non-nil one is used as given, zeros included.
type Options struct {
	TopK             int
	DefaultLanguage  string
	Thresholds       *coverage.Thresholds
	Taxonomy         *lexicon.Taxonomy
	Lexicon          *lexicon.Lexicon
	BatchConcurrency int
}

// Engine runs keyword analysis over résumé profiles. Safe for concurrent use.
type Engine struct {
	lex          *lexicon.Lexicon
	defaultLang  lexicon.Language
	topK         int
	thresholds   coverage.Thresholds
	taxonomy     lexicon.Taxonomy
	improvements []lexicon.Improvement
	concurrency  int
	log          zerolog.Logger
}

// New builds an Engine. It fails only on invalid options.
func New(opts Options, log zerolog.Logger) (*Engine, error) {
	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}

	defaultLang := lex.DefaultLanguage()
	if opts.DefaultLanguage != "" {
		lang, ok := lex.Resolve(opts.DefaultLanguage)
		if !ok {
			return nil, fmt.Errorf("default language %q is not supported (supported: %v)", opts.DefaultLanguage, lex.Languages())
		}
		defaultLang = lang
	}

	thresholds := coverage.DefaultThresholds()
	if opts.Thresholds != nil {
		thresholds = *opts.Thresholds
	}
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}

	topK := opts.TopK
	if topK < 0 {
		return nil, fmt.Errorf("top-K must be non-negative, got %d", topK)
	}
	if topK == 0 {
		topK = matching.DefaultTopK
	}

	taxonomy := lex.Taxonomy()
	if opts.Taxonomy != nil {
		taxonomy = opts.Taxonomy.Clone()
	}

	return &Engine{
		lex:          lex,
		defaultLang:  defaultLang,
		topK:         topK,
		thresholds:   thresholds,
		taxonomy:     taxonomy,
		improvements: lex.Improvements(),
		concurrency:  opts.BatchConcurrency,
		log:          log,
	}, nil
}

// ScoreMatch scores a profile against a job description in the given language.
// An unsupported language falls back to the default and is reported in Warnings.
func (e *Engine) ScoreMatch(p *types.ResumeProfile, jobDescription, lang string) types.MatchResult {
	resolved, warning := e.resolve(lang)
	result := matching.Score(profile.Text(p), jobDescription, e.lex.Stopwords(resolved), e.topK)
	if warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	e.log.Debug().
		Str("language", resolved.String()).
		Int("score", result.Score).
		Int("matched", len(result.Matched)).
		Int("missing", len(result.Missing)).
		Msg("match scored")
	return result
}

// ScoreBatch scores a profile against several job descriptions, preserving their order.
func (e *Engine) ScoreBatch(ctx context.Context, p *types.ResumeProfile, jobDescriptions []string, lang string) ([]types.MatchResult, error) {
	resolved, warning := e.resolve(lang)
	results, err := matching.ScoreBatch(ctx, profile.Text(p), jobDescriptions, e.lex.Stopwords(resolved), matching.BatchOptions{
		TopK:        e.topK,
		Concurrency: e.concurrency,
	})
	if err != nil {
		return nil, err
	}
	if warning != "" {
		for i := range results {
			results[i].Warnings = append(results[i].Warnings, warning)
		}
	}
	return results, nil
}

// AnalyzeCoverage measures the profile's taxonomy coverage
func (e *Engine) AnalyzeCoverage(p *types.ResumeProfile) types.CoverageReport {
	report := coverage.Analyze(profile.Text(p), e.taxonomy, e.thresholds)
	e.log.Debug().
		Float64("coverage", report.Coverage).
		Str("tier", string(report.Tier)).
		Int("found", report.UniqueFound).
		Msg("coverage analyzed")
	return report
}

// SuggestTextImprovements lists weak phrases in text with stronger alternatives
func (e *Engine) SuggestTextImprovements(text string) []types.Suggestion {
	return rewriting.Suggest(text, e.improvements)
}

// ReviewProfile reviews every bullet of every experience description
func (e *Engine) ReviewProfile(p *types.ResumeProfile) []types.BulletReview {
	reviews := make([]types.BulletReview, 0)
	for _, desc := range profile.Descriptions(p) {
		reviews = append(reviews, rewriting.ReviewBullets(desc, e.improvements)...)
	}
	return reviews
}

// ExtractKeywords ranks the keywords of text. n <= 0 returns all of them.
func (e *Engine) ExtractKeywords(text, lang string, n int) ([]types.RankedKeyword, lexicon.Language) {
	resolved, _ := e.resolve(lang)
	return keywords.ExtractRanked(text, e.lex.Stopwords(resolved), n), resolved
}

// Taxonomy returns a copy of the active taxonomy
func (e *Engine) Taxonomy() lexicon.Taxonomy {
	return e.taxonomy.Clone()
}

// DefaultLanguage returns the language used when callers pass no tag
func (e *Engine) DefaultLanguage() lexicon.Language {
	return e.defaultLang
}

// Languages returns the supported languages
func (e *Engine) Languages() []lexicon.Language {
	return e.lex.Languages()
}

// TopK returns the number of job keywords a match considers
func (e *Engine) TopK() int {
	return e.topK
}

// resolve maps a tag to a supported language. An empty tag silently selects the default;
// an unsupported one selects the default and returns a warning, which is also logged.
func (e *Engine) resolve(tag string) (lexicon.Language, string) {
	if tag == "" {
		return e.defaultLang, ""
	}
	lang, ok := e.lex.Resolve(tag)
	if ok {
		return lang, ""
	}

	warning := fmt.Sprintf("unsupported language %q, using %q", tag, e.defaultLang)
	e.log.Warn().
		Str("requested", tag).
		Str("language", e.defaultLang.String()).
		Msg("unsupported language, falling back to default")
	return e.defaultLang, warning
}
