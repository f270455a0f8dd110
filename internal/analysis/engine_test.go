package analysis

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-wizard/internal/coverage"
	"github.com/jonathan/cv-wizard/internal/lexicon"
	"github.com/jonathan/cv-wizard/internal/matching"
	"github.com/jonathan/cv-wizard/internal/types"
)

func newTestEngine(t *testing.T, opts Options) (*Engine, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	e, err := New(opts, zerolog.New(&buf))
	require.NoError(t, err)
	return e, &buf
}

func sampleProfile() *types.ResumeProfile {
	return &types.ResumeProfile{
		Personal: types.Personal{Summary: "Data analyst using Python and SQL"},
		Experience: []types.Experience{
			{Title: "Analyst", Description: "• Built Excel dashboards\n• Responsible for reporting"},
			{Title: "Intern", Description: "Made 12 weekly Tableau reports"},
		},
		Skills: map[string]string{"technical": "Python, SQL, Excel"},
	}
}

func TestNew_Defaults(t *testing.T) {
	e, _ := newTestEngine(t, Options{})

	assert.Equal(t, lexicon.Turkish, e.DefaultLanguage())
	assert.Equal(t, matching.DefaultTopK, e.TopK())
	assert.Equal(t, lexicon.Default().Taxonomy(), e.Taxonomy())
	assert.Equal(t, []lexicon.Language{lexicon.English, lexicon.Turkish}, e.Languages())
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "unsupported default language", opts: Options{DefaultLanguage: "de"}},
		{name: "negative top-K", opts: Options{TopK: -1}},
		{name: "inverted thresholds", opts: Options{Thresholds: &coverage.Thresholds{LowBelow: 70, GoodFrom: 20}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts, zerolog.Nop())
			assert.Error(t, err)
		})
	}
}

func TestScoreMatch(t *testing.T) {
	e, buf := newTestEngine(t, Options{})

	got := e.ScoreMatch(sampleProfile(), "Python SQL Tableau Python", "en")

	assert.Equal(t, "en", got.Language)
	assert.Equal(t, []string{"python", "sql", "tableau"}, got.Matched)
	assert.Empty(t, got.Missing)
	assert.Equal(t, 100, got.Score)
	assert.Empty(t, got.Warnings)
	assert.NotContains(t, buf.String(), "unsupported language")
}

func TestScoreMatch_LanguageResolution(t *testing.T) {
	tests := []struct {
		name        string
		lang        string
		wantLang    string
		wantWarning bool
	}{
		{name: "empty uses default silently", lang: "", wantLang: "tr"},
		{name: "region subtag", lang: "en-US", wantLang: "en"},
		{name: "underscore and case", lang: "TR_tr", wantLang: "tr"},
		{name: "unsupported falls back", lang: "de", wantLang: "tr", wantWarning: true},
		{name: "garbage falls back", lang: "??", wantLang: "tr", wantWarning: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, buf := newTestEngine(t, Options{})
			got := e.ScoreMatch(sampleProfile(), "python", tt.lang)

			assert.Equal(t, tt.wantLang, got.Language)
			if tt.wantWarning {
				require.Len(t, got.Warnings, 1)
				assert.Contains(t, got.Warnings[0], tt.lang)
				assert.Contains(t, buf.String(), `"level":"warn"`)
			} else {
				assert.Empty(t, got.Warnings)
				assert.NotContains(t, buf.String(), `"level":"warn"`)
			}
		})
	}
}

func TestScoreMatch_EmptyInputs(t *testing.T) {
	e, _ := newTestEngine(t, Options{})

	got := e.ScoreMatch(nil, "   ", "en")
	assert.Equal(t, 0, got.Score)
	assert.Equal(t, []string{}, got.Matched)
	assert.Equal(t, []string{}, got.Missing)
}

func TestScoreMatch_TopK(t *testing.T) {
	e, _ := newTestEngine(t, Options{TopK: 2})
	got := e.ScoreMatch(sampleProfile(), "Python Python SQL SQL SQL Excel", "en")
	assert.Equal(t, 2, got.Considered())
	assert.Equal(t, []string{"sql", "python"}, got.Matched)
}

func TestScoreBatch(t *testing.T) {
	e, _ := newTestEngine(t, Options{BatchConcurrency: 2})
	jobs := []string{"Python", "Kubernetes", ""}

	got, err := e.ScoreBatch(context.Background(), sampleProfile(), jobs, "xx")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, 100, got[0].Score)
	assert.Equal(t, 0, got[1].Score)
	assert.Equal(t, []string{"kubernetes"}, got[1].Missing)
	assert.Empty(t, got[2].Matched)
	for _, r := range got {
		assert.Len(t, r.Warnings, 1)
	}
}

func TestAnalyzeCoverage(t *testing.T) {
	tax := lexicon.Taxonomy{
		Version:    "custom",
		Categories: []lexicon.Category{{Name: "Cat1", Keywords: []string{"Python", "SQL"}}},
	}
	e, _ := newTestEngine(t, Options{Taxonomy: &tax})

	report := e.AnalyzeCoverage(&types.ResumeProfile{Personal: types.Personal{Summary: "I used Python daily"}})

	assert.Equal(t, "custom", report.TaxonomyVersion)
	assert.Equal(t, 1, report.UniqueFound)
	assert.InDelta(t, 50.0, report.Coverage, 1e-9)
	assert.Equal(t, types.TierGood, report.Tier)
	assert.Equal(t, []string{"SQL"}, report.Categories[0].Missing)
}

func TestAnalyzeCoverage_TaxonomyIsCopied(t *testing.T) {
	tax := lexicon.Taxonomy{Categories: []lexicon.Category{{Name: "Cat1", Keywords: []string{"Python"}}}}
	e, _ := newTestEngine(t, Options{Taxonomy: &tax})

	tax.Categories[0].Keywords[0] = "Rust"
	assert.Equal(t, "Python", e.Taxonomy().Categories[0].Keywords[0])
}

func TestAnalyzeCoverage_CustomThresholds(t *testing.T) {
	tax := lexicon.Taxonomy{Categories: []lexicon.Category{{Name: "Cat1", Keywords: []string{"Python", "SQL"}}}}
	e, _ := newTestEngine(t, Options{Taxonomy: &tax, Thresholds: &coverage.Thresholds{LowBelow: 60, GoodFrom: 90}})

	report := e.AnalyzeCoverage(&types.ResumeProfile{Personal: types.Personal{Summary: "Python"}})
	assert.Equal(t, types.TierLow, report.Tier)
}

func TestAnalyzeCoverage_ZeroThresholds(t *testing.T) {
	tax := lexicon.Taxonomy{Categories: []lexicon.Category{{Name: "Cat1", Keywords: []string{"Python", "SQL"}}}}
	e, _ := newTestEngine(t, Options{Taxonomy: &tax, Thresholds: &coverage.Thresholds{}})

	report := e.AnalyzeCoverage(&types.ResumeProfile{})
	assert.Equal(t, 0.0, report.Coverage)
	assert.Equal(t, types.TierGood, report.Tier, "zero boundaries put every coverage in the good tier")
}

func TestSuggestTextImprovements(t *testing.T) {
	e, _ := newTestEngine(t, Options{})

	got := e.SuggestTextImprovements("I made a dashboard")
	require.Len(t, got, 1)
	assert.Equal(t, "made", got[0].WeakPhrase)
	assert.Contains(t, got[0].Alternatives, "Built")

	assert.Empty(t, e.SuggestTextImprovements("The bed was unmade"))
}

func TestReviewProfile(t *testing.T) {
	e, _ := newTestEngine(t, Options{})

	reviews := e.ReviewProfile(sampleProfile())
	require.Len(t, reviews, 3)
	assert.True(t, reviews[0].StrongVerb)
	assert.Equal(t, []string{"responsible for"}, reviews[1].WeakPhrases)
	assert.True(t, reviews[2].Quantified)
	assert.Equal(t, []string{"made"}, reviews[2].WeakPhrases)

	assert.Empty(t, e.ReviewProfile(nil))
}

func TestExtractKeywords(t *testing.T) {
	e, _ := newTestEngine(t, Options{})

	got, lang := e.ExtractKeywords("ve ile bir python sql", "tr", 0)
	assert.Equal(t, lexicon.Turkish, lang)
	assert.Equal(t, []types.RankedKeyword{{Keyword: "python", Count: 1}, {Keyword: "sql", Count: 1}}, got)

	got, lang = e.ExtractKeywords("Python Python SQL SQL SQL Excel", "en", 3)
	assert.Equal(t, lexicon.English, lang)
	assert.Equal(t, []types.RankedKeyword{
		{Keyword: "sql", Count: 3},
		{Keyword: "python", Count: 2},
		{Keyword: "excel", Count: 1},
	}, got)
}
