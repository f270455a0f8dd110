package rewriting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-wizard/internal/lexicon"
	"github.com/jonathan/cv-wizard/internal/types"
)

func defaultImprovements() []lexicon.Improvement {
	return lexicon.Default().Improvements()
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantPhrase []string
	}{
		{name: "single weak word", text: "I made a dashboard", wantPhrase: []string{"made"}},
		{name: "case insensitive", text: "MADE the reports", wantPhrase: []string{"made"}},
		{name: "not inside longer word", text: "The bed was unmade", wantPhrase: []string{}},
		{name: "multi word phrase", text: "I was Responsible  for reporting", wantPhrase: []string{"responsible for"}},
		{name: "phrase words apart", text: "responsible team for reporting", wantPhrase: []string{}},
		{name: "sentence break inside phrase", text: "I looked. After that I led", wantPhrase: []string{}},
		{name: "comma inside phrase", text: "I worked, on balance, alone", wantPhrase: []string{}},
		{name: "line break inside phrase", text: "looked\nafter the servers", wantPhrase: []string{"looked after"}},
		{name: "punctuation boundaries", text: "Helped, then fix.", wantPhrase: []string{"helped", "fix"}},
		{name: "mapping order not text order", text: "worked on it and made it", wantPhrase: []string{"made", "worked on"}},
		{name: "repeated phrase reported once", text: "made this, made that", wantPhrase: []string{"made"}},
		{name: "empty text", text: "", wantPhrase: []string{}},
		{name: "nothing weak", text: "Led a team of 5 analysts", wantPhrase: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.text, defaultImprovements())
			require.NotNil(t, got)
			phrases := make([]string, 0, len(got))
			for _, s := range got {
				phrases = append(phrases, s.WeakPhrase)
			}
			assert.Equal(t, tt.wantPhrase, phrases)
		})
	}
}

func TestSuggest_MadeAlternatives(t *testing.T) {
	got := Suggest("I made a dashboard", defaultImprovements())
	require.Len(t, got, 1)
	assert.Equal(t, "made", got[0].WeakPhrase)
	assert.Contains(t, got[0].Alternatives, "Built")
}

func TestSuggest_DoesNotShareAlternatives(t *testing.T) {
	imps := []lexicon.Improvement{{Phrase: "made", Alternatives: []string{"Built"}}}
	got := Suggest("made", imps)
	require.Len(t, got, 1)

	got[0].Alternatives[0] = "Changed"
	assert.Equal(t, "Built", imps[0].Alternatives[0])
}

func TestSuggest_CustomTable(t *testing.T) {
	imps := []lexicon.Improvement{
		{Phrase: "yaptım", Alternatives: []string{"Geliştirdim", "Tasarladım"}},
	}
	got := Suggest("Raporlama işlerini Yaptım", imps)
	assert.Equal(t, []types.Suggestion{{WeakPhrase: "yaptım", Alternatives: []string{"Geliştirdim", "Tasarladım"}}}, got)
}
