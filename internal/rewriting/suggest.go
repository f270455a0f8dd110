// Package rewriting flags weak wording in résumé text and suggests stronger alternatives.
// It never edits text; callers decide what to apply.
package rewriting

import (
	"github.com/jonathan/cv-wizard/internal/keywords"
	"github.com/jonathan/cv-wizard/internal/lexicon"
	"github.com/jonathan/cv-wizard/internal/types"
)

// Suggest returns one suggestion per weak phrase found in text, in the order of improvements.
// Matching is case-insensitive and whole-word, so "made" is not found in "unmade" and
// "looked after" is not found across the sentence break in "looked. After".
func Suggest(text string, improvements []lexicon.Improvement) []types.Suggestion {
	suggestions := make([]types.Suggestion, 0)
	doc := keywords.NewDocument(text)

	for _, imp := range improvements {
		if !doc.Contains(imp.Phrase) {
			continue
		}
		suggestions = append(suggestions, types.Suggestion{
			WeakPhrase:   imp.Phrase,
			Alternatives: append([]string(nil), imp.Alternatives...),
		})
	}
	return suggestions
}

// weakPhrasesIn lists the weak phrases present in text, in improvements order.
// Returns nil if none are found.
func weakPhrasesIn(text string, improvements []lexicon.Improvement) []string {
	doc := keywords.NewDocument(text)
	var found []string
	for _, imp := range improvements {
		if doc.Contains(imp.Phrase) {
			found = append(found, imp.Phrase)
		}
	}
	return found
}
