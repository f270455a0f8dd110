package keywords

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-wizard/internal/lexicon"
	"github.com/jonathan/cv-wizard/internal/types"
)

// minTokenRunes is the shortest token kept; shorter tokens carry no keyword signal
const minTokenRunes = 3

// Tokenize splits already-normalized text on whitespace and drops short tokens and stopwords.
// Both ExtractSet and ExtractRanked are derived from this stream.
func Tokenize(normalized string, stop lexicon.StopwordSet) []string {
	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minTokenRunes || stop.Has(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Tokens normalizes raw text in the stopword set's language and tokenizes it
func Tokens(text string, stop lexicon.StopwordSet) []string {
	return Tokenize(Normalize(text, stop.Language()), stop)
}

// ExtractSet returns the unique keyword vocabulary of text
func ExtractSet(text string, stop lexicon.StopwordSet) types.KeywordSet {
	tokens := Tokens(text, stop)
	set := make(types.KeywordSet, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// ExtractRanked returns keywords ordered by descending frequency. Ties keep first-appearance order.
// n caps the result; n <= 0 returns every keyword.
func ExtractRanked(text string, stop lexicon.StopwordSet, n int) []types.RankedKeyword {
	return Rank(Tokens(text, stop), n)
}

// Rank counts tokens and orders them by descending frequency with stable first-appearance tie-breaking
func Rank(tokens []string, n int) []types.RankedKeyword {
	index := make(map[string]int, len(tokens))
	ranked := make([]types.RankedKeyword, 0)
	for _, t := range tokens {
		if i, ok := index[t]; ok {
			ranked[i].Count++
			continue
		}
		index[t] = len(ranked)
		ranked = append(ranked, types.RankedKeyword{Keyword: t, Count: 1})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
