package lexicon

import (
	"strings"
)

// StopwordSet is an immutable, language-tagged set of tokens excluded from keyword extraction.
// The zero value is an empty set.
type StopwordSet struct {
	lang  Language
	words map[string]struct{}
}

// NewStopwordSet builds a set for lang. Words are trimmed and lowercased; blanks are skipped.
func NewStopwordSet(lang Language, words []string) StopwordSet {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return StopwordSet{lang: lang, words: set}
}

// Language returns the language this set belongs to
func (s StopwordSet) Language() Language {
	return s.lang
}

// Has reports whether token is a stopword
func (s StopwordSet) Has(token string) bool {
	_, ok := s.words[token]
	return ok
}

// Len returns the number of stopwords
func (s StopwordSet) Len() int {
	return len(s.words)
}

type stopwordsFile struct {
	Version         string              `yaml:"version"`
	DefaultLanguage string              `yaml:"default_language"`
	Languages       map[string][]string `yaml:"languages"`
}
