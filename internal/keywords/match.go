package keywords

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Document is a case-folded view of a text for literal phrase lookups.
//
// A phrase matches where its folded form appears verbatim and is not glued to a neighbouring word:
// if the phrase starts (ends) with a letter, digit, mark or underscore, the rune before (after) it
// must not be one. Punctuation inside the phrase must match exactly, so "Data-Driven" is not found
// in "data driven" and "looked after" is not found in "looked. After". Runs of whitespace compare
// as a single space.
type Document struct {
	runes []rune
}

// NewDocument folds text for matching
func NewDocument(text string) Document {
	return Document{runes: fold(text)}
}

// Count returns the number of non-overlapping occurrences of phrase
func (d Document) Count(phrase string) int {
	p := fold(phrase)
	if len(p) == 0 || len(p) > len(d.runes) {
		return 0
	}

	count := 0
	for i := 0; i+len(p) <= len(d.runes); {
		if d.matchesAt(p, i) {
			count++
			i += len(p)
			continue
		}
		i++
	}
	return count
}

// Contains reports whether phrase occurs at least once
func (d Document) Contains(phrase string) bool {
	p := fold(phrase)
	if len(p) == 0 {
		return false
	}
	for i := 0; i+len(p) <= len(d.runes); i++ {
		if d.matchesAt(p, i) {
			return true
		}
	}
	return false
}

func (d Document) matchesAt(p []rune, at int) bool {
	for j, r := range p {
		if d.runes[at+j] != r {
			return false
		}
	}
	if isWordRune(p[0]) && at > 0 && isWordRune(d.runes[at-1]) {
		return false
	}
	end := at + len(p)
	if isWordRune(p[len(p)-1]) && end < len(d.runes) && isWordRune(d.runes[end]) {
		return false
	}
	return true
}

// fold composes, lowercases and collapses whitespace runs to one space, trimming both ends
func fold(text string) []rune {
	if text == "" {
		return nil
	}

	out := make([]rune, 0, len(text))
	space := false
	for _, r := range norm.NFC.String(text) {
		if unicode.IsSpace(r) {
			space = len(out) > 0
			continue
		}
		if space {
			out = append(out, ' ')
			space = false
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
