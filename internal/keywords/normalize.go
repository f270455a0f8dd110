// Package keywords normalizes free text and extracts keyword sets and frequency rankings from it.
package keywords

import (
	"strings"
	"unicode"

	"github.com/jonathan/cv-wizard/internal/lexicon"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases text and replaces every character outside the allowed set with a single space.
//
// The allowed set is ASCII letters and digits, whitespace, '%', '+', '#' and the accented letters of lang.
// Input is NFC-composed first so a decomposed "ş" (s + U+0327) survives as one letter. Turkish text is
// lowercased with Turkish casing, so "I" becomes "ı" and "İ" becomes "i"; other languages use the
// default mapping. Word boundaries are preserved because each removed character becomes a space.
// Normalize is idempotent.
func Normalize(text string, lang lexicon.Language) string {
	if text == "" {
		return ""
	}

	text = norm.NFC.String(text)
	extra := lexicon.Letters(lang)
	lower := unicode.ToLower
	if lang == lexicon.Turkish {
		lower = unicode.TurkishCase.ToLower
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		r = lower(r)
		if isAllowed(r, extra) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}

func isAllowed(r rune, extra string) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '\t', r == '\n', r == '\r', r == '\v', r == '\f':
		return true
	case r == '%', r == '+', r == '#':
		return true
	case r < 0x80:
		return false
	}
	return strings.ContainsRune(extra, r)
}
