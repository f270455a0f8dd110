package rewriting

import (
	"strings"
	"unicode"

	"github.com/jonathan/cv-wizard/internal/lexicon"
	"github.com/jonathan/cv-wizard/internal/types"
)

// Common strong action verbs for resume bullets (heuristic check)
var strongVerbs = map[string]bool{
	"achieved": true, "architected": true, "built": true, "created": true,
	"delivered": true, "designed": true, "developed": true, "engineered": true,
	"implemented": true, "improved": true, "increased": true, "launched": true,
	"led": true, "optimized": true, "reduced": true, "scaled": true,
	"shipped": true, "transformed": true, "managed": true, "executed": true,
	"directed": true, "oversaw": true, "drove": true, "won": true,
}

// weakPastTense are -ed words that pass the suffix heuristic but make weak openers
var weakPastTense = map[string]bool{
	"helped": true, "changed": true, "used": true, "tried": true,
}

// bulletMarkers are stripped from the start of each description line
const bulletMarkers = "•-*·▪"

// ReviewBullets splits a description into bullet lines and checks each for a strong opening verb,
// quantified impact and weak phrases. Blank lines are skipped.
func ReviewBullets(description string, improvements []lexicon.Improvement) []types.BulletReview {
	reviews := make([]types.BulletReview, 0)
	for _, bullet := range SplitBullets(description) {
		reviews = append(reviews, types.BulletReview{
			Text:        bullet,
			StrongVerb:  checkStrongVerb(strings.ToLower(bullet)),
			Quantified:  checkQuantifiedImpact(bullet),
			WeakPhrases: weakPhrasesIn(bullet, improvements),
		})
	}
	return reviews
}

// SplitBullets breaks a free-text description into trimmed bullet lines.
// Lines may be prefixed with •, -, * or similar markers; inline "•" separators also split.
func SplitBullets(description string) []string {
	lines := strings.FieldsFunc(description, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '•'
	})

	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), bulletMarkers))
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

// checkStrongVerb checks if text starts with a strong action verb
func checkStrongVerb(textLower string) bool {
	// Get first word
	words := strings.Fields(textLower)
	if len(words) == 0 {
		return false
	}

	firstWord := strings.TrimRight(words[0], ".,!?;:")

	if strongVerbs[firstWord] {
		return true
	}
	if weakPastTense[firstWord] {
		return false
	}

	// verbs ending in -ed are usually past-tense action verbs
	return strings.HasSuffix(firstWord, "ed") && len(firstWord) > 3
}

// checkQuantifiedImpact checks if text contains numbers or metrics
func checkQuantifiedImpact(text string) bool {
	for _, r := range text {
		if unicode.IsDigit(r) || r == '%' {
			return true
		}
	}
	return false
}
