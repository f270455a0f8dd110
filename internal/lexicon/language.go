package lexicon

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a base language subtag such as "tr" or "en"
type Language string

const (
	Turkish Language = "tr"
	English Language = "en"
)

// accentedLetters lists the non-ASCII letters of each alphabet. Both cases are
// listed even though normalization lowercases first.
var accentedLetters = map[Language]string{
	Turkish: "ğüşıöçĞÜŞİÖÇ",
}

// Letters returns the non-ASCII letters that belong to the language's alphabet.
// Unknown languages have none.
func Letters(lang Language) string {
	return accentedLetters[lang]
}

// String returns the tag
func (l Language) String() string {
	return string(l)
}

// baseLanguage reduces a BCP 47 tag such as "tr-TR", "EN" or "en_US" to its base subtag.
func baseLanguage(tag string) (Language, bool) {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	if tag == "" {
		return "", false
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return "", false
	}

	base, confidence := parsed.Base()
	if confidence == language.No {
		return "", false
	}

	return Language(base.String()), true
}
