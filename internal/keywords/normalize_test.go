package keywords

import (
	"strings"
	"testing"

	"github.com/jonathan/cv-wizard/internal/lexicon"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		lang     lexicon.Language
		expected string
	}{
		{"lowercases", "Python SQL", lexicon.English, "python sql"},
		{"punctuation becomes space", "Python, SQL.", lexicon.English, "python  sql "},
		{"keeps digits and percent", "Cut costs by 30%", lexicon.English, "cut costs by 30%"},
		{"keeps plus and hash", "C++ and C#", lexicon.English, "c++ and c#"},
		{"slash splits words", "CI/CD", lexicon.English, "ci cd"},
		{"turkish letters kept for tr", "Çalışma Geliştirme", lexicon.Turkish, "çalışma geliştirme"},
		{"turkish letters dropped for en", "Çalışma", lexicon.English, " al  ma"},
		{"dotted capital I", "İstanbul", lexicon.Turkish, "istanbul"},
		{"turkish dotless capital I", "ÇALIŞMA", lexicon.Turkish, "çalışma"},
		{"turkish upper case phrase", "İŞ TANIMI", lexicon.Turkish, "iş tanımı"},
		{"english capital I stays dotted", "INSIGHTS", lexicon.English, "insights"},
		{"decomposed cedilla composed first", "s\u0327irket", lexicon.Turkish, "şirket"},
		{"apostrophe suffix", "dashboard'ları", lexicon.Turkish, "dashboard ları"},
		{"whitespace preserved", "a\tb\nc", lexicon.English, "a\tb\nc"},
		{"empty", "", lexicon.English, ""},
		{"unknown language is ascii only", "Ölçek", lexicon.Language("xx"), " l ek"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input, tt.lang))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Python Python SQL SQL SQL Excel",
		"Endüstri Mühendisliği mezunu (GPA: 3.43/4.00, Bölüm 1.)",
		"Raporlama doğruluğunu %100'e çıkardım — İŞ ÇÖZÜMLERİ",
		"C++/C#, Node.js & React.js!!",
		"ş İ K emoji 🚀 tabs\tand\nnewlines",
	}

	for _, lang := range []lexicon.Language{lexicon.Turkish, lexicon.English, "xx"} {
		for _, in := range inputs {
			once := Normalize(in, lang)
			assert.Equal(t, once, Normalize(once, lang), "lang=%s input=%q", lang, in)
		}
	}
}

func TestNormalize_PreservesWordBoundaries(t *testing.T) {
	out := Normalize("data-driven,analysis", lexicon.English)
	assert.Equal(t, []string{"data", "driven", "analysis"}, strings.Fields(out))
}
