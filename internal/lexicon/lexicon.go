// Package lexicon holds the versioned constant tables used by keyword analysis:
// per-language stopword sets, the coverage taxonomy and the weak-phrase table.
// Tables are embedded at compile time and parsed once per process.
package lexicon

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var tableFiles embed.FS

// Lexicon is a read-only view over the parsed tables. Safe for concurrent use.
type Lexicon struct {
	stopwordsVersion string
	defaultLanguage  Language
	stopwords        map[Language]StopwordSet
	taxonomy         Taxonomy
	improvements     []Improvement
}

var (
	defaultLexicon *Lexicon
	defaultErr     error
	defaultOnce    sync.Once
)

// Default returns the lexicon built from the embedded tables.
// It panics if the embedded tables are malformed, which is a build defect.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLexicon, defaultErr = Load()
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("failed to load embedded lexicon: %v", defaultErr))
	}
	return defaultLexicon
}

// Load parses the embedded tables into a new Lexicon
func Load() (*Lexicon, error) {
	stopData, err := tableFiles.ReadFile("stopwords.yaml")
	if err != nil {
		return nil, &LoadError{Source: "stopwords.yaml", Message: "failed to read embedded file", Cause: err}
	}
	taxData, err := tableFiles.ReadFile("taxonomy.yaml")
	if err != nil {
		return nil, &LoadError{Source: "taxonomy.yaml", Message: "failed to read embedded file", Cause: err}
	}
	impData, err := tableFiles.ReadFile("improvements.yaml")
	if err != nil {
		return nil, &LoadError{Source: "improvements.yaml", Message: "failed to read embedded file", Cause: err}
	}

	return Parse(stopData, taxData, impData)
}

// Parse builds a Lexicon from raw YAML tables
func Parse(stopwordsYAML, taxonomyYAML, improvementsYAML []byte) (*Lexicon, error) {
	var sf stopwordsFile
	if err := yaml.Unmarshal(stopwordsYAML, &sf); err != nil {
		return nil, &LoadError{Source: "stopwords", Message: "failed to parse YAML", Cause: err}
	}
	if len(sf.Languages) == 0 {
		return nil, &LoadError{Source: "stopwords", Message: "no languages defined"}
	}

	sets := make(map[Language]StopwordSet, len(sf.Languages))
	for tag, words := range sf.Languages {
		lang := Language(tag)
		sets[lang] = NewStopwordSet(lang, words)
	}

	defaultLang := Language(sf.DefaultLanguage)
	if _, ok := sets[defaultLang]; !ok {
		return nil, &LoadError{
			Source:  "stopwords",
			Message: fmt.Sprintf("default language %q has no stopword set", sf.DefaultLanguage),
		}
	}

	tax, err := ParseTaxonomy(taxonomyYAML)
	if err != nil {
		return nil, err
	}

	improvements, err := parseImprovements(improvementsYAML)
	if err != nil {
		return nil, err
	}

	return &Lexicon{
		stopwordsVersion: sf.Version,
		defaultLanguage:  defaultLang,
		stopwords:        sets,
		taxonomy:         tax,
		improvements:     improvements,
	}, nil
}

// DefaultLanguage returns the language used when a caller's tag is unsupported
func (l *Lexicon) DefaultLanguage() Language {
	return l.defaultLanguage
}

// StopwordsVersion returns the version string of the stopword table
func (l *Lexicon) StopwordsVersion() string {
	return l.stopwordsVersion
}

// Languages returns the supported languages in sorted order
func (l *Lexicon) Languages() []Language {
	langs := make([]Language, 0, len(l.stopwords))
	for lang := range l.stopwords {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// Supported reports whether lang has its own stopword set
func (l *Lexicon) Supported(lang Language) bool {
	_, ok := l.stopwords[lang]
	return ok
}

// Resolve maps a caller-supplied tag to a supported language.
// ok is false when the tag was empty, malformed or unsupported and the default language was substituted.
func (l *Lexicon) Resolve(tag string) (Language, bool) {
	lang, parsed := baseLanguage(tag)
	if !parsed || !l.Supported(lang) {
		return l.defaultLanguage, false
	}
	return lang, true
}

// Stopwords returns the stopword set for lang, or the default language's set if lang is unsupported
func (l *Lexicon) Stopwords(lang Language) StopwordSet {
	if set, ok := l.stopwords[lang]; ok {
		return set
	}
	return l.stopwords[l.defaultLanguage]
}

// Taxonomy returns a copy of the coverage taxonomy
func (l *Lexicon) Taxonomy() Taxonomy {
	return l.taxonomy.Clone()
}

// Improvements returns a copy of the weak-phrase table in definition order
func (l *Lexicon) Improvements() []Improvement {
	return cloneImprovements(l.improvements)
}
