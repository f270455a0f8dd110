package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/jonathan/cv-wizard/internal/schemas"
	"github.com/jonathan/cv-wizard/internal/types"
)

// profileKeys are the top-level keys of a single ResumeProfile document.
// A document without any of them is treated as a language -> profile bundle.
var profileKeys = []string{"personal", "experience", "education", "skills", "projects", "certificates"}

// LoadProfile reads a profile JSON file. The file may hold a single profile or a
// per-language bundle ({"tr": {...}, "en": {...}}), in which case lang selects the entry.
func LoadProfile(path string, lang string) (*types.ResumeProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Decode(content, lang)
}

// Decode validates and decodes profile JSON, selecting lang from a bundle when needed
func Decode(content []byte, lang string) (*types.ResumeProfile, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(content, &top); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if !isBundle(top) {
		if err := schemas.ValidateProfile(content); err != nil {
			return nil, &LoadError{Message: "profile does not match schema", Cause: err}
		}
		var p types.ResumeProfile
		if err := json.Unmarshal(content, &p); err != nil {
			return nil, &LoadError{Message: "failed to unmarshal profile", Cause: err}
		}
		return &p, nil
	}

	if err := schemas.ValidateBundle(content); err != nil {
		return nil, &LoadError{Message: "profile bundle does not match schema", Cause: err}
	}

	var bundle types.ProfileBundle
	if err := json.Unmarshal(content, &bundle); err != nil {
		return nil, &LoadError{Message: "failed to unmarshal profile bundle", Cause: err}
	}

	p, ok := bundle[lang]
	if !ok {
		return nil, &LanguageNotFoundError{Language: lang, Available: bundleLanguages(bundle)}
	}
	return &p, nil
}

func isBundle(top map[string]json.RawMessage) bool {
	for _, k := range profileKeys {
		if _, ok := top[k]; ok {
			return false
		}
	}
	return len(top) > 0
}

func bundleLanguages(bundle types.ProfileBundle) []string {
	langs := make([]string, 0, len(bundle))
	for k := range bundle {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	return langs
}
