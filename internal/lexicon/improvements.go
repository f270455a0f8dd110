package lexicon

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Improvement maps a weak phrase to stronger alternatives
type Improvement struct {
	Phrase       string   `yaml:"phrase" json:"phrase"`
	Alternatives []string `yaml:"alternatives" json:"alternatives"`
}

type improvementsFile struct {
	Version      string        `yaml:"version"`
	Improvements []Improvement `yaml:"improvements"`
}

func parseImprovements(data []byte) ([]Improvement, error) {
	var f improvementsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{Source: "improvements", Message: "failed to parse YAML", Cause: err}
	}

	for i, imp := range f.Improvements {
		if strings.TrimSpace(imp.Phrase) == "" {
			return nil, &LoadError{Source: "improvements", Message: fmt.Sprintf("entry %d has no phrase", i)}
		}
		if len(imp.Alternatives) == 0 {
			return nil, &LoadError{Source: "improvements", Message: fmt.Sprintf("phrase %q has no alternatives", imp.Phrase)}
		}
	}

	return f.Improvements, nil
}

func cloneImprovements(in []Improvement) []Improvement {
	out := make([]Improvement, len(in))
	for i, imp := range in {
		out[i] = Improvement{
			Phrase:       imp.Phrase,
			Alternatives: append([]string(nil), imp.Alternatives...),
		}
	}
	return out
}
