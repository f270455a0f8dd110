package lexicon

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Taxonomy is a versioned, ordered set of keyword categories used for coverage scoring
type Taxonomy struct {
	Version    string            `yaml:"version" json:"version"`
	Categories []Category        `yaml:"categories" json:"categories"`
	Advice     map[string]string `yaml:"advice,omitempty" json:"advice,omitempty"` // tier -> advice text
}

// Category is a named group of taxonomy keywords
type Category struct {
	Name          string   `yaml:"name" json:"name"`
	ReportMissing bool     `yaml:"report_missing,omitempty" json:"report_missing,omitempty"`
	Keywords      []string `yaml:"keywords" json:"keywords"`
}

// Size returns the total number of keywords across all categories
func (t Taxonomy) Size() int {
	n := 0
	for _, c := range t.Categories {
		n += len(c.Keywords)
	}
	return n
}

// Clone returns a deep copy so callers cannot mutate shared tables
func (t Taxonomy) Clone() Taxonomy {
	out := Taxonomy{Version: t.Version}
	if t.Categories != nil {
		out.Categories = make([]Category, len(t.Categories))
		for i, c := range t.Categories {
			out.Categories[i] = Category{
				Name:          c.Name,
				ReportMissing: c.ReportMissing,
				Keywords:      append([]string(nil), c.Keywords...),
			}
		}
	}
	if t.Advice != nil {
		out.Advice = make(map[string]string, len(t.Advice))
		for k, v := range t.Advice {
			out.Advice[k] = v
		}
	}
	return out
}

// ParseTaxonomy decodes a taxonomy from YAML and checks its structure
func ParseTaxonomy(data []byte) (Taxonomy, error) {
	var tax Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return Taxonomy{}, &LoadError{Source: "taxonomy", Message: "failed to parse YAML", Cause: err}
	}

	seen := make(map[string]bool, len(tax.Categories))
	for i, c := range tax.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return Taxonomy{}, &LoadError{Source: "taxonomy", Message: fmt.Sprintf("category %d has no name", i)}
		}
		if seen[name] {
			return Taxonomy{}, &LoadError{Source: "taxonomy", Message: fmt.Sprintf("duplicate category %q", name)}
		}
		seen[name] = true

		keywords := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		tax.Categories[i].Name = name
		tax.Categories[i].Keywords = keywords
	}

	return tax, nil
}

// LoadTaxonomyFile reads a taxonomy override from a YAML file with the same shape as the embedded one
func LoadTaxonomyFile(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, &LoadError{
			Source:  path,
			Message: "failed to read taxonomy file",
			Cause:   err,
		}
	}
	return ParseTaxonomy(data)
}
