// Package profile loads résumé profiles and projects them into plain text for keyword analysis.
package profile

import (
	"sort"
	"strings"

	"github.com/jonathan/cv-wizard/internal/types"
)

// Text flattens a profile into one space-separated blob in a fixed order:
// summary, experience titles and descriptions, education schools and degrees,
// then skill values by sorted category name. Empty fields contribute nothing.
func Text(p *types.ResumeProfile) string {
	if p == nil {
		return ""
	}

	parts := make([]string, 0, 1+2*len(p.Experience)+2*len(p.Education)+len(p.Skills))
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	add(p.Personal.Summary)

	for _, exp := range p.Experience {
		add(exp.Title)
		add(exp.Description)
	}

	for _, edu := range p.Education {
		add(edu.School)
		add(edu.Degree)
	}

	for _, category := range sortedKeys(p.Skills) {
		add(p.Skills[category])
	}

	return strings.Join(parts, " ")
}

// Descriptions returns the non-empty experience descriptions in order
func Descriptions(p *types.ResumeProfile) []string {
	if p == nil {
		return nil
	}
	var out []string
	for _, exp := range p.Experience {
		if d := strings.TrimSpace(exp.Description); d != "" {
			out = append(out, d)
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
