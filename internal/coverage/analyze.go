// Package coverage measures how much of a keyword taxonomy a résumé text covers.
package coverage

import (
	"sort"
	"strings"

	"github.com/jonathan/cv-wizard/internal/keywords"
	"github.com/jonathan/cv-wizard/internal/lexicon"
	"github.com/jonathan/cv-wizard/internal/types"
)

// TopKeywordsLimit caps CoverageReport.TopKeywords
const TopKeywordsLimit = 15

// Analyze counts every taxonomy keyword in text and rates the overall coverage.
//
// Keywords are matched literally and case-insensitively with word boundaries at their ends:
// "R" is found in "R and Python" but never inside "react", and "Data-Driven" needs the hyphen.
// Matching does not depend on the résumé language. An empty taxonomy yields 0% coverage.
func Analyze(text string, tax lexicon.Taxonomy, thresholds Thresholds) types.CoverageReport {
	doc := keywords.NewDocument(text)

	report := types.CoverageReport{
		TaxonomyVersion: tax.Version,
		Categories:      make([]types.CategoryCoverage, 0, len(tax.Categories)),
		TaxonomySize:    tax.Size(),
		TotalWords:      len(strings.Fields(text)),
		TopKeywords:     []types.KeywordCount{},
	}

	var all []types.KeywordCount
	for _, cat := range tax.Categories {
		cc := types.CategoryCoverage{
			Category:      cat.Name,
			Found:         []types.KeywordCount{},
			Missing:       []string{},
			ReportMissing: cat.ReportMissing,
		}

		for _, kw := range cat.Keywords {
			if n := doc.Count(kw); n > 0 {
				cc.Found = append(cc.Found, types.KeywordCount{Keyword: kw, Count: n})
			} else {
				cc.Missing = append(cc.Missing, kw)
			}
		}

		sortByCount(cc.Found)
		report.UniqueFound += len(cc.Found)
		all = append(all, cc.Found...)
		report.Categories = append(report.Categories, cc)
	}

	if report.TaxonomySize > 0 {
		report.Coverage = float64(report.UniqueFound) / float64(report.TaxonomySize) * 100
	}
	report.Tier = thresholds.Tier(report.Coverage)
	report.Advice = tax.Advice[string(report.Tier)]

	sortByCount(all)
	if len(all) > TopKeywordsLimit {
		all = all[:TopKeywordsLimit]
	}
	report.TopKeywords = append(report.TopKeywords, all...)

	return report
}

func sortByCount(counts []types.KeywordCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
}
