// Package matching scores a résumé against a job description by keyword overlap.
package matching

import (
	"math"

	"github.com/jonathan/cv-wizard/internal/keywords"
	"github.com/jonathan/cv-wizard/internal/lexicon"
	"github.com/jonathan/cv-wizard/internal/types"
)

// DefaultTopK is the number of most frequent job keywords the score is computed over
const DefaultTopK = 20

// Score compares resumeText with jobDescription using the stopword set's language.
//
// The topK most frequent job keywords are partitioned, in rank order, into those present
// in the résumé vocabulary and those absent. The score is the rounded matched percentage.
// A job description with no keywords yields a zero score and empty lists. topK <= 0 uses DefaultTopK.
func Score(resumeText, jobDescription string, stop lexicon.StopwordSet, topK int) types.MatchResult {
	if topK <= 0 {
		topK = DefaultTopK
	}

	result := types.MatchResult{
		Matched:  []string{},
		Missing:  []string{},
		Language: stop.Language().String(),
	}

	top := keywords.ExtractRanked(jobDescription, stop, topK)
	if len(top) == 0 {
		return result
	}

	vocabulary := keywords.ExtractSet(resumeText, stop)
	for _, kw := range top {
		if vocabulary.Has(kw.Keyword) {
			result.Matched = append(result.Matched, kw.Keyword)
		} else {
			result.Missing = append(result.Missing, kw.Keyword)
		}
	}

	result.Score = percent(len(result.Matched), result.Considered())
	return result
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}
