package matching

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-wizard/internal/lexicon"
	"github.com/jonathan/cv-wizard/internal/types"
)

// DefaultBatchConcurrency bounds the number of job descriptions scored at once
const DefaultBatchConcurrency = 4

// BatchOptions configures ScoreBatch
type BatchOptions struct {
	TopK        int
	Concurrency int
}

// ScoreBatch scores one résumé against many job descriptions concurrently.
// Results are returned in the order of jobs. The only error source is ctx cancellation.
func ScoreBatch(ctx context.Context, resumeText string, jobs []string, stop lexicon.StopwordSet, opts BatchOptions) ([]types.MatchResult, error) {
	results := make([]types.MatchResult, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultBatchConcurrency
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, jd := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			// each goroutine owns results[i]
			results[i] = Score(resumeText, jd, stop, opts.TopK)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
