package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-wizard/internal/ingestion"
	"github.com/jonathan/cv-wizard/internal/observability"
	"github.com/jonathan/cv-wizard/internal/profile"
	"github.com/jonathan/cv-wizard/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a résumé profile against job descriptions",
	Long: "Score a résumé profile against one or more job descriptions (plain text or HTML). " +
		"The score is the share of the job's most frequent keywords that appear in the résumé.",
	RunE: runScore,
}

var (
	scoreProfilePath string
	scoreLanguage    string
	scoreJobPaths    []string
	scoreTopK        int
	scoreJSON        bool
)

// jobMatch is one batch entry in JSON output
type jobMatch struct {
	Source string `json:"source"`
	types.MatchResult
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreProfilePath, "profile", "p", "", "Path to résumé profile JSON (single profile or per-language bundle)")
	scoreCmd.Flags().StringVarP(&scoreLanguage, "lang", "l", "", "Language of the profile and job description (tr, en)")
	scoreCmd.Flags().StringArrayVarP(&scoreJobPaths, "job", "j", nil, "Path to job description file (repeat for several)")
	scoreCmd.Flags().IntVar(&scoreTopK, "top-k", 0, "Number of job keywords to consider (default from config)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print JSON instead of a report")

	_ = scoreCmd.MarkFlagRequired("profile")
	_ = scoreCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	if scoreTopK < 0 {
		return fmt.Errorf("--top-k must not be negative")
	}

	lang := profileLanguage(scoreLanguage)
	p, err := profile.LoadProfile(scoreProfilePath, lang)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	jobs := make([]string, 0, len(scoreJobPaths))
	for _, path := range scoreJobPaths {
		jd, err := ingestion.LoadJobDescription(path)
		if err != nil {
			return fmt.Errorf("failed to load job description %s: %w", path, err)
		}
		log.Debug().Str("source", path).Str("format", string(jd.Format)).Int("words", jd.Words).Msg("job description loaded")
		jobs = append(jobs, jd.Text)
	}

	engine, err := newEngine(scoreTopK, "")
	if err != nil {
		return err
	}
	printer := observability.NewPrinter(cmd.OutOrStdout())

	if len(jobs) == 1 {
		result := engine.ScoreMatch(p, jobs[0], lang)
		if scoreJSON {
			return printer.PrintJSON(result)
		}
		printer.PrintMatchResult(result)
		return nil
	}

	results, err := engine.ScoreBatch(cmd.Context(), p, jobs, lang)
	if err != nil {
		return fmt.Errorf("batch scoring failed: %w", err)
	}

	if scoreJSON {
		matches := make([]jobMatch, len(results))
		for i, r := range results {
			matches[i] = jobMatch{Source: scoreJobPaths[i], MatchResult: r}
		}
		return printer.PrintJSON(matches)
	}
	printer.PrintBatchResults(scoreJobPaths, results)
	return nil
}
