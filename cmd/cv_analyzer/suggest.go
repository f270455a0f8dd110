package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-wizard/internal/observability"
	"github.com/jonathan/cv-wizard/internal/profile"
	"github.com/jonathan/cv-wizard/internal/types"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest stronger wording for weak phrases",
	Long: "Find weak phrases such as \"made\" or \"responsible for\" and list stronger alternatives. " +
		"With --profile, every experience bullet is also reviewed for an action verb and a metric.",
	RunE: runSuggest,
}

var (
	suggestText        string
	suggestProfilePath string
	suggestLanguage    string
	suggestJSON        bool
)

// suggestOutput is the JSON shape of the suggest command
type suggestOutput struct {
	Suggestions []types.Suggestion   `json:"suggestions"`
	Bullets     []types.BulletReview `json:"bullets,omitempty"`
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestText, "text", "t", "", "Free text to check")
	suggestCmd.Flags().StringVarP(&suggestProfilePath, "profile", "p", "", "Path to résumé profile JSON to check")
	suggestCmd.Flags().StringVarP(&suggestLanguage, "lang", "l", "", "Bundle entry to check (tr, en)")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Print JSON instead of a report")

	suggestCmd.MarkFlagsOneRequired("text", "profile")
	suggestCmd.MarkFlagsMutuallyExclusive("text", "profile")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	engine, err := newEngine(0, "")
	if err != nil {
		return err
	}

	var out suggestOutput
	if suggestProfilePath != "" {
		p, err := profile.LoadProfile(suggestProfilePath, profileLanguage(suggestLanguage))
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		out.Suggestions = engine.SuggestTextImprovements(profile.Text(p))
		out.Bullets = engine.ReviewProfile(p)
	} else {
		out.Suggestions = engine.SuggestTextImprovements(suggestText)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if suggestJSON {
		return printer.PrintJSON(out)
	}
	printer.PrintSuggestions(out.Suggestions)
	printer.PrintBulletReviews(out.Bullets)
	return nil
}
