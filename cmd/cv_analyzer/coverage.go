package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-wizard/internal/observability"
	"github.com/jonathan/cv-wizard/internal/profile"
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Measure how much of the skill taxonomy a résumé covers",
	Long: "Count every taxonomy keyword in the résumé text and report found and missing keywords per " +
		"category, the overall coverage percentage and its rating.",
	RunE: runCoverage,
}

var (
	coverageProfilePath  string
	coverageLanguage     string
	coverageTaxonomyPath string
	coverageJSON         bool
)

func init() {
	coverageCmd.Flags().StringVarP(&coverageProfilePath, "profile", "p", "", "Path to résumé profile JSON (single profile or per-language bundle)")
	coverageCmd.Flags().StringVarP(&coverageLanguage, "lang", "l", "", "Bundle entry to analyze (tr, en)")
	coverageCmd.Flags().StringVar(&coverageTaxonomyPath, "taxonomy", "", "Path to a taxonomy YAML file replacing the built-in one")
	coverageCmd.Flags().BoolVar(&coverageJSON, "json", false, "Print JSON instead of a report")

	_ = coverageCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(coverageCmd)
}

func runCoverage(cmd *cobra.Command, _ []string) error {
	p, err := profile.LoadProfile(coverageProfilePath, profileLanguage(coverageLanguage))
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	engine, err := newEngine(0, coverageTaxonomyPath)
	if err != nil {
		return err
	}

	report := engine.AnalyzeCoverage(p)
	printer := observability.NewPrinter(cmd.OutOrStdout())
	if coverageJSON {
		return printer.PrintJSON(report)
	}
	printer.PrintCoverageReport(report)
	return nil
}
