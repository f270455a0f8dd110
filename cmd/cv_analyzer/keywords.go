package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-wizard/internal/ingestion"
	"github.com/jonathan/cv-wizard/internal/observability"
	"github.com/jonathan/cv-wizard/internal/types"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the most frequent keywords of a job description",
	Long:  "Extract keywords from a job description file or text, ranked by frequency, after stopword removal.",
	RunE:  runKeywords,
}

var (
	keywordsJobPath  string
	keywordsText     string
	keywordsLanguage string
	keywordsTop      int
	keywordsJSON     bool
)

// keywordsOutput is the JSON shape of the keywords command
type keywordsOutput struct {
	Language string                `json:"language"`
	Keywords []types.RankedKeyword `json:"keywords"`
}

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsJobPath, "job", "j", "", "Path to job description file (text or HTML)")
	keywordsCmd.Flags().StringVarP(&keywordsText, "text", "t", "", "Text to extract keywords from")
	keywordsCmd.Flags().StringVarP(&keywordsLanguage, "lang", "l", "", "Language of the text (tr, en)")
	keywordsCmd.Flags().IntVarP(&keywordsTop, "top", "n", 20, "Number of keywords to list (0 lists all)")
	keywordsCmd.Flags().BoolVar(&keywordsJSON, "json", false, "Print JSON instead of a report")

	keywordsCmd.MarkFlagsOneRequired("job", "text")
	keywordsCmd.MarkFlagsMutuallyExclusive("job", "text")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	text := keywordsText
	if keywordsJobPath != "" {
		jd, err := ingestion.LoadJobDescription(keywordsJobPath)
		if err != nil {
			return fmt.Errorf("failed to load job description: %w", err)
		}
		text = jd.Text
	}

	engine, err := newEngine(0, "")
	if err != nil {
		return err
	}

	ranked, lang := engine.ExtractKeywords(text, keywordsLanguage, keywordsTop)
	printer := observability.NewPrinter(cmd.OutOrStdout())
	if keywordsJSON {
		return printer.PrintJSON(keywordsOutput{Language: lang.String(), Keywords: ranked})
	}
	printer.PrintKeywords(lang, ranked)
	return nil
}
