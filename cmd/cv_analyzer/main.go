// Package main provides the cv_analyzer CLI and HTTP API server for résumé keyword analysis.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-wizard/internal/analysis"
	"github.com/jonathan/cv-wizard/internal/config"
	"github.com/jonathan/cv-wizard/internal/lexicon"
	"github.com/jonathan/cv-wizard/internal/logger"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	// settings and log are populated before any subcommand runs
	settings config.Config
	log      zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cv_analyzer",
	Short: "Résumé keyword analysis",
	Long: "cv_analyzer scores résumé profiles against job descriptions, measures keyword coverage " +
		"against a skill taxonomy and suggests stronger wording, from the command line or over HTTP.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (json, pretty)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings resolves configuration in order: defaults, config file, CV_* environment, flags
func loadSettings(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	settings = cfg
	log = logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	return nil
}

// newEngine builds the analysis engine from settings. A positive topK or a non-empty
// taxonomyPath overrides the configured value.
func newEngine(topK int, taxonomyPath string) (*analysis.Engine, error) {
	thresholds := settings.Thresholds()
	opts := analysis.Options{
		TopK:            settings.TopK,
		DefaultLanguage: settings.Language,
		Thresholds:      &thresholds,
	}
	if topK > 0 {
		opts.TopK = topK
	}

	if taxonomyPath == "" {
		taxonomyPath = settings.Taxonomy
	}
	if taxonomyPath != "" {
		tax, err := lexicon.LoadTaxonomyFile(taxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load taxonomy: %w", err)
		}
		log.Debug().Str("path", taxonomyPath).Int("keywords", tax.Size()).Msg("taxonomy loaded")
		opts.Taxonomy = &tax
	}

	engine, err := analysis.New(opts, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return engine, nil
}

// profileLanguage picks the bundle entry to load: the flag value, else the configured default.
// Supported tags are canonicalized so "tr-TR" selects the "tr" entry.
func profileLanguage(flagValue string) string {
	tag := flagValue
	if tag == "" {
		tag = settings.Language
	}
	if lang, ok := lexicon.Default().Resolve(tag); ok {
		return lang.String()
	}
	return tag
}
