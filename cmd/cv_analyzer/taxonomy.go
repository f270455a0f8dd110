package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-wizard/internal/observability"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Print the active skill taxonomy",
	RunE:  runTaxonomy,
}

var (
	taxonomyPath string
	taxonomyJSON bool
)

func init() {
	taxonomyCmd.Flags().StringVar(&taxonomyPath, "taxonomy", "", "Path to a taxonomy YAML file replacing the built-in one")
	taxonomyCmd.Flags().BoolVar(&taxonomyJSON, "json", false, "Print JSON instead of a report")

	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomy(cmd *cobra.Command, _ []string) error {
	engine, err := newEngine(0, taxonomyPath)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if taxonomyJSON {
		return printer.PrintJSON(engine.Taxonomy())
	}
	printer.PrintTaxonomy(engine.Taxonomy())
	return nil
}
