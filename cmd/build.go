package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfcpress/rfcpress/internal/config"
	"github.com/rfcpress/rfcpress/internal/progress"
	"github.com/rfcpress/rfcpress/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site from the content directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		// --verbose switches the bar for line-by-line output.
		gen := site.NewGenerator(cfg, progress.New(verbose))
		result, err := gen.Generate()
		if err != nil {
			return err
		}

		fmt.Printf("Built %d pages into %s\n", result.Pages, cfg.OutputDir)

		if len(result.Misses) > 0 {
			fmt.Printf("\n%d glossary trigger(s) did not resolve:\n", len(result.Misses))
			for _, m := range result.Misses {
				fmt.Printf("  %s: [[%s]]\n", m.Page, m.Query)
			}
			fmt.Println("These render as plain text. Add the terms to the glossary or fix the spelling.")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
