package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rfcpress/rfcpress/internal/config"
	"github.com/rfcpress/rfcpress/internal/content"
	"github.com/rfcpress/rfcpress/internal/glossary"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint the glossary and articles without building",
	Long: `Validates authored content: glossary entries with related ids that
do not resolve, terms or aliases that collide, and article triggers
that miss the glossary. Exits non-zero if anything is wrong.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		idx, err := glossary.LoadFile(filepath.Join(cfg.ContentDir, cfg.Glossary))
		if err != nil {
			return err
		}

		problems := 0

		// Related ids that do not resolve. These degrade silently in
		// the popup; here they get reported.
		broken := idx.BrokenReferences()
		ids := make([]string, 0, len(broken))
		for id := range broken {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			for _, rid := range broken[id] {
				fmt.Printf("glossary: entry %q references unknown id %q\n", id, rid)
				problems++
			}
		}

		// Terms and aliases that normalize to the same key shadow each
		// other; only one wins the lookup.
		seen := make(map[string]string)
		for _, e := range idx.Entries() {
			keys := append([]string{e.Term}, e.Aliases...)
			for _, k := range keys {
				norm := glossary.Normalize(k)
				if prev, dup := seen[norm]; dup && prev != e.ID {
					fmt.Printf("glossary: %q in entry %q collides with entry %q\n", k, e.ID, prev)
					problems++
					continue
				}
				seen[norm] = e.ID
			}
		}

		// Triggers that miss the glossary.
		articles, err := content.LoadDir(cfg.ContentDir, cfg.Include, cfg.Exclude)
		if err != nil {
			return err
		}
		renderer := content.NewRenderer(idx)
		for _, a := range articles {
			rendered, err := renderer.Render(a)
			if err != nil {
				fmt.Printf("article %s: %v\n", a.Path, err)
				problems++
				continue
			}
			for _, m := range rendered.Misses {
				fmt.Printf("article %s: trigger [[%s]] does not resolve\n", a.Path, m.Query)
				problems++
			}
		}

		if problems > 0 {
			return fmt.Errorf("%d problem(s) found", problems)
		}

		fmt.Printf("OK: %d glossary terms, %d articles\n", idx.Len(), len(articles))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
