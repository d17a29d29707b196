package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rfcpress/rfcpress/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up a new rfcpress site interactively",
	Long: `Runs an interactive wizard that writes rfcpress.yml and scaffolds
the content directory with a starter glossary and a sample article.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat("rfcpress.yml"); err == nil {
			return fmt.Errorf("rfcpress.yml already exists; delete it to re-run init")
		}

		cfg, err := config.RunWizard()
		if err != nil {
			return err
		}

		if err := scaffoldContent(cfg); err != nil {
			return fmt.Errorf("scaffolding content: %w", err)
		}

		fmt.Println("\nNext steps:")
		fmt.Printf("  1. Edit articles under %s/\n", cfg.ContentDir)
		fmt.Printf("  2. Grow the glossary in %s/%s\n", cfg.ContentDir, cfg.Glossary)
		fmt.Println("  3. Run `rfcpress serve --watch` and start writing")
		return nil
	},
}

// scaffoldContent writes a starter glossary and sample article so the
// first build succeeds out of the box.
func scaffoldContent(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
		return err
	}

	glossaryPath := filepath.Join(cfg.ContentDir, cfg.Glossary)
	if _, err := os.Stat(glossaryPath); os.IsNotExist(err) {
		if err := os.WriteFile(glossaryPath, []byte(starterGlossary), 0o644); err != nil {
			return err
		}
	}

	articlePath := filepath.Join(cfg.ContentDir, "welcome.md")
	if _, err := os.Stat(articlePath); os.IsNotExist(err) {
		if err := os.WriteFile(articlePath, []byte(starterArticle), 0o644); err != nil {
			return err
		}
	}

	return nil
}

const starterGlossary = `terms:
  - id: dns
    term: DNS
    aliases: ["Domain Name System"]
    definition: >-
      The distributed naming system that translates human-readable
      hostnames into IP addresses.
    category: protocol
    related: [udp]
  - id: udp
    term: UDP
    aliases: ["User Datagram Protocol"]
    definition: >-
      A connectionless transport protocol offering best-effort datagram
      delivery with minimal overhead.
    category: protocol
    related: [dns]
`

const starterArticle = `---
title: Welcome to your RFC explainer
slug: welcome
series: Getting Started
summary: A sample article showing glossary triggers and diagrams.
order: 1
---

# Welcome

Mark up any term from your glossary like [[DNS]] and readers get an
inline definition popup. Override the display text with
[[the naming system|DNS]] when the prose needs it.

Diagrams use fenced mermaid blocks:

` + "```mermaid" + `
sequenceDiagram
    participant Client
    participant Resolver
    Client->>Resolver: query example.com
    Resolver-->>Client: 93.184.216.34
` + "```" + `

<details>
<summary>Deep dive: why UDP?</summary>

Most lookups ride on [[UDP]] because a single request/response pair
does not need a connection.

</details>
`

func init() {
	rootCmd.AddCommand(initCmd)
}
