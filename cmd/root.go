package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rfcpress",
	Short: "Build and serve explorable RFC explainer sites",
	Long: `rfcpress turns a directory of annotated markdown articles into a
static website for learning internet protocols: glossary terms pop up
inline definitions, mermaid diagrams render with theme-aware colors,
and every article gets syntax-highlighted packet and code listings.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "rfcpress.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
