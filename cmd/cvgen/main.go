// Package main provides the entry point for the cvgen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvgen",
	Short: "CV document generation engine",
	Long:  "cvgen assembles a CV from structured content, a template (section layout, typography, colors), and branding overrides, and exports the result as a paginated PDF or a static HTML snapshot.",
}

var (
	rootConfigFile string
	rootStorageDir string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootConfigFile, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&rootStorageDir, "storage-dir", "", "Directory holding the template catalogue (default ~/.cv-generator)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
