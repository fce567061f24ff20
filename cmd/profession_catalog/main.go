// Package main provides the entry point for the profession catalog collector.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profession_catalog",
	Short: "Profession catalog collector",
	Long:  "Profession catalog collector assembles a locale-specific list of professions with salaries and skills from a generative API, validates every record, and writes the accepted catalog plus a preflight rejection report.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
