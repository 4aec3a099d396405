// Package main provides the entry point for the recruiter portal CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-portal/internal/config"
	"github.com/jonathan/recruiter-portal/internal/fetch"
)

var rootCmd = &cobra.Command{
	Use:   "recruiter",
	Short: "Recruiter portal CLI",
	Long:  "Recruiter portal scores and ranks candidate resumes against job postings, tracks candidate status, and serves the scoring engine over a REST API.",
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

// loadPortalConfig merges the optional config file with built-in defaults.
// Flags handled by individual commands override the result.
func loadPortalConfig() (config.Config, error) {
	defaults := config.Config{
		JobsPath:   "data/jobs.csv",
		StatusPath: "data/status.csv",
		ListenAddr: ":8080",
	}

	if configPath == "" {
		return defaults, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	merged := cfg.MergeWithDefaults(defaults)
	if verbose {
		merged.Verbose = true
	}
	return merged, nil
}

// fetchOptions builds posting-import options from the portal config.
func fetchOptions(cfg config.Config) *fetch.Options {
	opts := fetch.DefaultOptions()
	opts.Verbose = cfg.Verbose || verbose
	opts.ForceBrowser = cfg.UseBrowser
	return opts
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
