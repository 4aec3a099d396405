// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/recruiter-portal/internal/types"
)

// Config represents the portal configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	JobsPath   string `json:"jobs_path,omitempty"`   // Path to the job catalog CSV
	StatusPath string `json:"status_path,omitempty"` // Path to the candidate status CSV
	ResumeDir  string `json:"resume_dir,omitempty"`  // Directory holding resume documents

	// Scoring
	Strategy    string `json:"strategy,omitempty"`      // Default scoring strategy
	ScoreAPIURL string `json:"score_api_url,omitempty"` // External scoring service URL
	ScoreAPIKey string `json:"score_api_key,omitempty"` // External scoring service key

	// Services
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for resume insight
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	ListenAddr  string `json:"listen_addr,omitempty"`  // HTTP server listen address

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA job boards
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are checked by the commands that need them, after flag merging.
func (c *Config) Validate() error {
	if c.Strategy != "" {
		switch types.ScoringStrategy(c.Strategy) {
		case types.StrategyComposite, types.StrategyWeighted, types.StrategyKeyword, types.StrategyExternal:
		default:
			return fmt.Errorf("config error: unknown strategy %q", c.Strategy)
		}
	}

	if c.Strategy == string(types.StrategyExternal) && c.ScoreAPIURL == "" {
		return fmt.Errorf("config error: 'score_api_url' is required for the external strategy")
	}

	if c.ResumeDir != "" {
		if info, err := os.Stat(c.ResumeDir); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: resume directory not found: %s", c.ResumeDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled
// from defaults. This is used to apply config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.JobsPath == "" {
		result.JobsPath = defaults.JobsPath
	}
	if result.StatusPath == "" {
		result.StatusPath = defaults.StatusPath
	}
	if result.ResumeDir == "" {
		result.ResumeDir = defaults.ResumeDir
	}
	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}
	if result.ScoreAPIURL == "" {
		result.ScoreAPIURL = defaults.ScoreAPIURL
	}
	if result.ScoreAPIKey == "" {
		result.ScoreAPIKey = defaults.ScoreAPIKey
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
