package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruiter-portal/internal/config"
)

// usePortalConfig points the CLI at a throwaway config file whose data paths
// live under a temp directory. The previous config path is restored when the
// test finishes.
func usePortalConfig(t *testing.T) config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Config{
		JobsPath:   filepath.Join(dir, "jobs.csv"),
		StatusPath: filepath.Join(dir, "status.csv"),
	}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	previous := configPath
	configPath = path
	t.Cleanup(func() { configPath = previous })

	return cfg
}
