package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/recruiter-portal/internal/types"
)

var statusHeader = []string{"email", "status", "job"}

// StatusStore reads and writes the candidate status ledger CSV. One row per
// candidate per job; setting a status again replaces the earlier row.
type StatusStore struct {
	Path string
}

// NewStatusStore returns a store for the ledger at path.
func NewStatusStore(path string) *StatusStore {
	return &StatusStore{Path: path}
}

// Load returns all status entries in file order. A missing file is an empty
// ledger.
func (s *StatusStore) Load() ([]types.StatusEntry, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open status ledger %s: %w", s.Path, err)
	}
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse status ledger %s: %w", s.Path, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	entries := make([]types.StatusEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}
		entries = append(entries, types.StatusEntry{
			Email:  row[0],
			Status: row[1],
			Job:    row[2],
		})
	}
	return entries, nil
}

func (s *StatusStore) save(entries []types.StatusEntry) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create ledger directory: %w", err)
		}
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("failed to write status ledger %s: %w", s.Path, err)
	}
	defer func() { _ = f.Close() }()

	writer := csv.NewWriter(f)
	if err := writer.Write(statusHeader); err != nil {
		return fmt.Errorf("failed to write ledger header: %w", err)
	}
	for _, entry := range entries {
		if err := writer.Write([]string{entry.Email, entry.Status, entry.Job}); err != nil {
			return fmt.Errorf("failed to write ledger row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// Set records a status for a candidate on a job, replacing any existing
// entry for the same email and job.
func (s *StatusStore) Set(entry types.StatusEntry) error {
	if !types.ValidStatus(entry.Status) {
		return fmt.Errorf("invalid status %q", entry.Status)
	}

	entries, err := s.Load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range entries {
		if strings.EqualFold(entries[i].Email, entry.Email) && strings.EqualFold(entries[i].Job, entry.Job) {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}
	return s.save(entries)
}

// ForJob returns the entries recorded against one job title.
func (s *StatusStore) ForJob(job string) ([]types.StatusEntry, error) {
	entries, err := s.Load()
	if err != nil {
		return nil, err
	}

	var matched []types.StatusEntry
	for _, entry := range entries {
		if strings.EqualFold(entry.Job, job) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}
