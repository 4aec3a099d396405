// Package store persists the portal's small working state as CSV files: the
// job catalog and the per-candidate status ledger. CSV keeps the files
// editable by recruiters in a spreadsheet; score history lives in Postgres
// instead (see the db package).
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/recruiter-portal/internal/types"
)

// ErrJobNotFound is returned when a lookup by title finds nothing.
var ErrJobNotFound = errors.New("job not found")

var jobsHeader = []string{"title", "description", "location", "required_years"}

// JobStore reads and writes the job catalog CSV.
type JobStore struct {
	Path string
}

// NewJobStore returns a store for the catalog at path. The file is created
// on first save.
func NewJobStore(path string) *JobStore {
	return &JobStore{Path: path}
}

// Load returns all jobs in file order. A missing file is an empty catalog,
// not an error.
func (s *JobStore) Load() ([]types.JobPosting, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open job catalog %s: %w", s.Path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse job catalog %s: %w", s.Path, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	jobs := make([]types.JobPosting, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}
		job := types.JobPosting{
			Title:       row[0],
			Description: row[1],
			Location:    row[2],
		}
		if len(row) > 3 && row[3] != "" {
			if years, err := strconv.Atoi(row[3]); err == nil {
				job.RequiredExperienceYears = years
			}
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// Save writes the full catalog, replacing the file.
func (s *JobStore) Save(jobs []types.JobPosting) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("failed to write job catalog %s: %w", s.Path, err)
	}
	defer func() { _ = f.Close() }()

	writer := csv.NewWriter(f)
	if err := writer.Write(jobsHeader); err != nil {
		return fmt.Errorf("failed to write catalog header: %w", err)
	}
	for _, job := range jobs {
		row := []string{job.Title, job.Description, job.Location, ""}
		if job.RequiredExperienceYears > 0 {
			row[3] = strconv.Itoa(job.RequiredExperienceYears)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write catalog row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// Add appends a job to the catalog.
func (s *JobStore) Add(job types.JobPosting) error {
	jobs, err := s.Load()
	if err != nil {
		return err
	}
	return s.Save(append(jobs, job))
}

// ImportCSV appends every job row from r to the catalog. The input uses the
// catalog column layout, with an optional header row. Returns the number of
// jobs imported.
func (s *JobStore) ImportCSV(r io.Reader) (int, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to parse job CSV: %w", err)
	}

	jobs, err := s.Load()
	if err != nil {
		return 0, err
	}

	imported := 0
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		if i == 0 && strings.EqualFold(row[0], "title") {
			continue
		}
		job := types.JobPosting{Title: row[0], Description: row[1]}
		if len(row) > 2 {
			job.Location = row[2]
		}
		if len(row) > 3 && row[3] != "" {
			if years, err := strconv.Atoi(row[3]); err == nil {
				job.RequiredExperienceYears = years
			}
		}
		jobs = append(jobs, job)
		imported++
	}

	if err := s.Save(jobs); err != nil {
		return 0, err
	}
	return imported, nil
}

// Find returns the first job whose title matches, case-insensitively.
func (s *JobStore) Find(title string) (*types.JobPosting, error) {
	jobs, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if strings.EqualFold(jobs[i].Title, title) {
			return &jobs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrJobNotFound, title)
}
