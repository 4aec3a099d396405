package store

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruiter-portal/internal/types"
)

func TestJobStore_RoundTrip(t *testing.T) {
	s := NewJobStore(filepath.Join(t.TempDir(), "jobs.csv"))

	jobs := []types.JobPosting{
		{Title: "Data Engineer", Description: "Python, SQL, Spark", Location: "Remote", RequiredExperienceYears: 5},
		{Title: "Frontend Engineer", Description: "React, \"quoted, commas\"", Location: "NYC"},
	}
	require.NoError(t, s.Save(jobs))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, jobs[0], loaded[0])
	assert.Equal(t, "React, \"quoted, commas\"", loaded[1].Description)
	assert.Zero(t, loaded[1].RequiredExperienceYears)
}

func TestJobStore_MissingFileIsEmptyCatalog(t *testing.T) {
	s := NewJobStore(filepath.Join(t.TempDir(), "jobs.csv"))
	jobs, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestJobStore_AddAppends(t *testing.T) {
	s := NewJobStore(filepath.Join(t.TempDir(), "jobs.csv"))

	require.NoError(t, s.Add(types.JobPosting{Title: "First", Description: "a"}))
	require.NoError(t, s.Add(types.JobPosting{Title: "Second", Description: "b"}))

	jobs, err := s.Load()
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "First", jobs[0].Title)
	assert.Equal(t, "Second", jobs[1].Title)
}

func TestJobStore_FindIsCaseInsensitive(t *testing.T) {
	s := NewJobStore(filepath.Join(t.TempDir(), "jobs.csv"))
	require.NoError(t, s.Add(types.JobPosting{Title: "Data Engineer", Description: "x"}))

	job, err := s.Find("data engineer")
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", job.Title)

	_, err = s.Find("missing role")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobStore_ImportCSV(t *testing.T) {
	s := NewJobStore(filepath.Join(t.TempDir(), "jobs.csv"))
	require.NoError(t, s.Add(types.JobPosting{Title: "Existing", Description: "x"}))

	input := strings.NewReader(
		"title,description,location,required_years\n" +
			"Data Engineer,Python SQL,Remote,5\n" +
			"Analyst,Excel dashboards\n")
	imported, err := s.ImportCSV(input)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	jobs, err := s.Load()
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "Existing", jobs[0].Title)
	assert.Equal(t, "Data Engineer", jobs[1].Title)
	assert.Equal(t, 5, jobs[1].RequiredExperienceYears)
	assert.Equal(t, "Analyst", jobs[2].Title)
}

func TestJobStore_ImportCSV_NoHeader(t *testing.T) {
	s := NewJobStore(filepath.Join(t.TempDir(), "jobs.csv"))

	imported, err := s.ImportCSV(strings.NewReader("Data Engineer,Python SQL\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	jobs, err := s.Load()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
}

func TestStatusStore_SetAndLoad(t *testing.T) {
	s := NewStatusStore(filepath.Join(t.TempDir(), "status.csv"))

	require.NoError(t, s.Set(types.StatusEntry{Email: "a@example.com", Status: types.StatusInterviewRequested, Job: "Data Engineer"}))
	require.NoError(t, s.Set(types.StatusEntry{Email: "b@example.com", Status: types.StatusRejected, Job: "Data Engineer"}))

	entries, err := s.Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, types.StatusInterviewRequested, entries[0].Status)
}

func TestStatusStore_SetReplacesExistingEntry(t *testing.T) {
	s := NewStatusStore(filepath.Join(t.TempDir(), "status.csv"))

	require.NoError(t, s.Set(types.StatusEntry{Email: "a@example.com", Status: types.StatusInterviewRequested, Job: "Data Engineer"}))
	require.NoError(t, s.Set(types.StatusEntry{Email: "a@example.com", Status: types.StatusAccepted, Job: "Data Engineer"}))

	entries, err := s.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, types.StatusAccepted, entries[0].Status)
}

func TestStatusStore_SameEmailDifferentJobs(t *testing.T) {
	s := NewStatusStore(filepath.Join(t.TempDir(), "status.csv"))

	require.NoError(t, s.Set(types.StatusEntry{Email: "a@example.com", Status: types.StatusRejected, Job: "Data Engineer"}))
	require.NoError(t, s.Set(types.StatusEntry{Email: "a@example.com", Status: types.StatusAccepted, Job: "Platform Engineer"}))

	entries, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	forJob, err := s.ForJob("platform engineer")
	require.NoError(t, err)
	require.Len(t, forJob, 1)
	assert.Equal(t, types.StatusAccepted, forJob[0].Status)
}

func TestStatusStore_RejectsUnknownStatus(t *testing.T) {
	s := NewStatusStore(filepath.Join(t.TempDir(), "status.csv"))
	err := s.Set(types.StatusEntry{Email: "a@example.com", Status: "Ghosted", Job: "Data Engineer"})
	assert.Error(t, err)
}
