package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruiter-portal/internal/store"
)

func resetJobsFlags() {
	jobsAddTitle, jobsAddDescription, jobsAddDescFile = "", "", ""
	jobsAddLocation = ""
	jobsAddYears = 0
	jobsImportURL, jobsImportFile, jobsImportLocation = "", "", ""
}

func TestRunJobsAdd(t *testing.T) {
	cfg := usePortalConfig(t)
	t.Cleanup(resetJobsFlags)

	jobsAddTitle = "Data Engineer"
	jobsAddDescription = "Python SQL pipelines, 4+ years experience"
	jobsAddLocation = "Remote"

	require.NoError(t, runJobsAdd(nil, nil))

	jobs, err := store.NewJobStore(cfg.JobsPath).Load()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Data Engineer", jobs[0].Title)
	assert.Equal(t, "Remote", jobs[0].Location)
	// Years parsed from the description when not given explicitly.
	assert.Equal(t, 4, jobs[0].RequiredExperienceYears)
}

func TestRunJobsAdd_ExplicitYearsWin(t *testing.T) {
	cfg := usePortalConfig(t)
	t.Cleanup(resetJobsFlags)

	jobsAddTitle = "Engineer"
	jobsAddDescription = "Python, 4+ years"
	jobsAddYears = 7

	require.NoError(t, runJobsAdd(nil, nil))

	jobs, err := store.NewJobStore(cfg.JobsPath).Load()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, 7, jobs[0].RequiredExperienceYears)
}

func TestRunJobsAdd_RequiresDescription(t *testing.T) {
	usePortalConfig(t)
	t.Cleanup(resetJobsFlags)

	jobsAddTitle = "Engineer"
	assert.Error(t, runJobsAdd(nil, nil))
}

func TestRunJobsAdd_DescriptionFlagsExclusive(t *testing.T) {
	usePortalConfig(t)
	t.Cleanup(resetJobsFlags)

	jobsAddTitle = "Engineer"
	jobsAddDescription = "text"
	jobsAddDescFile = "desc.txt"
	assert.Error(t, runJobsAdd(nil, nil))
}

func TestRunJobsImport_FromCSVFile(t *testing.T) {
	cfg := usePortalConfig(t)
	t.Cleanup(resetJobsFlags)

	csvPath := filepath.Join(t.TempDir(), "import.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"title,description,location,required_years\n"+
			"Data Engineer,Python SQL,Remote,5\n"+
			"Analyst,Excel dashboards,NYC,\n"), 0o644))

	jobsImportFile = csvPath
	require.NoError(t, runJobsImport(jobsImportCmd, nil))

	jobs, err := store.NewJobStore(cfg.JobsPath).Load()
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Data Engineer", jobs[0].Title)
	assert.Equal(t, 5, jobs[0].RequiredExperienceYears)
}

func TestRunJobsImport_RequiresExactlyOneSource(t *testing.T) {
	usePortalConfig(t)
	t.Cleanup(resetJobsFlags)

	assert.Error(t, runJobsImport(jobsImportCmd, nil))

	jobsImportURL = "https://example.com/job"
	jobsImportFile = "jobs.csv"
	assert.Error(t, runJobsImport(jobsImportCmd, nil))
}

func TestRunJobsList_EmptyCatalog(t *testing.T) {
	usePortalConfig(t)
	assert.NoError(t, runJobsList(nil, nil))
}
