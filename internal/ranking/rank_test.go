package ranking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruiter-portal/internal/types"
)

func TestRank_SortsDescending(t *testing.T) {
	results := []types.ScoreResult{
		{CandidateEmail: "low@example.com", FinalScore: 0.2},
		{CandidateEmail: "high@example.com", FinalScore: 0.9},
		{CandidateEmail: "mid@example.com", FinalScore: 0.5},
	}
	Rank(results)
	assert.Equal(t, "high@example.com", results[0].CandidateEmail)
	assert.Equal(t, "mid@example.com", results[1].CandidateEmail)
	assert.Equal(t, "low@example.com", results[2].CandidateEmail)
}

func TestRank_StableOnTies(t *testing.T) {
	// Candidates with identical scores keep their input order.
	results := []types.ScoreResult{
		{CandidateEmail: "first@example.com", FinalScore: 0.5},
		{CandidateEmail: "second@example.com", FinalScore: 0.5},
		{CandidateEmail: "winner@example.com", FinalScore: 0.8},
		{CandidateEmail: "third@example.com", FinalScore: 0.5},
	}
	Rank(results)
	assert.Equal(t, "winner@example.com", results[0].CandidateEmail)
	assert.Equal(t, "first@example.com", results[1].CandidateEmail)
	assert.Equal(t, "second@example.com", results[2].CandidateEmail)
	assert.Equal(t, "third@example.com", results[3].CandidateEmail)
}

func TestAnalyze_TieStabilityEndToEnd(t *testing.T) {
	// Identical resumes produce identical scores in every factor; the
	// ranking must preserve upload order.
	job := &types.JobPosting{Title: "Engineer", Description: "python sql"}
	candidates := []types.CandidateRecord{
		{Email: "uploaded-first@example.com", ResumeText: "python and sql"},
		{Email: "uploaded-second@example.com", ResumeText: "python and sql"},
	}

	results := analyze(t, job, candidates)
	require.Len(t, results, 2)
	assert.Equal(t, results[0].FinalScore, results[1].FinalScore)
	assert.Equal(t, "uploaded-first@example.com", results[0].CandidateEmail)
	assert.Equal(t, "uploaded-second@example.com", results[1].CandidateEmail)
}

func TestAnalyze_Idempotent(t *testing.T) {
	job := &types.JobPosting{
		Title:       "Data Engineer",
		Description: "Python SQL Spark 5+ years bachelor",
	}
	candidates := []types.CandidateRecord{
		{Email: "a@example.com", ResumeText: "Python Spark, 10 years, Bachelor of Science"},
		{Email: "b@example.com", ResumeText: "SQL analyst, 3 years"},
		{Email: "c@example.com", ResumeText: ""},
	}

	first := analyze(t, job, candidates)
	second := analyze(t, job, candidates)
	assert.Equal(t, first, second)
}

func TestAnalyze_EmptyBatchCompletes(t *testing.T) {
	job := &types.JobPosting{Title: "Engineer", Description: "python"}
	results := analyze(t, job, nil)
	assert.Empty(t, results)
}

func TestAnalyze_NoJobDescriptionIsStructuralError(t *testing.T) {
	_, err := (&Analyzer{}).Analyze(context.Background(),
		&types.JobPosting{Title: "Engineer", Description: "   "}, nil)
	assert.ErrorIs(t, err, ErrNoJobDescription)

	_, err = (&Analyzer{}).Analyze(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrNoJobDescription)
}

func TestAnalyze_MalformedCandidateNeverAborts(t *testing.T) {
	job := &types.JobPosting{Title: "Engineer", Description: "python sql 2+ years degree"}
	results := analyze(t, job, []types.CandidateRecord{
		{Email: "fine@example.com", ResumeText: "python, 3 years, degree"},
		{Email: "broken@example.com"}, // extraction produced nothing
	})

	require.Len(t, results, 2)
	assert.Equal(t, "fine@example.com", results[0].CandidateEmail)
	assert.Equal(t, "broken@example.com", results[1].CandidateEmail)
	assert.GreaterOrEqual(t, results[1].FinalScore, 0.0)
}
