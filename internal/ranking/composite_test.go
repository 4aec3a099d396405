package ranking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruiter-portal/internal/types"
)

func analyze(t *testing.T, job *types.JobPosting, candidates []types.CandidateRecord) []types.ScoreResult {
	t.Helper()
	results, err := (&Analyzer{}).Analyze(context.Background(), job, candidates)
	require.NoError(t, err)
	return results
}

func TestComposite_PerfectCandidateScoresExactlyOne(t *testing.T) {
	// Title, description, and resume all identical: every skill matches and
	// both similarity factors are 1. No experience or degree requirement, so
	// those award full score, and the reserved location term tops it off.
	text := "python sql developer"
	job := &types.JobPosting{Title: text, Description: text}
	results := analyze(t, job, []types.CandidateRecord{
		{Email: "perfect@example.com", ResumeText: text},
	})

	require.Len(t, results, 1)
	assert.InDelta(t, 1.0, results[0].FinalScore, 1e-9)
	assert.InDelta(t, 1.0, results[0].SubScores.SkillRatio, 1e-9)
	assert.InDelta(t, 1.0, results[0].SubScores.SemanticSim, 1e-9)
	assert.InDelta(t, 1.0, results[0].SubScores.TitleSim, 1e-9)
}

func TestComposite_EmptyResumeRegressionFixture(t *testing.T) {
	// Empty resume against a job with no degree and no experience
	// requirement: 0.15 (experience) + 0.10 (education) + 0.05 (reserved
	// location term) = 0.30 exactly.
	job := &types.JobPosting{Title: "Backend Engineer", Description: "python sql developer"}
	results := analyze(t, job, []types.CandidateRecord{
		{Email: "empty@example.com", ResumeText: ""},
	})

	require.Len(t, results, 1)
	r := results[0]
	assert.InDelta(t, 0.30, r.FinalScore, 1e-9)
	assert.Zero(t, r.SubScores.SkillRatio)
	assert.Zero(t, r.SubScores.SemanticSim)
	assert.Zero(t, r.SubScores.TitleSim)
	assert.InDelta(t, 1.0, r.SubScores.ExperienceRatio, 1e-9)
	assert.InDelta(t, 1.0, r.SubScores.EducationMatch, 1e-9)
	assert.Empty(t, r.MatchedSkills)
}

func TestComposite_ScoresBoundedZeroOne(t *testing.T) {
	job := &types.JobPosting{
		Title:       "Data Engineer",
		Description: "Python SQL Spark 5+ years master degree required",
	}
	candidates := []types.CandidateRecord{
		{Email: "a@example.com", ResumeText: "Python Spark, 10 years, Master of Science"},
		{Email: "b@example.com", ResumeText: "Java, 1 year"},
		{Email: "c@example.com", ResumeText: ""},
	}

	for _, r := range analyze(t, job, candidates) {
		assert.GreaterOrEqual(t, r.FinalScore, 0.0)
		assert.LessOrEqual(t, r.FinalScore, 1.0)
	}
}

func TestComposite_EmptyJobVocabularyMeansZeroSkillRatio(t *testing.T) {
	// A description made entirely of stopwords and experience fragments
	// yields an empty skill vocabulary: skillRatio is 0 for everyone, never
	// a division error and never an automatic full score.
	job := &types.JobPosting{Title: "Role", Description: "the and with 5+ years experience"}
	results := analyze(t, job, []types.CandidateRecord{
		{Email: "a@example.com", ResumeText: "python everything"},
	})

	require.Len(t, results, 1)
	assert.Zero(t, results[0].SubScores.SkillRatio)
}

func TestComposite_EndToEndScenario(t *testing.T) {
	job := &types.JobPosting{
		Title:       "Python Developer",
		Description: "Python SQL 3+ years bachelor required",
	}
	candidates := []types.CandidateRecord{
		{Email: "b@example.com", ResumeText: "Java developer, 1 year"},
		{Email: "a@example.com", ResumeText: "Experienced Python developer, 5 years, Bachelor of Science"},
	}

	results := analyze(t, job, candidates)
	require.Len(t, results, 2)

	// A outranks B.
	assert.Equal(t, "a@example.com", results[0].CandidateEmail)
	assert.Equal(t, "b@example.com", results[1].CandidateEmail)

	a, b := results[0], results[1]
	assert.Contains(t, a.MatchedSkills, "python")
	assert.InDelta(t, 1.0, a.SubScores.ExperienceRatio, 1e-9)
	assert.InDelta(t, 1.0, a.SubScores.EducationMatch, 1e-9)
	assert.InDelta(t, 1.0/3.0, b.SubScores.ExperienceRatio, 1e-9)
	assert.Zero(t, b.SubScores.EducationMatch)
}

func TestComposite_ExperienceFromJobFieldOverridesDescription(t *testing.T) {
	job := &types.JobPosting{
		Title:                   "Engineer",
		Description:             "python, 10 years preferred",
		RequiredExperienceYears: 2,
	}
	results := analyze(t, job, []types.CandidateRecord{
		{Email: "a@example.com", ResumeText: "python, 2 years"},
	})
	assert.InDelta(t, 1.0, results[0].SubScores.ExperienceRatio, 1e-9)
}

func TestComposite_ExplanationIsDeterministic(t *testing.T) {
	job := &types.JobPosting{Title: "Python Developer", Description: "Python SQL 3+ years"}
	c := []types.CandidateRecord{{Email: "a@example.com", ResumeText: "Python, 5 years"}}

	first := analyze(t, job, c)[0].Explanation
	assert.Contains(t, first, "Skills matched:")
	assert.Contains(t, first, "Matched: python")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, analyze(t, job, c)[0].Explanation)
	}
}

func TestComposite_DoesNotMutateInputs(t *testing.T) {
	job := &types.JobPosting{Title: "Engineer", Description: "python sql"}
	candidates := []types.CandidateRecord{
		{Email: "a@example.com", ResumeText: "python resume text"},
	}
	original := candidates[0]
	jobCopy := *job

	analyze(t, job, candidates)
	assert.Equal(t, original, candidates[0])
	assert.Equal(t, jobCopy, *job)
}
