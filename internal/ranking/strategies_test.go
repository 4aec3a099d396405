package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruiter-portal/internal/types"
)

func TestWeightedStrategy_SelectedBySkillWeights(t *testing.T) {
	job := &types.JobPosting{
		Title:       "Engineer",
		Description: "irrelevant long description",
		SkillWeights: []types.SkillWeight{
			{Skill: "python", Weight: 2},
			{Skill: "sql", Weight: 3},
			{Skill: "docker", Weight: 5},
		},
	}
	results := analyze(t, job, []types.CandidateRecord{
		{Email: "a@example.com", ResumeText: "Python services on Docker"},
	})

	require.Len(t, results, 1)
	assert.InDelta(t, 0.7, results[0].FinalScore, 1e-9)
	assert.Equal(t, []string{"python", "docker"}, results[0].MatchedSkills)

	// Composite sub-scores are bypassed in this mode.
	assert.Equal(t, types.SubScoreUnused, results[0].SubScores.SkillRatio)
	assert.Equal(t, types.SubScoreUnused, results[0].SubScores.SemanticSim)
	assert.Contains(t, results[0].Explanation, "Weighted skills matched: 2/3 (0.70)")
}

func TestKeywordStrategy_CountsOccurrences(t *testing.T) {
	job := &types.JobPosting{
		Title:       "Engineer",
		Description: "python sql",
		Strategy:    types.StrategyKeyword,
	}
	results := analyze(t, job, []types.CandidateRecord{
		{Email: "a@example.com", ResumeText: "python python sql"},
		{Email: "b@example.com", ResumeText: "python"},
	})

	require.Len(t, results, 2)
	assert.Equal(t, "a@example.com", results[0].CandidateEmail)
	assert.Equal(t, 3.0, results[0].FinalScore)
	assert.Equal(t, 1.0, results[1].FinalScore)
}

// fakeRemote scores every candidate 0.9 but fails for one email.
type fakeRemote struct {
	failFor string
	calls   int
}

func (f *fakeRemote) Score(_ context.Context, _, _, email string) (float64, error) {
	f.calls++
	if email == f.failFor {
		return 0, errors.New("connection refused")
	}
	return 0.9, nil
}

func TestExternalStrategy_FallsBackPerCandidate(t *testing.T) {
	remote := &fakeRemote{failFor: "down@example.com"}
	a := &Analyzer{Remote: remote}

	job := &types.JobPosting{
		Title:       "Engineer",
		Description: "python sql",
		Strategy:    types.StrategyExternal,
	}
	results, err := a.Analyze(context.Background(), job, []types.CandidateRecord{
		{Email: "ok@example.com", ResumeText: "python"},
		{Email: "down@example.com", ResumeText: "python python sql"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 2, remote.calls)

	byEmail := map[string]types.ScoreResult{}
	for _, r := range results {
		byEmail[r.CandidateEmail] = r
	}

	ok := byEmail["ok@example.com"]
	assert.False(t, ok.Degraded)
	assert.InDelta(t, 0.9, ok.FinalScore, 1e-9)

	// The failing candidate degrades to the keyword count; the batch
	// still completed.
	down := byEmail["down@example.com"]
	assert.True(t, down.Degraded)
	assert.Equal(t, 3.0, down.FinalScore)
	assert.Contains(t, down.Note, "keyword fallback")
}

func TestExternalStrategy_RequiresRemote(t *testing.T) {
	job := &types.JobPosting{
		Title:       "Engineer",
		Description: "python",
		Strategy:    types.StrategyExternal,
	}
	_, err := (&Analyzer{}).Analyze(context.Background(), job, nil)
	assert.ErrorIs(t, err, ErrNoRemoteScorer)
}

func TestAnalyze_UnknownStrategy(t *testing.T) {
	job := &types.JobPosting{
		Title:       "Engineer",
		Description: "python",
		Strategy:    types.ScoringStrategy("quantum"),
	}
	_, err := (&Analyzer{}).Analyze(context.Background(), job, nil)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}
