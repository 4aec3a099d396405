package ranking

import (
	"context"
	"fmt"

	"github.com/jonathan/recruiter-portal/internal/skills"
	"github.com/jonathan/recruiter-portal/internal/types"
)

// RemoteScorer is the contract for the optional third-party scoring
// collaborator. Implementations live outside this package (see scoreapi).
type RemoteScorer interface {
	Score(ctx context.Context, resumeText, jobDescription, email string) (float64, error)
}

// ExternalScorer delegates scoring to a remote service. A failure for one
// candidate degrades that candidate only: the result falls back to the local
// keyword-occurrence count and is marked degraded, and the batch continues.
type ExternalScorer struct {
	Remote RemoteScorer
}

// ScoreBatch scores candidates via the remote collaborator with per-candidate
// keyword fallback.
func (s ExternalScorer) ScoreBatch(
	ctx context.Context,
	job *types.JobPosting,
	candidates []types.CandidateRecord,
) ([]types.ScoreResult, error) {
	if s.Remote == nil {
		return nil, fmt.Errorf("external scoring: %w", ErrNoRemoteScorer)
	}

	jobSkills := skills.JobVocabulary(job)

	results := make([]types.ScoreResult, len(candidates))
	for i := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c := &candidates[i]

		score, err := s.Remote.Score(ctx, c.ResumeText, job.Description, c.Email)
		if err != nil {
			res := scoreKeywords(jobSkills, c)
			res.Degraded = true
			res.Note = fmt.Sprintf("external scoring unavailable, used keyword fallback: %v", err)
			results[i] = res
			continue
		}

		matched := skills.Match(jobSkills, c.ResumeText)
		results[i] = types.ScoreResult{
			CandidateEmail: c.Email,
			MatchedSkills:  matched,
			SubScores:      types.UnusedSubScores(),
			FinalScore:     score,
			Explanation:    fmt.Sprintf("External score: %.2f.", score),
		}
	}
	return results, nil
}
