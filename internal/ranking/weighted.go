package ranking

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/recruiter-portal/internal/skills"
	"github.com/jonathan/recruiter-portal/internal/types"
)

// WeightedScorer implements the explicit weighted mode: the recruiter
// supplied skills with manual importance weights, and a candidate's score is
// the sum of normalized weights of matched skills. The five-factor composite
// is bypassed entirely; unused sub-score fields carry the unused sentinel.
type WeightedScorer struct{}

// ScoreBatch scores each candidate independently by weighted skill hits.
func (WeightedScorer) ScoreBatch(
	ctx context.Context,
	job *types.JobPosting,
	candidates []types.CandidateRecord,
) ([]types.ScoreResult, error) {
	results := make([]types.ScoreResult, len(candidates))
	for i := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c := &candidates[i]
		score, matched := skills.WeightedScore(job.SkillWeights, c.ResumeText)

		results[i] = types.ScoreResult{
			CandidateEmail: c.Email,
			MatchedSkills:  matched,
			SubScores:      types.UnusedSubScores(),
			FinalScore:     score,
			Explanation:    explainWeighted(score, len(matched), len(job.SkillWeights), matched),
		}
	}
	return results, nil
}

func explainWeighted(score float64, matchedCount, skillCount int, matched []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weighted skills matched: %d/%d (%.2f).", matchedCount, skillCount, score)
	if len(matched) > 0 {
		fmt.Fprintf(&b, " Matched: %s", strings.Join(matched, ", "))
	}
	return b.String()
}
