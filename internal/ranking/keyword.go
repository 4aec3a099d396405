package ranking

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/recruiter-portal/internal/skills"
	"github.com/jonathan/recruiter-portal/internal/types"
)

// KeywordScorer implements the simplest scoring variant: the score is the
// total number of occurrences of each job skill token in the resume text.
// Scores are raw counts, not normalized to [0,1]; ranking order is what
// matters for this variant. It also serves as the local fallback when the
// external scoring API is unavailable.
type KeywordScorer struct{}

// ScoreBatch counts keyword occurrences per candidate.
func (KeywordScorer) ScoreBatch(
	ctx context.Context,
	job *types.JobPosting,
	candidates []types.CandidateRecord,
) ([]types.ScoreResult, error) {
	jobSkills := skills.JobVocabulary(job)

	results := make([]types.ScoreResult, len(candidates))
	for i := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results[i] = scoreKeywords(jobSkills, &candidates[i])
	}
	return results, nil
}

// scoreKeywords scores one candidate by occurrence counts.
func scoreKeywords(jobSkills []string, c *types.CandidateRecord) types.ScoreResult {
	lower := strings.ToLower(c.ResumeText)
	count := 0
	for _, skill := range jobSkills {
		count += strings.Count(lower, skill)
	}
	matched := skills.Match(jobSkills, c.ResumeText)

	explanation := fmt.Sprintf("Keyword occurrences: %d across %d job terms.", count, len(jobSkills))
	if len(matched) > 0 {
		explanation += " Matched: " + strings.Join(matched, ", ")
	}

	return types.ScoreResult{
		CandidateEmail: c.Email,
		MatchedSkills:  matched,
		SubScores:      types.UnusedSubScores(),
		FinalScore:     float64(count),
		Explanation:    explanation,
	}
}
