// Package ranking implements the candidate-scoring pipeline: feature
// computation, the scoring strategy variants, and the final ranking.
package ranking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/recruiter-portal/internal/types"
)

// Scorer is the common contract for the scoring strategy variants. Scoring
// takes the whole batch because the composite's similarity factors are
// corpus-relative; results are returned in candidate input order, unranked.
type Scorer interface {
	ScoreBatch(ctx context.Context, job *types.JobPosting, candidates []types.CandidateRecord) ([]types.ScoreResult, error)
}

// Analyzer runs analysis batches. The zero value scores locally; set Remote
// to enable the external strategy.
type Analyzer struct {
	Remote RemoteScorer
}

// scorerFor selects the strategy variant from the job configuration.
func (a *Analyzer) scorerFor(job *types.JobPosting) (Scorer, error) {
	switch job.EffectiveStrategy() {
	case types.StrategyComposite:
		return CompositeScorer{}, nil
	case types.StrategyWeighted:
		return WeightedScorer{}, nil
	case types.StrategyKeyword:
		return KeywordScorer{}, nil
	case types.StrategyExternal:
		return ExternalScorer{Remote: a.Remote}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, job.Strategy)
	}
}

// Analyze scores and ranks a batch of candidates for one job. It is a pure
// computation over its inputs: neither the job nor the candidate records are
// mutated, and two runs over the same batch yield identical results.
//
// Zero candidates is not an error; the result is an empty ranking. A job with
// no description is a structural error (ErrNoJobDescription).
func (a *Analyzer) Analyze(
	ctx context.Context,
	job *types.JobPosting,
	candidates []types.CandidateRecord,
) ([]types.ScoreResult, error) {
	if job == nil || strings.TrimSpace(job.Description) == "" {
		return nil, ErrNoJobDescription
	}

	scorer, err := a.scorerFor(job)
	if err != nil {
		return nil, err
	}

	results, err := scorer.ScoreBatch(ctx, job, candidates)
	if err != nil {
		return nil, fmt.Errorf("score batch: %w", err)
	}

	Rank(results)
	return results, nil
}

// Rank sorts results by final score descending, in place. The sort is stable:
// candidates with identical scores keep their input order. (sort.Slice is not
// stable; SliceStable is required here.)
func Rank(results []types.ScoreResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})
}
