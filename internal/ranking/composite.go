package ranking

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/recruiter-portal/internal/parsing"
	"github.com/jonathan/recruiter-portal/internal/skills"
	"github.com/jonathan/recruiter-portal/internal/types"
)

// Composite weights. Fixed constants summing to exactly 1.0; the location
// term is a reserved placeholder for a location-fit factor not currently
// computed, so a perfect candidate still scores exactly 1.0.
const (
	skillWeight      = 0.40
	semanticWeight   = 0.20
	experienceWeight = 0.15
	titleWeight      = 0.10
	educationWeight  = 0.10
	locationReserved = 0.05
)

// CompositeScorer implements the five-factor weighted composite used when the
// recruiter supplied no explicit skill list.
type CompositeScorer struct{}

// ScoreBatch scores every candidate against the job. The tf-idf vectorizers
// are built once over the whole batch, a single serialization point; the
// per-candidate combination step is then parallelized since the matrices are
// read-only.
func (CompositeScorer) ScoreBatch(
	ctx context.Context,
	job *types.JobPosting,
	candidates []types.CandidateRecord,
) ([]types.ScoreResult, error) {
	jobSkills := skills.JobVocabulary(job)
	requiredYears := job.RequiredExperienceYears
	if requiredYears == 0 {
		requiredYears = parsing.RequiredYears(job.Description)
	}
	jobNeedsDegree := parsing.MentionsDegree(job.Description)

	// Corpus layout: row 0 is the job text, row i+1 is candidate i.
	texts := make([]string, 0, len(candidates)+1)
	texts = append(texts, job.Description)
	for _, c := range candidates {
		texts = append(texts, c.ResumeText)
	}
	descVec := NewVectorizer(texts)

	texts[0] = job.Title
	titleVec := NewVectorizer(texts)

	results := make([]types.ScoreResult, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	for i := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = scoreComposite(job, &candidates[i], compositeInputs{
				jobSkills:      jobSkills,
				requiredYears:  requiredYears,
				jobNeedsDegree: jobNeedsDegree,
				semanticSim:    descVec.Cosine(0, i+1),
				titleSim:       titleVec.Cosine(0, i+1),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// compositeInputs carries the batch-level values each candidate is scored
// against.
type compositeInputs struct {
	jobSkills      []string
	requiredYears  int
	jobNeedsDegree bool
	semanticSim    float64
	titleSim       float64
}

// scoreComposite computes one candidate's sub-scores and combines them.
// Pure: neither the job nor the candidate record is mutated.
func scoreComposite(job *types.JobPosting, c *types.CandidateRecord, in compositeInputs) types.ScoreResult {
	matched := skills.Match(in.jobSkills, c.ResumeText)

	sub := types.SubScores{
		SemanticSim: in.semanticSim,
		TitleSim:    in.titleSim,
	}

	// Empty job vocabulary means 0, never a full score. The experience and
	// education factors below differ: they award full score when the job
	// states no requirement.
	if len(in.jobSkills) > 0 {
		sub.SkillRatio = float64(len(matched)) / float64(len(in.jobSkills))
	}

	candidateYears := c.ExperienceYears
	if candidateYears == 0 {
		candidateYears = parsing.CandidateYears(c.ResumeText)
	}
	if in.requiredYears > 0 {
		sub.ExperienceRatio = float64(candidateYears) / float64(in.requiredYears)
		if sub.ExperienceRatio > 1 {
			sub.ExperienceRatio = 1
		}
	} else {
		sub.ExperienceRatio = 1
	}

	if !in.jobNeedsDegree || c.HasDegree || parsing.MentionsDegree(c.ResumeText) {
		sub.EducationMatch = 1
	}

	final := skillWeight*sub.SkillRatio +
		semanticWeight*sub.SemanticSim +
		experienceWeight*sub.ExperienceRatio +
		titleWeight*sub.TitleSim +
		educationWeight*sub.EducationMatch +
		locationReserved

	return types.ScoreResult{
		CandidateEmail: c.Email,
		MatchedSkills:  matched,
		SubScores:      sub,
		FinalScore:     final,
		Explanation: explainComposite(sub, len(matched), len(in.jobSkills),
			candidateYears, in.requiredYears, matched),
	}
}

// explainComposite renders the deterministic sub-score breakdown, 2-decimal
// precision, stable field order.
func explainComposite(sub types.SubScores, matchedCount, jobSkillCount, candidateYears, requiredYears int, matched []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Skills matched: %d/%d (%.2f). ", matchedCount, jobSkillCount, sub.SkillRatio)
	fmt.Fprintf(&b, "Semantic similarity: %.2f. ", sub.SemanticSim)
	fmt.Fprintf(&b, "Title similarity: %.2f. ", sub.TitleSim)
	if requiredYears > 0 {
		fmt.Fprintf(&b, "Experience: %d vs %d required (%.2f). ", candidateYears, requiredYears, sub.ExperienceRatio)
	} else {
		fmt.Fprintf(&b, "Experience: %d, none required (%.2f). ", candidateYears, sub.ExperienceRatio)
	}
	if sub.EducationMatch >= 1 {
		b.WriteString("Degree requirement met: yes.")
	} else {
		b.WriteString("Degree requirement met: no.")
	}
	if len(matched) > 0 {
		fmt.Fprintf(&b, " Matched: %s", strings.Join(matched, ", "))
	}
	return b.String()
}
