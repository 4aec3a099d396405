package types

// SubScoreUnused marks a sub-score field that a scoring strategy did not
// compute (e.g. the explicit weighted mode bypasses the five-factor
// composite entirely).
const SubScoreUnused = -1.0

// SubScores holds the five composite factors, each in [0,1].
// EducationMatch is binary (0 or 1).
type SubScores struct {
	SkillRatio      float64 `json:"skill_ratio"`
	SemanticSim     float64 `json:"semantic_sim"`
	TitleSim        float64 `json:"title_sim"`
	ExperienceRatio float64 `json:"experience_ratio"`
	EducationMatch  float64 `json:"education_match"`
}

// UnusedSubScores returns sub-scores with every factor marked unused.
func UnusedSubScores() SubScores {
	return SubScores{
		SkillRatio:      SubScoreUnused,
		SemanticSim:     SubScoreUnused,
		TitleSim:        SubScoreUnused,
		ExperienceRatio: SubScoreUnused,
		EducationMatch:  SubScoreUnused,
	}
}

// ScoreResult is the outcome of scoring one candidate against one job.
// It is a pure function of (JobPosting, CandidateRecord) except for the
// corpus-relative similarity factors, which depend on the whole batch.
type ScoreResult struct {
	CandidateEmail string `json:"candidate_email"`

	// MatchedSkills lists the job skills found in the resume,
	// in job-skill order with duplicates removed.
	MatchedSkills []string `json:"matched_skills,omitempty"`

	SubScores  SubScores `json:"sub_scores"`
	FinalScore float64   `json:"final_score"`

	// Explanation is a deterministic human-readable breakdown.
	Explanation string `json:"explanation"`

	// Degraded is set when a strategy fell back for this candidate
	// (e.g. external scoring unavailable); Note says why.
	Degraded bool   `json:"degraded,omitempty"`
	Note     string `json:"note,omitempty"`
}
