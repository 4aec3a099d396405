// Package types provides type definitions for structured data used throughout the recruiter portal.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScoringStrategy selects which scoring variant is applied for a job.
type ScoringStrategy string

// Scoring strategy constants
const (
	// StrategyComposite is the five-factor weighted composite (default).
	StrategyComposite ScoringStrategy = "composite"
	// StrategyWeighted scores by recruiter-supplied skill weights, bypassing the composite.
	StrategyWeighted ScoringStrategy = "weighted"
	// StrategyKeyword scores by raw keyword occurrence counts.
	StrategyKeyword ScoringStrategy = "keyword"
	// StrategyExternal delegates to a remote scoring API with keyword fallback.
	StrategyExternal ScoringStrategy = "external"
)

// SkillWeight is a recruiter-supplied skill with a manual importance weight.
// Raw weights are on a 1-10 scale; they are normalized to sum to 1.0 before use.
type SkillWeight struct {
	Skill  string  `json:"skill" validate:"required"`
	Weight float64 `json:"weight" validate:"gt=0"`
}

// JobPosting represents a job opening a batch of candidates is scored against.
type JobPosting struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location,omitempty"`

	// RequiredExperienceYears is the explicit requirement; 0 means unspecified,
	// in which case the requirement is parsed from the description if present.
	RequiredExperienceYears int `json:"required_experience_years,omitempty" validate:"gte=0"`

	// SkillWeights, when non-empty, switches scoring to the explicit weighted mode.
	SkillWeights []SkillWeight `json:"skill_weights,omitempty" validate:"dive"`

	// Strategy selects the scoring variant; empty means composite
	// (or weighted when SkillWeights is set).
	Strategy ScoringStrategy `json:"strategy,omitempty"`
}

// EffectiveStrategy resolves the scoring strategy for this job.
// An explicit skill list always wins over an unset strategy.
func (j *JobPosting) EffectiveStrategy() ScoringStrategy {
	if j.Strategy != "" {
		return j.Strategy
	}
	if len(j.SkillWeights) > 0 {
		return StrategyWeighted
	}
	return StrategyComposite
}
