package skills

import (
	"strings"

	"github.com/jonathan/recruiter-portal/internal/types"
)

// NormalizeWeights scales recruiter-supplied weights (1-10 scale) so they sum
// to 1.0, preserving input order. Entries with empty skill names or
// non-positive weights are dropped before normalization. The result is
// deterministic: same input order yields same output order and values.
func NormalizeWeights(weights []types.SkillWeight) []types.SkillWeight {
	total := 0.0
	cleaned := make([]types.SkillWeight, 0, len(weights))
	for _, w := range weights {
		skill := strings.ToLower(strings.TrimSpace(w.Skill))
		if skill == "" || w.Weight <= 0 {
			continue
		}
		cleaned = append(cleaned, types.SkillWeight{Skill: skill, Weight: w.Weight})
		total += w.Weight
	}
	if len(cleaned) == 0 || total == 0 {
		return nil
	}

	for i := range cleaned {
		cleaned[i].Weight /= total
	}
	return cleaned
}

// WeightedScore scores a candidate in the explicit weighted mode: the sum of
// normalized weights of the skills found in the resume. The range is [0,1],
// reaching 1.0 only when every skill matches. Also returns the matched skill
// names in list order.
func WeightedScore(weights []types.SkillWeight, resumeText string) (float64, []string) {
	normalized := NormalizeWeights(weights)
	if len(normalized) == 0 {
		return 0, nil
	}

	lower := strings.ToLower(resumeText)
	score := 0.0
	var matched []string
	for _, w := range normalized {
		if lower != "" && strings.Contains(lower, w.Skill) {
			score += w.Weight
			matched = append(matched, w.Skill)
		}
	}
	return score, matched
}
