// Package skills derives job skill sets from postings and matches them
// against resume text.
package skills

import (
	"strings"

	"github.com/jonathan/recruiter-portal/internal/parsing"
	"github.com/jonathan/recruiter-portal/internal/types"
)

// JobVocabulary derives the implicit job skill token set from a posting's
// description. Used when the recruiter supplied no explicit skill list.
func JobVocabulary(job *types.JobPosting) []string {
	return parsing.Normalize(job.Description, nil)
}

// Match returns the subset of job skills whose lowercase form occurs as a
// substring of the lowercased resume text, in job-skill order with
// duplicates removed.
//
// Matching is substring containment, not token-boundary matching. That is
// deliberate: it catches compound terms like "c++" or "node.js" even when
// resume tokenization differs. The known trade-off is false positives for
// very short skills (job skill "go" matches inside "going").
func Match(jobSkills []string, resumeText string) []string {
	if len(jobSkills) == 0 || resumeText == "" {
		return nil
	}

	lower := strings.ToLower(resumeText)
	seen := make(map[string]bool, len(jobSkills))
	var matched []string

	for _, skill := range jobSkills {
		s := strings.ToLower(skill)
		if s == "" || seen[s] {
			continue
		}
		if strings.Contains(lower, s) {
			seen[s] = true
			matched = append(matched, s)
		}
	}

	return matched
}
