package parsing

import (
	"regexp"
	"strconv"
)

// yearsPattern matches experience statements like "5+ years", "8 years",
// "2 yrs", "1 year", "3yrs".
var yearsPattern = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*(?:years?|yrs?)`)

// RequiredYears extracts the experience requirement from a job description:
// the first "<integer> years" occurrence. Returns 0 when the description
// states no requirement.
func RequiredYears(description string) int {
	m := yearsPattern.FindStringSubmatch(description)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// CandidateYears estimates a candidate's experience from resume text: the
// maximum integer of any "<integer> years" occurrence. Returns 0 when none
// is found (including empty text).
func CandidateYears(resumeText string) int {
	maxYears := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(resumeText, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > maxYears {
			maxYears = n
		}
	}
	return maxYears
}
