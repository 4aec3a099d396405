package parsing

import "strings"

// degreeKeywords are the degree and certification markers checked by the
// education factor. Matching is case-insensitive substring containment, so
// "Bachelor of Science" satisfies "bachelor".
var degreeKeywords = []string{
	"bachelor",
	"master",
	"phd",
	"associate",
	"degree",
	"certification",
	"certificate",
}

// MentionsDegree reports whether text contains any degree or certification
// keyword.
func MentionsDegree(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range degreeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
