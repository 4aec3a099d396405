package parsing

import (
	"regexp"
	"strings"
)

// emailPattern matches a standard email address inside free text.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9.+_-]+@[a-zA-Z0-9._-]+\.[a-zA-Z]+`)

// FirstEmail returns the first email address found in text, or "" if none.
func FirstEmail(text string) string {
	return emailPattern.FindString(text)
}

// PlaceholderEmail derives a deterministic placeholder address from a
// candidate name for resumes that contain no address of their own:
// "Jane Doe" becomes "jane.doe@example.com".
func PlaceholderEmail(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), ".")
	if slug == "" {
		slug = "unknown"
	}
	return slug + "@example.com"
}
