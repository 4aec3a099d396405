package extraction

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/recruiter-portal/internal/parsing"
	"github.com/jonathan/recruiter-portal/internal/types"
)

// resumeExtensions are the document types picked up from a resume directory.
var resumeExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// BuildCandidate derives a candidate record from extracted resume text. The
// display name comes from the file name stem; the contact email is the first
// address found in the text, or a placeholder derived from the name when the
// resume carries none.
func BuildCandidate(fileName, text string) types.CandidateRecord {
	name := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))

	email := parsing.FirstEmail(text)
	if email == "" {
		email = parsing.PlaceholderEmail(name)
	}

	return types.CandidateRecord{
		Name:            name,
		Email:           email,
		ResumeText:      text,
		ExtractedSkills: parsing.Normalize(text, nil),
		ExperienceYears: parsing.CandidateYears(text),
		HasDegree:       parsing.MentionsDegree(text),
	}
}

// LoadDir reads every resume document in dir and returns candidate records in
// sorted file name order, so repeated runs see the same batch order. A file
// that fails to parse still yields a record, with empty resume text; the
// scoring engine treats such candidates as zero-signal rather than failing
// the batch.
func LoadDir(dir string) ([]types.CandidateRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if resumeExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	candidates := make([]types.CandidateRecord, 0, len(names))
	for _, name := range names {
		text, err := Text(filepath.Join(dir, name))
		if err != nil {
			text = ""
		}
		candidates = append(candidates, BuildCandidate(name, text))
	}
	return candidates, nil
}
