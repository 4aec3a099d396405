package types

// CandidateRecord represents one uploaded resume after text extraction.
// Records are built once by the extraction layer and never mutated by scoring;
// missing fields use zero values rather than absence, so scoring has no
// nil-handling branches.
type CandidateRecord struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`

	// ResumeText is the raw extracted text. May be empty when document
	// parsing failed; scoring degrades to zero scores instead of erroring.
	ResumeText string `json:"resume_text"`

	// ExtractedSkills is the candidate's lowercase skill token set,
	// first-seen order preserved.
	ExtractedSkills []string `json:"extracted_skills,omitempty"`

	// ExperienceYears is the estimated total experience (max "<n> years"
	// pattern found in the resume, 0 if none).
	ExperienceYears int `json:"experience_years"`

	// HasDegree reports whether the resume mentions any degree or
	// certification keyword.
	HasDegree bool `json:"has_degree"`
}
