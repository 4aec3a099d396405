package types

// Candidate status constants tracked on the dashboard.
const (
	StatusInterviewRequested = "Interview Requested"
	StatusRejected           = "Rejected"
	StatusAccepted           = "Accepted"
)

// ValidStatus reports whether s is a known candidate status.
func ValidStatus(s string) bool {
	switch s {
	case StatusInterviewRequested, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// StatusEntry tracks one candidate's state for one job.
type StatusEntry struct {
	Email  string `json:"email"`
	Status string `json:"status"`
	Job    string `json:"job"`
}
