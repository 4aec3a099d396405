package ranking

import "errors"

// Batch-level errors. Per-candidate failures never surface here: malformed
// candidate records degrade to empty-text semantics and external scoring
// failures fall back per candidate, so the batch always completes.
var (
	// ErrNoJobDescription means the job posting carries no description at
	// all; there is nothing to score against.
	ErrNoJobDescription = errors.New("job posting has no description")

	// ErrNoRemoteScorer means the external strategy was selected but no
	// remote collaborator was configured.
	ErrNoRemoteScorer = errors.New("no remote scorer configured")

	// ErrUnknownStrategy means the job named a scoring strategy this engine
	// does not implement.
	ErrUnknownStrategy = errors.New("unknown scoring strategy")
)
