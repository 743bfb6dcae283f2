package store

// Store persists optimization run results.
//
// Error conventions:
//   - nil on success
//   - ErrNotFound (via errors.Is) when the run does not exist
//   - wrapped descriptive errors for I/O and serialization failures
type Store interface {
	// SaveResult atomically persists the result for the given run,
	// overwriting any previous result with the same ID.
	SaveResult(runID string, result *RunResult) error

	// LoadResult retrieves the result for the given run.
	LoadResult(runID string) (*RunResult, error)

	// ListResults returns metadata for all persisted runs.
	ListResults() ([]RunInfo, error)

	// DeleteResult removes the run directory including its trace.
	DeleteResult(runID string) error
}

// ErrNotFound is returned when a requested run does not exist.
// Use errors.Is(err, ErrNotFound) to check for it.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents a missing run.
type NotFoundError struct {
	RunID string
}

func (e *NotFoundError) Error() string {
	if e.RunID != "" {
		return "run not found: " + e.RunID
	}
	return "run not found"
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}
