package workflow

import "errors"

var (
	// ErrAlreadyRunning is returned when Start is called twice.
	ErrAlreadyRunning = errors.New("workflow is already running")

	// ErrNotRunning is returned when Stop is called with no active run.
	ErrNotRunning = errors.New("workflow is not running")
)
