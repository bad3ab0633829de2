package placement

import "errors"

var (
	// ErrActivation is returned when a family symbol could not be activated.
	ErrActivation = errors.New("item activation failed")
	// ErrCreation is returned when an instance could not be created.
	ErrCreation = errors.New("instance creation failed")
	// ErrHost is returned when a host read or write failed.
	ErrHost = errors.New("host operation failed")

	// errDryRun abandons the unit of work of a dry run.
	errDryRun = errors.New("dry run")
)
