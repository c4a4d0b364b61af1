package replication

import "errors"

// Error kinds raised by this package. Every failure wraps exactly one of
// these; callers discriminate with errors.Is.
var (
	// ErrConnection means the database file could not be opened.
	ErrConnection = errors.New("replication: connection error")

	// ErrGeneric means the engine rejected a statement, typically
	// because the file is locked by another process.
	ErrGeneric = errors.New("replication: database error")

	// ErrValue means a row's arity does not match the declared columns.
	ErrValue = errors.New("replication: value error")
)
