package internal

import "fmt"

// UnsupportedPlatformError indicates the running OS has no known Cursor
// storage location. This is the only error that aborts a whole pass.
type UnsupportedPlatformError struct {
	OS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s (only macOS, Linux and Windows are supported)", e.OS)
}

// DatabaseOpenError indicates a database copy could not be created or opened.
// The Normalizer recovers by skipping the affected database.
type DatabaseOpenError struct {
	Path string
	Op   string // "copy", "checkpoint", "open"
	Err  error
}

func (e *DatabaseOpenError) Error() string {
	return fmt.Sprintf("database open error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DatabaseOpenError) Unwrap() error {
	return e.Err
}

// QueryError indicates a read against the key-value table failed. Treated the
// same as DatabaseOpenError during extraction: that database only is skipped.
type QueryError struct {
	Path string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query error: %s: %v", e.Path, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// MalformedRecordError indicates a single key-value entry could not be
// decoded. Adapters skip the record with a warning and continue.
type MalformedRecordError struct {
	Adapter string
	Key     string
	Err     error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record [%s] %s: %v", e.Adapter, e.Key, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
