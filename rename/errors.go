package rename

import (
	"errors"
	"fmt"
)

// Configuration errors, reported before any filesystem work starts.
var (
	ErrNoInputDir  = errors.New("input directory is not set")
	ErrNoOutputDir = errors.New("output directory is not set")
)

// ErrNoFiles is the terminal error when the input directory is readable but
// contains no file with the requested extension.
var ErrNoFiles = errors.New("No files found to rename.")

// EnumerationError wraps a failure to read the input directory.
type EnumerationError struct {
	Dir string
	Err error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Dir, e.Err)
}

func (e *EnumerationError) Unwrap() error { return e.Err }

// DirectoryError wraps a failure to create the output directory.
type DirectoryError struct {
	Dir string
	Err error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("cannot create output directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// CopyError wraps a failure to copy a single file. Files copied before the
// failure are left in place.
type CopyError struct {
	Source string
	Dest   string
	Err    error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("cannot copy %s to %s: %v", e.Source, e.Dest, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }
