// Where: internal/build/errors.go
// What: Typed errors raised while resolving and archiving sources.
// Why: Let callers distinguish bad input paths from archive I/O failures.
package build

import "fmt"

// InvalidPathError reports a source path that does not exist or is neither a
// regular file nor a directory.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid source path %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid source path %s", e.Path)
}

func (e *InvalidPathError) Unwrap() error { return e.Err }

// ArchiveError reports a failure while producing the zip archive.
type ArchiveError struct {
	Source string
	Err    error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archive %s: %v", e.Source, e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }
