package domain

import (
	"errors"
	"fmt"
)

// Resolution failures. All of them mean "module missing" to the compiler.
var (
	ErrRootNotFound        = errors.New("root not found")
	ErrPathSegmentNotFound = errors.New("path segment not found")
	ErrTargetNotFound      = errors.New("target not found")
	ErrMalformedPath       = errors.New("malformed path")
	ErrEmptyModule         = errors.New("module has no files")
)

var (
	// ErrNoBinary is returned when the compiler succeeds without producing output.
	ErrNoBinary = errors.New("compiler produced no binary")
	// ErrStaleCompile marks the result of a compile that a newer one superseded.
	ErrStaleCompile = errors.New("compile superseded by a newer request")
)

// ResolutionError reports why (Root, Path) could not be resolved. Segment is
// the path segment the walk stopped at, if any.
type ResolutionError struct {
	Root    string
	Path    string
	Segment string
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s/%s: %s", e.Root, e.Path, e.reason())
}

func (e *ResolutionError) reason() string {
	if e.Segment != "" {
		return fmt.Sprintf("%v %q", e.Err, e.Segment)
	}

	return fmt.Sprint(e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// CompileFailure is a failed compile. Root and Path are set when the failure
// was caused by a module the compiler asked for and could not get.
type CompileFailure struct {
	Root string
	Path string
	Err  error
}

func (e *CompileFailure) Error() string {
	if e.MissingModule() {
		reason := fmt.Sprint(e.Err)

		var resErr *ResolutionError
		if errors.As(e.Err, &resErr) {
			reason = resErr.reason()
		}

		return fmt.Sprintf("module not found: %s/%s (%s)", e.Root, e.Path, reason)
	}

	return fmt.Sprintf("compile failed: %v", e.Err)
}

func (e *CompileFailure) Unwrap() error {
	return e.Err
}

// MissingModule reports whether the compile failed on a module reference.
func (e *CompileFailure) MissingModule() bool {
	return e.Root != "" || e.Path != ""
}
