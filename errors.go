package jsondiff

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned when a loader cannot decode its input.
	ErrParse = errors.New("jsondiff: cannot parse input")

	// ErrPatch is returned when a fragment does not fit the document it is applied to.
	ErrPatch = errors.New("jsondiff: patch does not apply")

	// ErrNotSupported is returned when a syntax has no patch or unpatch operation.
	ErrNotSupported = errors.New("jsondiff: operation not supported by syntax")

	// ErrUnknownSyntax is returned when looking up a syntax name that isn't registered.
	ErrUnknownSyntax = errors.New("jsondiff: unknown syntax")

	// ErrUnsupportedSource is returned when loading is enabled but the input
	// is neither a string, a []byte nor an io.Reader.
	ErrUnsupportedSource = errors.New("jsondiff: unsupported load source")
)

// PatchError describes where and why a fragment failed to apply.
type PatchError struct {
	Path   string
	Reason string
}

func (e *PatchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrPatch, e.Reason)
	}
	return fmt.Sprintf("%s: at %s: %s", ErrPatch, e.Path, e.Reason)
}

// Is makes errors.Is(err, ErrPatch) hold for every PatchError.
func (e *PatchError) Is(target error) bool {
	return target == ErrPatch
}

func patchErrorf(path string, format string, args ...interface{}) error {
	return &PatchError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
