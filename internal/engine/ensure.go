package engine

import (
	"context"
	"errors"

	"github.com/perchfs/perch/internal/shared/paths"
)

// EnsureDirectory creates path and every missing ancestor, idempotently.
// Segments are created root-most first: creating a deep segment before its
// parent exists would fail with NotFound. A segment that already exists as
// a directory is fine; one that exists as anything else aborts the
// remaining segments with NotADirectory.
//
// Cancellation is not observed once creation starts; the call runs to
// completion like every other mutation in this engine.
func (e *Engine) EnsureDirectory(ctx context.Context, path string) error {
	if err := paths.Validate(path); err != nil {
		return &PathError{Op: "ensure", Path: path, Err: ErrInvalidPath}
	}

	for _, segment := range paths.Segments(path) {
		err := e.mkdirOne(segment)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrAlreadyExists) {
			return pathErr("ensure", segment, err)
		}

		kind, _, statErr := e.statEntry(segment)
		if statErr != nil {
			return pathErr("ensure", segment, statErr)
		}
		if kind != KindDirectory {
			return &PathError{Op: "ensure", Path: segment, Err: ErrNotADirectory}
		}
	}
	return nil
}
