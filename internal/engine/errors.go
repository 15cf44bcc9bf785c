package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

var (
	// ErrNotFound indicates the path does not exist.
	ErrNotFound = errors.New("path not found")
	// ErrAlreadyExists indicates the destination already exists.
	ErrAlreadyExists = errors.New("path already exists")
	// ErrPermissionDenied indicates the OS refused access.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotADirectory indicates a directory was required but the path is not one.
	ErrNotADirectory = errors.New("path exists and is not a directory")
	// ErrUnsupported indicates an entry kind the engine cannot process
	// (symlinks, sockets, devices).
	ErrUnsupported = errors.New("unsupported entry type")
	// ErrInvalidPath indicates an empty or relative path where an absolute
	// one is required.
	ErrInvalidPath = errors.New("invalid path")
	// ErrNotWritable indicates a destination directory failed its access probe.
	ErrNotWritable = errors.New("destination is not writable")
)

// PathError couples a classified error with the offending path.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// pathErr builds a PathError with the underlying OS error classified into
// the engine taxonomy.
func pathErr(op, path string, err error) *PathError {
	var pe *PathError
	if errors.As(err, &pe) {
		return pe
	}
	return &PathError{Op: op, Path: path, Err: classify(err)}
}

// classify maps OS-level errors into the engine taxonomy. Unclassified
// errors pass through unchanged so their OS code stays visible.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case isTaxonomy(err):
		return err
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrExist):
		return ErrAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	case errors.Is(err, syscall.ENOTDIR):
		return ErrNotADirectory
	default:
		return err
	}
}

func isTaxonomy(err error) bool {
	for _, sentinel := range []error{
		ErrNotFound, ErrAlreadyExists, ErrPermissionDenied,
		ErrNotADirectory, ErrUnsupported, ErrInvalidPath, ErrNotWritable,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
