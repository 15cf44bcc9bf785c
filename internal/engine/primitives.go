package engine

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// Path primitives. Each performs exactly one syscall-equivalent and
// classifies its error; none recurses or retries.

// statEntry returns the kind and info of path without dereferencing
// symlinks.
func (e *Engine) statEntry(path string) (EntryKind, fs.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return KindOther, nil, classify(err)
	}
	return kindOf(info), info, nil
}

func kindOf(info fs.FileInfo) EntryKind {
	mode := info.Mode()
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDirectory
	default:
		return KindOther
	}
}

// mkdirOne creates a single directory level; parents must already exist.
func (e *Engine) mkdirOne(path string) error {
	return classify(os.Mkdir(path, 0o755))
}

// renameOne renames a single path.
func (e *Engine) renameOne(from, to string) error {
	err := os.Rename(from, to)
	if err != nil {
		var linkErr *os.LinkError
		if errors.As(err, &linkErr) {
			return classify(linkErr.Err)
		}
		return classify(err)
	}
	return nil
}

// removeOne removes a single file or empty directory.
func (e *Engine) removeOne(path string) error {
	return classify(os.Remove(path))
}

// copyFile copies the bytes of src into dst, overwriting any existing
// destination, and returns the number of bytes written. Matching the
// browser's replace-on-copy policy, the destination is truncated rather
// than required to be absent.
func (e *Engine) copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, classify(err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, classify(err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, classify(err)
	}

	buf := make([]byte, e.cfg.CopyBufferSize)
	n, err := io.CopyBuffer(out, in, buf)
	if err != nil {
		out.Close()
		return n, classify(err)
	}
	if err := out.Close(); err != nil {
		return n, classify(err)
	}
	return n, nil
}

// checkWritable verifies that dir exists, is a directory, and is writable
// by the current process. Inconclusive probes fail closed: a batch should
// be refused up front rather than fail mid-mutation.
func (e *Engine) checkWritable(dir string) error {
	kind, _, err := e.statEntry(dir)
	if err != nil {
		return err
	}
	if kind != KindDirectory {
		return ErrNotADirectory
	}
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return ErrNotWritable
	}
	return nil
}

// readChildren enumerates the direct children of dir, one level only.
func (e *Engine) readChildren(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, classify(err)
	}
	return entries, nil
}
