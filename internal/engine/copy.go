package engine

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"

	"github.com/perchfs/perch/internal/shared/paths"
)

// CopyOptions tunes a tree copy.
type CopyOptions struct {
	// Ignore holds doublestar patterns matched against each entry's
	// source-relative path. Matching entries are skipped entirely and
	// produce no outcome.
	Ignore []string
}

// CopyTree copies source (file or directory) into destDir, preserving the
// relative subtree structure. It returns one Outcome per descendant copied
// or attempted, including one per directory created. A failed child never
// aborts its siblings.
//
// Destination writability is checked once before anything is touched; an
// unwritable destDir fails the whole call without mutating the filesystem.
func (e *Engine) CopyTree(ctx context.Context, source, destDir string) ([]Outcome, error) {
	return e.CopyTreeWith(ctx, source, destDir, CopyOptions{})
}

// CopyTreeWith is CopyTree with options.
func (e *Engine) CopyTreeWith(ctx context.Context, source, destDir string, opts CopyOptions) ([]Outcome, error) {
	if err := paths.Validate(source); err != nil {
		return nil, &PathError{Op: "copy", Path: source, Err: ErrInvalidPath}
	}
	if err := paths.Validate(destDir); err != nil {
		return nil, &PathError{Op: "copy", Path: destDir, Err: ErrInvalidPath}
	}
	// Copying a directory into itself or one of its descendants would
	// enumerate the copies it just created and recurse without bound.
	if destDir == source || paths.IsWithin(source, destDir) {
		return nil, &PathError{Op: "copy", Path: destDir, Err: ErrInvalidPath}
	}
	if err := e.checkWritable(destDir); err != nil {
		return nil, pathErr("copy", destDir, err)
	}

	col := newCollector(e.planTree(source))
	e.copyEntry(ctx, source, destDir, source, opts, col)

	e.log.Debug("tree copy finished",
		zap.String("source", source),
		zap.String("dest", destDir),
		zap.Int("outcomes", len(col.outcomes)))
	return col.outcomes, nil
}

// copyEntry copies one entry and, for directories, fans out over its
// children once the destination subdirectory exists. Children are
// independent of each other and run concurrently when a slot is free,
// inline otherwise, so recursion can never exhaust the semaphore.
func (e *Engine) copyEntry(ctx context.Context, src, destDir, root string, opts CopyOptions, col *collector) {
	if e.ignored(src, root, opts) {
		return
	}

	kind, _, err := e.statEntry(src)
	if err != nil {
		col.add(Outcome{Path: src, Err: pathErr("copy", src, err)})
		return
	}

	switch kind {
	case KindOther:
		// Never a best-effort copy of symlinks, sockets or devices.
		col.add(Outcome{Path: src, Err: &PathError{Op: "copy", Path: src, Err: ErrUnsupported}})

	case KindFile:
		dst := paths.JoinUnder(destDir, src)
		n, err := e.copyFile(src, dst)
		if err != nil {
			col.add(Outcome{Path: src, Err: pathErr("copy", src, err)})
			return
		}
		if e.metrics != nil {
			e.metrics.BytesCopied.Add(float64(n))
		}
		col.add(Outcome{Path: src})

	case KindDirectory:
		sub := paths.JoinUnder(destDir, src)
		if err := e.EnsureDirectory(ctx, sub); err != nil {
			col.add(Outcome{Path: sub, Err: err})
			return
		}

		children, err := e.readChildren(src)
		if err != nil {
			col.add(Outcome{Path: src, Err: pathErr("copy", src, err)})
			return
		}
		col.add(Outcome{Path: src})

		var wg sync.WaitGroup
		for _, child := range children {
			childSrc := filepath.Join(src, child.Name())
			if e.sem.TryAcquire(1) {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer e.sem.Release(1)
					e.copyEntry(ctx, childSrc, sub, root, opts, col)
				}()
			} else {
				e.copyEntry(ctx, childSrc, sub, root, opts, col)
			}
		}
		wg.Wait()
	}
}

func (e *Engine) ignored(src, root string, opts CopyOptions) bool {
	if len(opts.Ignore) == 0 || src == root {
		return false
	}
	rel, err := filepath.Rel(root, src)
	if err != nil {
		return false
	}
	for _, pattern := range opts.Ignore {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			e.log.Debug("invalid ignore pattern", zap.String("pattern", pattern), zap.Error(err))
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// planTree pre-counts the entries under source so the outcome buffer can be
// sized up front. Best effort: enumeration errors surface later as copy
// outcomes, not here.
func (e *Engine) planTree(source string) int {
	count := 0
	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, source, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		count++
		return nil
	})
	if err != nil || count == 0 {
		return 1
	}
	return count
}

// collector accumulates outcomes from concurrently copied subtrees.
type collector struct {
	mu       sync.Mutex
	outcomes []Outcome
}

func newCollector(capacity int) *collector {
	return &collector{outcomes: make([]Outcome, 0, capacity)}
}

func (c *collector) add(o Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outcomes = append(c.outcomes, o)
}
