package engine

import (
	"context"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/perchfs/perch/internal/shared/paths"
)

// RemoveTree deletes path and, for directories, every descendant, returning
// one Outcome per entry removed or attempted. Children are removed before
// their parent; a failed child leaves the parent in place and recorded as
// its own failure. Unlike copy, removal is kind-agnostic: symlinks and
// other special entries are unlinked, never followed.
func (e *Engine) RemoveTree(ctx context.Context, path string) ([]Outcome, error) {
	if err := paths.Validate(path); err != nil {
		return nil, &PathError{Op: "remove", Path: path, Err: ErrInvalidPath}
	}

	col := newCollector(1)
	e.removeEntry(ctx, path, col)

	e.log.Debug("tree removal finished",
		zap.String("path", path),
		zap.Int("outcomes", len(col.outcomes)))
	return col.outcomes, nil
}

func (e *Engine) removeEntry(ctx context.Context, path string, col *collector) {
	kind, _, err := e.statEntry(path)
	if err != nil {
		col.add(Outcome{Path: path, Err: pathErr("remove", path, err)})
		return
	}

	if kind == KindDirectory {
		children, err := e.readChildren(path)
		if err != nil {
			col.add(Outcome{Path: path, Err: pathErr("remove", path, err)})
			return
		}

		var wg sync.WaitGroup
		for _, child := range children {
			childPath := filepath.Join(path, child.Name())
			if e.sem.TryAcquire(1) {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer e.sem.Release(1)
					e.removeEntry(ctx, childPath, col)
				}()
			} else {
				e.removeEntry(ctx, childPath, col)
			}
		}
		wg.Wait()
	}

	if err := e.removeOne(path); err != nil {
		col.add(Outcome{Path: path, Err: pathErr("remove", path, err)})
		return
	}
	col.add(Outcome{Path: path})
}
