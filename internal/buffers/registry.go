// Package buffers provides the in-memory open-buffer registry the browser
// hands to the mutation engine. The engine only consumes the
// engine.BufferRegistry interface; this implementation backs the real
// editor process and the integration tests.
package buffers

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/perchfs/perch/internal/engine"
)

// Registry tracks open buffers by id. Safe for concurrent use.
type Registry struct {
	lastID atomic.Uint64
	byID   *xsync.Map[uint64, string]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: xsync.NewMap[uint64, string](),
	}
}

// Open registers a buffer bound to path and returns its id.
func (r *Registry) Open(path string) uint64 {
	id := r.lastID.Add(1)
	r.byID.Store(id, path)
	return id
}

// Close removes a buffer.
func (r *Registry) Close(id uint64) {
	r.byID.Delete(id)
}

// ListOpenBuffers returns a snapshot of all open buffers, ordered by id.
func (r *Registry) ListOpenBuffers() []engine.Buffer {
	var bufs []engine.Buffer
	r.byID.Range(func(id uint64, path string) bool {
		bufs = append(bufs, engine.Buffer{ID: id, Path: path})
		return true
	})
	sort.Slice(bufs, func(i, j int) bool { return bufs[i].ID < bufs[j].ID })
	return bufs
}

// RenameBuffer rebinds a buffer to newPath.
func (r *Registry) RenameBuffer(id uint64, newPath string) error {
	if _, ok := r.byID.Load(id); !ok {
		return fmt.Errorf("buffer %d is not open", id)
	}
	r.byID.Store(id, newPath)
	return nil
}

// PathOf returns the current binding of a buffer.
func (r *Registry) PathOf(id uint64) (string, bool) {
	return r.byID.Load(id)
}
