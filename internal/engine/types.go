package engine

import (
	"context"
	"sync"
)

// EntryKind classifies a filesystem entry.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
	// KindOther covers symlinks (never dereferenced), sockets and devices.
	// It is an error condition for copy, never a silent skip.
	KindOther
)

// String returns the string representation of the kind.
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Outcome is the per-path result of one operation. Err is nil on success;
// otherwise it carries the offending path and classified reason.
type Outcome struct {
	Path string
	Err  error
}

// Success reports whether the operation succeeded.
func (o Outcome) Success() bool {
	return o.Err == nil
}

// BatchResult aggregates outcomes over a batch. Failures are in completion
// order, not input order. Successes + len(Failures) equals the number of
// outcomes the batch produced.
type BatchResult struct {
	Successes int
	Failures  []Outcome
}

// Total returns the number of outcomes in the result.
func (r BatchResult) Total() int {
	return r.Successes + len(r.Failures)
}

// RelocationEvent describes a completed or about-to-occur rename.
type RelocationEvent struct {
	OldPath string
	NewPath string
}

// Buffer is an open editor buffer bound to a filesystem path.
type Buffer struct {
	ID   uint64
	Path string
}

// BufferRegistry is the editor-owned registry of open buffers. The engine
// reads and rebinds entries after a successful relocation but never tracks
// buffer state itself.
type BufferRegistry interface {
	ListOpenBuffers() []Buffer
	RenameBuffer(id uint64, newPath string) error
}

// RelocationListener is an external client observing relocations. Listeners
// implement one or both of the capability interfaces below; the engine
// tolerates any subset.
type RelocationListener interface {
	Name() string
}

// PreRelocator is notified before the rename proceeds and may apply
// preparatory side effects (e.g. language tooling rewriting references).
// The call is bounded by the engine's listener timeout through ctx; an error
// or missed deadline never cancels the rename.
type PreRelocator interface {
	RelocationListener
	OnWillRelocate(ctx context.Context, event RelocationEvent) error
}

// PostRelocator is notified after a successful rename, fire-and-forget.
type PostRelocator interface {
	RelocationListener
	OnDidRelocate(event RelocationEvent)
}

// ListenerSet holds registered relocation listeners in registration order.
type ListenerSet struct {
	mu        sync.RWMutex
	listeners []RelocationListener
}

// Register appends a listener. Invocation order follows registration order.
func (s *ListenerSet) Register(l RelocationListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Len returns the number of registered listeners.
func (s *ListenerSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

func (s *ListenerSet) snapshot() []RelocationListener {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RelocationListener, len(s.listeners))
	copy(out, s.listeners)
	return out
}
