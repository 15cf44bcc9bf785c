package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/perchfs/perch/internal/shared/paths"
)

// Relocate renames from to to. In order: pre-relocation listeners are
// queried (bounded, best-effort) when notifyExternal is set, the rename is
// performed, open-buffer bindings under the old path are rewritten, and
// post-relocation listeners are notified fire-and-forget.
//
// Moving a directory emits a single event for the directory root; descendant
// buffers follow through the prefix rewrite, so no per-descendant events are
// needed. Buffer rebinding runs synchronously in the caller's goroutine,
// after the rename is durable, because it mutates shared editor state.
func (e *Engine) Relocate(ctx context.Context, from, to string, notifyExternal bool) error {
	if err := paths.Validate(from); err != nil {
		return &PathError{Op: "relocate", Path: from, Err: ErrInvalidPath}
	}
	if err := paths.Validate(to); err != nil {
		return &PathError{Op: "relocate", Path: to, Err: ErrInvalidPath}
	}

	event := RelocationEvent{OldPath: from, NewPath: to}

	if notifyExternal {
		e.notifyWillRelocate(ctx, event)
	}

	if err := e.renameOne(from, to); err != nil {
		return pathErr("relocate", from, err)
	}

	e.rebindBuffers(event)

	if notifyExternal {
		e.notifyDidRelocate(event)
	}
	return nil
}

// notifyWillRelocate queries listeners in registration order under one
// shared deadline. A slow or failing listener is logged and skipped; the
// rename is the user's intent and proceeds regardless.
func (e *Engine) notifyWillRelocate(ctx context.Context, event RelocationEvent) {
	hookCtx, cancel := context.WithTimeout(ctx, e.cfg.ListenerTimeout)
	defer cancel()

	for _, l := range e.listeners.snapshot() {
		pre, ok := l.(PreRelocator)
		if !ok {
			continue
		}

		done := make(chan error, 1)
		go func() {
			done <- pre.OnWillRelocate(hookCtx, event)
		}()

		select {
		case err := <-done:
			if err != nil {
				e.log.Warn("pre-relocation listener failed",
					zap.String("listener", l.Name()),
					zap.String("from", event.OldPath),
					zap.Error(err))
			}
		case <-hookCtx.Done():
			if e.metrics != nil {
				e.metrics.ListenerTimeouts.Inc()
			}
			e.log.Warn("pre-relocation hook deadline exhausted, proceeding",
				zap.String("listener", l.Name()),
				zap.String("from", event.OldPath))
			return
		}
	}
}

func (e *Engine) notifyDidRelocate(event RelocationEvent) {
	for _, l := range e.listeners.snapshot() {
		post, ok := l.(PostRelocator)
		if !ok {
			continue
		}
		go post.OnDidRelocate(event)
	}
}

// rebindBuffers rewrites every open-buffer binding equal to or nested under
// the old path onto the corresponding new path.
func (e *Engine) rebindBuffers(event RelocationEvent) {
	if e.buffers == nil {
		return
	}
	for _, buf := range e.buffers.ListOpenBuffers() {
		newPath, ok := paths.Rebase(buf.Path, event.OldPath, event.NewPath)
		if !ok {
			continue
		}
		if err := e.buffers.RenameBuffer(buf.ID, newPath); err != nil {
			e.log.Warn("buffer rebind failed",
				zap.Uint64("buffer", buf.ID),
				zap.String("path", buf.Path),
				zap.Error(err))
		}
	}
}
