// Package engine implements the asynchronous filesystem-mutation engine
// behind the Perch file browser.
//
// This package is organized into specialized modules:
//   - primitives: single-syscall wrappers (stat, mkdir, copy-file, rename, access)
//   - ensure: recursive directory creation
//   - copy: recursive tree copy with per-descendant outcomes
//   - relocate: rename/move with buffer rebinding and listener notification
//   - remove: recursive tree removal with per-descendant outcomes
//   - batch: concurrent fan-out of per-path operations with aggregated results
//
// All operations:
//   - Require absolute, already-resolved paths
//   - Resolve every requested path to exactly one Outcome per batch
//   - Continue on error; one item's failure never aborts its siblings
//   - Never abort a batch mid-flight once issued
//
// The engine holds no persistent state between calls; the filesystem tree is
// the only durable artifact. The open-buffer registry and relocation listeners
// are externally owned collaborators reached through the interfaces in
// types.go.
//
// Example Usage:
//
//	eng := engine.New(cfg.Engine, logger).WithBuffers(registry)
//	result := eng.MoveMany(ctx, sources, destDir, true)
package engine
