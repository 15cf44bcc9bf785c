package engine

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/perchfs/perch/internal/shared/paths"
)

// CopyMany copies every source into destDir concurrently, flattening each
// tree's per-descendant outcomes into one BatchResult.
func (e *Engine) CopyMany(ctx context.Context, sources []string, destDir string) BatchResult {
	return e.runBatch(ctx, "copy", sources, func(ctx context.Context, source string) []Outcome {
		outcomes, err := e.CopyTree(ctx, source, destDir)
		if err != nil {
			return []Outcome{{Path: source, Err: err}}
		}
		return outcomes
	})
}

// MoveMany relocates every source into destDir concurrently, one outcome
// per source. Each destination is destDir joined with the source's base
// name. Duplicate sources are not deduplicated; collisions surface as
// per-item failures.
func (e *Engine) MoveMany(ctx context.Context, sources []string, destDir string, notifyExternal bool) BatchResult {
	return e.runBatch(ctx, "move", sources, func(ctx context.Context, source string) []Outcome {
		to := paths.JoinUnder(destDir, source)
		if err := e.Relocate(ctx, source, to, notifyExternal); err != nil {
			return []Outcome{{Path: source, Err: err}}
		}
		return []Outcome{{Path: source}}
	})
}

// RemoveMany deletes every path concurrently, flattening per-descendant
// outcomes into one BatchResult.
func (e *Engine) RemoveMany(ctx context.Context, targets []string) BatchResult {
	return e.runBatch(ctx, "remove", targets, func(ctx context.Context, target string) []Outcome {
		outcomes, err := e.RemoveTree(ctx, target)
		if err != nil {
			return []Outcome{{Path: target, Err: err}}
		}
		return outcomes
	})
}

// runBatch launches run once per path under the in-flight bound, collects
// outcomes in completion order, and returns the aggregate exactly once,
// after every launched task has finished. Nothing is delivered early and a
// batch cannot be aborted once issued.
func (e *Engine) runBatch(ctx context.Context, op string, inputs []string, run func(context.Context, string) []Outcome) BatchResult {
	batchID := uuid.NewString()
	e.log.Info("batch started",
		zap.String("batch_id", batchID),
		zap.String("op", op),
		zap.Int("paths", len(inputs)))

	var timer interface{ Stop() }
	if e.metrics != nil {
		timer = e.metrics.BatchTimer(op)
	}

	results := make(chan []Outcome)
	var wg sync.WaitGroup
	for _, input := range inputs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// The bound is on executing work, not on launched goroutines.
			// Background context: a batch runs to completion once issued.
			_ = e.sem.Acquire(context.Background(), 1)
			defer e.sem.Release(1)
			if e.metrics != nil {
				e.metrics.TasksInFlight.Inc()
				defer e.metrics.TasksInFlight.Dec()
			}
			results <- run(ctx, input)
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var result BatchResult
	for outcomes := range results {
		for _, o := range outcomes {
			if o.Success() {
				result.Successes++
			} else {
				result.Failures = append(result.Failures, o)
				e.log.Debug("item failed",
					zap.String("batch_id", batchID),
					zap.String("path", o.Path),
					zap.Error(o.Err))
			}
			e.recordOutcome(op, o)
		}
	}

	if timer != nil {
		timer.Stop()
	}
	e.log.Info("batch finished",
		zap.String("batch_id", batchID),
		zap.String("op", op),
		zap.Int("successes", result.Successes),
		zap.Int("failures", len(result.Failures)))
	return result
}
