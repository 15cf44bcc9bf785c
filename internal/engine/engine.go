package engine

import (
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/perchfs/perch/internal/infrastructure/config"
	"github.com/perchfs/perch/internal/infrastructure/logging"
	"github.com/perchfs/perch/internal/infrastructure/monitoring"
)

// Engine coordinates filesystem mutations for the browser. It is stateless
// between calls; all shared mutable state (the filesystem, the buffer
// registry, the listener set) is external.
type Engine struct {
	cfg       config.EngineConfig
	log       *logging.Logger
	metrics   *monitoring.Metrics
	buffers   BufferRegistry
	listeners *ListenerSet
	sem       *semaphore.Weighted
}

// New creates an engine with the given tuning. The logger is required;
// collaborators are attached via the With* methods.
func New(cfg config.EngineConfig, log *logging.Logger) *Engine {
	if cfg.MaxInFlight < 1 {
		cfg.MaxInFlight = 1
	}
	if cfg.CopyBufferSize < 1 {
		cfg.CopyBufferSize = 32 * 1024
	}
	if cfg.ListenerTimeout <= 0 {
		cfg.ListenerTimeout = 2 * time.Second
	}
	return &Engine{
		cfg:       cfg,
		log:       log,
		listeners: &ListenerSet{},
		sem:       semaphore.NewWeighted(int64(cfg.MaxInFlight)),
	}
}

// WithMetrics adds metrics tracking to the engine.
func (e *Engine) WithMetrics(m *monitoring.Metrics) *Engine {
	e.metrics = m
	return e
}

// WithBuffers attaches the editor's open-buffer registry. Without one,
// relocations skip buffer rebinding.
func (e *Engine) WithBuffers(r BufferRegistry) *Engine {
	e.buffers = r
	return e
}

// Listeners returns the relocation listener set for registration.
func (e *Engine) Listeners() *ListenerSet {
	return e.listeners
}

func (e *Engine) recordOutcome(op string, o Outcome) {
	if e.metrics != nil {
		e.metrics.RecordOperation(op, o.Success())
	}
}
