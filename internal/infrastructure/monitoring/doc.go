/*
Package monitoring provides Prometheus metrics for the mutation engine.

# Overview

Tracks per-operation outcomes, batch latency, copied byte volume, and the
number of filesystem tasks currently in flight. Metrics are optional: an
engine without a collector attached records nothing.

# Usage

	metrics := monitoring.NewMetrics()
	eng := engine.New(cfg.Engine, logger).WithMetrics(metrics)

	timer := metrics.BatchTimer("copy")
	// ... run batch ...
	timer.Stop()

Expose via the standard Prometheus handler:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	http.Handle("/metrics", promhttp.Handler())
*/
package monitoring
