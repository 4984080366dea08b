// SPDX-License-Identifier: MIT

// Package hafnian: functional configuration for the entry points.
//
// Design goals:
//   - Deterministic results: no option changes the value computed, only how
//     fast it is computed (the subset partition depends on n alone).
//   - No global state: options are resolved per call.
//   - Panic only on nonsensical values (programmer error).
package hafnian

import (
	"log/slog"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers.
	DefaultWorkers = 0

	// MaxBlocks is the largest supported n (matrix dimension 2n): subset masks
	// are uint64 and the sweep index must not overflow.
	MaxBlocks = 62
)

// Subset partition. Chunks hold 2^chunkBits masks until the chunk count
// reaches 2^maxChunkBits; beyond that chunks grow instead.
const (
	chunkBits    = 10
	maxChunkBits = 16
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "hafnian: WithWorkers: workers must be >= 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int          // 0 ⇒ GOMAXPROCS
	logger  *slog.Logger // nil ⇒ silent
}

// WithWorkers bounds the number of goroutines sweeping subset chunks.
// Implementation:
//   - Stage 1: validate k ≥ 0 (0 restores the default).
//   - Stage 2: return a setter.
//
// Behavior highlights:
//   - The result is bit-identical for every k: partial sums are combined in
//     ascending chunk order regardless of which worker produced them.
//
// Errors:
//   - Panics with a stable message when k < 0.
//
// AI-Hints:
//   - WithWorkers(1) runs the sweep on the calling goroutine.
func WithWorkers(k int) Option {
	if k < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = k }
}

// WithLogger injects a structured logger for debug-level dispatch and sweep
// records. A nil logger keeps the call silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// resolveWorkers returns the worker count for a sweep of `chunks` chunks:
// the configured value (or GOMAXPROCS), capped by chunks, at least 1.
func (o Options) resolveWorkers(chunks int) int {
	w := o.workers
	if w == DefaultWorkers {
		w = runtime.GOMAXPROCS(0)
	}
	if w > chunks {
		w = chunks
	}
	if w < 1 {
		w = 1
	}

	return w
}
