// SPDX-License-Identifier: MIT

package hafnian

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/hafnian/matrix/ops"
)

// kernel is the static-dispatch target chosen once per call.
type kernel interface {
	field() Field
	blocks() int
	evaluate(o Options) Result
}

var (
	_ kernel = realKernel{}
	_ kernel = complexKernel{}
)

// runEngine evaluates the engine for n ≥ 3 and records a debug line when a
// logger is configured.
func runEngine[T ops.Scalar, F ops.Field[T]](f F, a []T, n int, fld Field, o Options) T {
	part := partitionFor(n)
	workers := o.resolveWorkers(part.chunks)
	g := &engine[T, F]{field: f, a: a, dim: 2 * n, n: n}

	start := time.Now()
	v := g.run(workers, part)
	if o.logger != nil {
		o.logger.Debug("hafnian sweep",
			slog.String("field", fld.String()),
			slog.Int("n", n),
			slog.Int("chunks", part.chunks),
			slog.Int("workers", workers),
			slog.Duration("elapsed", time.Since(start)),
		)
	}

	return v
}
