// SPDX-License-Identifier: MIT

// Package newton: functional configuration of the solvers.
//
// Design goals:
//   - No global state: every call resolves its own Options.
//   - Silent by default: nothing is logged unless WithLogger is given.
//   - Safe by construction: constructors panic only on nonsensical values.

package newton

import (
	"context"
	"log/slog"
)

// DefaultLogLevel is the level of trace records when WithLogLevel is not given.
const DefaultLogLevel = slog.LevelDebug

const panicNilLogger = "newton: WithLogger: logger must be non-nil"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	logger *slog.Logger // nil ⇒ no tracing
	level  slog.Level   // DefaultLogLevel
}

// WithLogger traces every iteration (iter, x, deviation) and the final outcome to l.
// Panics if l is nil.
//
// Notes:
//   - Values are logged with slog.Any; *big.Rat, *big.Float and decimals render via String.
//   - Records are only built when l is enabled at the configured level.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithLogLevel sets the level of the trace records. Has no effect without WithLogger.
func WithLogLevel(level slog.Level) Option {
	return func(o *Options) { o.level = level }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts []Option) Options {
	o := Options{level: DefaultLogLevel}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// tracing reports whether trace records would be emitted.
func (o *Options) tracing() bool {
	return o.logger != nil && o.logger.Enabled(context.Background(), o.level)
}

// logStep emits one record per Newton step.
func (o *Options) logStep(iter int, x, deviation any) {
	if !o.tracing() {
		return
	}
	o.logger.LogAttrs(context.Background(), o.level, "newton: step",
		slog.Int("iter", iter),
		slog.Any("x", x),
		slog.Any("deviation", deviation),
	)
}

// logOutcome emits the final record of a solve.
func (o *Options) logOutcome(converged bool, iterations int, root any) {
	if !o.tracing() {
		return
	}
	msg := "newton: converged"
	if !converged {
		msg = "newton: no convergence"
	}
	o.logger.LogAttrs(context.Background(), o.level, msg,
		slog.Int("iterations", iterations),
		slog.Any("root", root),
	)
}
