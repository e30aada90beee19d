// Package chain provides tunable options and error definitions for
// connectivity traversal over a domino hand.
package chain

import (
	"context"
	"errors"
)

// Sentinel errors for chain evaluation.
var (
	// ErrStartVertexNotFound is returned when WithStart names a pip value
	// that does not appear in the hand.
	ErrStartVertexNotFound = errors.New("chain: start pip not found")
)

// Option configures traversal behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
	Ctx context.Context

	// OnVisit is called once per visited pip, in visit order. If it returns
	// an error, the traversal aborts and propagates that error.
	OnVisit func(pip int) error

	// Start, when hasStart is set, overrides the default first-seen start
	// vertex. It must be a pip present in the hand.
	Start    int
	hasStart bool
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnVisit hook
//   - first-seen start vertex.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
// A nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on each visited pip; returning an
// error from the callback stops the traversal.
func WithOnVisit(fn func(pip int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithStart overrides the traversal start vertex. The pip must occur in the
// hand, otherwise the traversal fails with ErrStartVertexNotFound.
func WithStart(pip int) Option {
	return func(o *Options) {
		o.Start = pip
		o.hasStart = true
	}
}
