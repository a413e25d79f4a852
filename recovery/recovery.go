// Package recovery wraps interactive node operations with a bounded
// retry protocol for the two recoverable failure kinds of a mutating UI
// tree: stale element references and addressing-context changes. Any
// other failure is re-raised unchanged.
package recovery

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/oleksiybondar/eqlgo/node"
)

// Recoverable failure kinds. Driver adapters wrap their backend errors
// with these sentinels; anything else passes through untouched.
var (
	// ErrStaleReference marks a previously resolved node whose backing
	// element no longer exists or matches.
	ErrStaleReference = errors.New("stale element reference")

	// ErrContextChanged marks an addressing scope change (frame, window)
	// that invalidated prior relative resolution.
	ErrContextChanged = errors.New("addressing context changed")

	// ErrNotOperable is returned before attempting when the node reports
	// it is unfit for interaction.
	ErrNotOperable = errors.New("node is not operable")

	// ErrDepthExceeded is returned when context recovery recurses past
	// the configured maximum depth.
	ErrDepthExceeded = errors.New("context recovery depth exceeded")
)

// State identifies a phase of the automaton, for observability.
type State int

const (
	StateAttempting State = iota
	StateRecovering
	StateRetrying
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAttempting:
		return "attempting"
	case StateRecovering:
		return "recovering"
	case StateRetrying:
		return "retrying"
	default:
		return "failed"
	}
}

// DefaultMaxDepth bounds context-boundary recursion. The source protocol
// has no bound; see WithMaxDepth.
const DefaultMaxDepth = 3

// Runner executes operations under the recovery protocol.
type Runner struct {
	ctx      node.Context
	maxDepth int
	log      zerolog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithContext supplies the addressing context used to re-anchor after a
// context-boundary change. Without one, context changes are not
// recoverable and propagate.
func WithContext(ctx node.Context) Option {
	return func(r *Runner) { r.ctx = ctx }
}

// WithMaxDepth bounds how many times a context-boundary failure may
// re-enter the full operation.
func WithMaxDepth(depth int) Option {
	return func(r *Runner) { r.maxDepth = depth }
}

// WithLogger attaches a logger for state transitions.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// NewRunner builds a Runner. By default it has no addressing context,
// DefaultMaxDepth, and a no-op logger.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{maxDepth: DefaultMaxDepth, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do runs op on n under the recovery protocol and returns its result.
//
// A stale-reference failure refreshes the node's parent collection if it
// has one, re-resolves the node, and retries op exactly once with no
// further stale handling; a second stale failure propagates. A
// context-changed failure re-anchors the addressing context and
// re-enters the whole protocol, stale handling included, up to the
// runner's depth bound.
func Do[T any](r *Runner, n node.Resolvable, op func() (T, error)) (T, error) {
	return do(r, n, op, 0)
}

// Run is Do for operations without a result value.
func Run(r *Runner, n node.Resolvable, op func() error) error {
	_, err := do(r, n, func() (struct{}, error) { return struct{}{}, op() }, 0)
	return err
}

func do[T any](r *Runner, n node.Resolvable, op func() (T, error), depth int) (T, error) {
	var zero T

	r.transition(StateAttempting, depth, nil)
	if !n.Operable() {
		r.transition(StateFailed, depth, ErrNotOperable)
		return zero, ErrNotOperable
	}

	v, err := op()
	if err == nil {
		return v, nil
	}

	switch {
	case errors.Is(err, ErrStaleReference):
		r.transition(StateRecovering, depth, err)
		if parent, ok := n.Parent(); ok {
			if rerr := parent.ForceRefresh(); rerr != nil {
				r.transition(StateFailed, depth, rerr)
				return zero, fmt.Errorf("refreshing parent collection: %w", rerr)
			}
		}
		if rerr := n.ReResolve(); rerr != nil {
			r.transition(StateFailed, depth, rerr)
			return zero, fmt.Errorf("re-resolving node: %w", rerr)
		}
		r.transition(StateRetrying, depth, nil)
		v, err = op()
		if err != nil {
			r.transition(StateFailed, depth, err)
			return zero, err
		}
		return v, nil

	case errors.Is(err, ErrContextChanged):
		if r.ctx == nil {
			r.transition(StateFailed, depth, err)
			return zero, err
		}
		if depth >= r.maxDepth {
			r.transition(StateFailed, depth, ErrDepthExceeded)
			return zero, fmt.Errorf("%w after %d attempts: %w", ErrDepthExceeded, depth, err)
		}
		r.transition(StateRecovering, depth, err)
		if cerr := r.ctx.ResolveCurrent(); cerr != nil {
			r.transition(StateFailed, depth, cerr)
			return zero, fmt.Errorf("resolving addressing context: %w", cerr)
		}
		r.transition(StateRetrying, depth, nil)
		return do(r, n, op, depth+1)

	default:
		r.transition(StateFailed, depth, err)
		return zero, err
	}
}

func (r *Runner) transition(s State, depth int, err error) {
	ev := r.log.Debug().Str("state", s.String()).Int("depth", depth)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("recovery state")
}
