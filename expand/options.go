// SPDX-License-Identifier: MIT
// File: options.go
// Role: functional options, boundary kinds and their deterministic defaults.
//
// Defaults:
//   • Ctx        = context.Background()
//   • Origin     = 0
//   • Boundaries = nil (every direction uses Uniform)
//   • Uniform    = BoundaryPeriodic
//   • MaxSites   = DefaultMaxSites
//   • Logger     = discard
//   • OnAdmit    = no-op

package expand

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/latticekit/lattice"
)

// DefaultMaxSites bounds every expansion unless WithMaxSites overrides it.
// It keeps an unbounded shape predicate from consuming all memory.
const DefaultMaxSites = 1 << 20

// Boundary selects how a Bravais direction behaves at the block edge.
type Boundary int

const (
	// BoundaryPeriodic folds bonds that leave the block back into it and keeps the
	// crossing count as a residual wrap.
	BoundaryPeriodic Boundary = iota
	// BoundaryOpen drops bonds that leave the block.
	BoundaryOpen
)

// String returns "periodic" or "open".
func (b Boundary) String() string {
	if b == BoundaryOpen {
		return "open"
	}

	return "periodic"
}

// ParseBoundary parses "periodic"/"p" or "open"/"o" (case-insensitive).
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "periodic", "p":
		return BoundaryPeriodic, nil
	case "open", "o":
		return BoundaryOpen, nil
	}

	return BoundaryPeriodic, fmt.Errorf("boundary %q: %w", s, ErrOptionViolation)
}

// Option configures an expansion.
type Option func(*Options)

// Options holds the resolved expansion parameters.
type Options struct {
	// Ctx is checked once per traversal step (or per translated cell).
	Ctx context.Context

	// Origin is the unitcell site index the traversal policies start from.
	Origin int

	// Boundaries sets one Boundary per Bravais direction for Periodic.
	// Empty means every direction uses Uniform.
	Boundaries []Boundary

	// Uniform is the boundary used when Boundaries is empty.
	Uniform Boundary

	// MaxSites caps the number of generated sites.
	MaxSites int

	// Logger receives Debug-level progress records.
	Logger *slog.Logger

	// OnAdmit is called for every generated site with its lattice index and
	// bond distance from the origin (0 for every site of a periodic block).
	OnAdmit func(site, depth int)

	// err records the first invalid option.
	err error
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Origin:   0,
		Uniform:  BoundaryPeriodic,
		MaxSites: DefaultMaxSites,
		Logger:   slog.New(slog.DiscardHandler),
		OnAdmit:  func(int, int) {},
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// WithOrigin sets the unitcell site index the traversal starts from.
// Out-of-range values surface as lattice.ErrInvalidOrigin.
func WithOrigin(i int) Option {
	return func(o *Options) { o.Origin = i }
}

// WithBoundaries sets the boundary of every Bravais direction, in order.
func WithBoundaries(b ...Boundary) Option {
	return func(o *Options) {
		for _, x := range b {
			if x != BoundaryPeriodic && x != BoundaryOpen {
				o.err = fmt.Errorf("%w: unknown boundary %d", ErrOptionViolation, int(x))
				return
			}
		}
		o.Boundaries = append([]Boundary(nil), b...)
	}
}

// WithUniformBoundary applies b to every direction and clears per-direction choices.
func WithUniformBoundary(b Boundary) Option {
	return func(o *Options) {
		if b != BoundaryPeriodic && b != BoundaryOpen {
			o.err = fmt.Errorf("%w: unknown boundary %d", ErrOptionViolation, int(b))
			return
		}
		o.Boundaries = nil
		o.Uniform = b
	}
}

// WithOpenBoundaries makes every direction BoundaryOpen.
func WithOpenBoundaries() Option {
	return WithUniformBoundary(BoundaryOpen)
}

// WithMaxSites caps the number of generated sites.
//
//	n ≥ 1: cap at n
//	n < 1: invalid option → ErrOptionViolation
func WithMaxSites(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxSites must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSites = n
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger for Debug-level progress records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAdmit registers a callback run for every generated site.
func WithOnAdmit(fn func(site, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAdmit = fn
		}
	}
}

// boundariesFor returns one Boundary per direction for a Bravais dimension n.
func (o Options) boundariesFor(n int) ([]Boundary, error) {
	if len(o.Boundaries) == 0 {
		out := make([]Boundary, n)
		for i := range out {
			out[i] = o.Uniform
		}
		return out, nil
	}
	if len(o.Boundaries) != n {
		return nil, fmt.Errorf("%d boundaries for %d directions: %w", len(o.Boundaries), n, lattice.ErrDimensionMismatch)
	}

	return o.Boundaries, nil
}
