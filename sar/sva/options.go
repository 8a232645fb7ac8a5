package sva

import "runtime"

// Mode selects which filtering path a run uses.
type Mode int

const (
	// ModeFullScene filters the I and Q planes with a shared weight pair
	// computed from the complex samples.
	ModeFullScene Mode = iota

	// ModeAmplitudeBased filters the detected amplitude only and rebuilds
	// the complex output with the original, unfiltered phase.
	ModeAmplitudeBased
)

// String returns the mode name used on CLI flags and in config files.
func (m Mode) String() string {
	switch m {
	case ModeFullScene:
		return "full-scene"
	case ModeAmplitudeBased:
		return "amplitude"
	default:
		return "unknown"
	}
}

func (m Mode) valid() bool {
	return m == ModeFullScene || m == ModeAmplitudeBased
}

// Option configures a Filter.
type Option func(*Filter)

// WithMode sets the filtering mode.
func WithMode(m Mode) Option {
	return func(f *Filter) {
		f.mode = m
	}
}

// WithBoundary sets the edge handling policy.
func WithBoundary(b Boundary) Option {
	return func(f *Filter) {
		f.boundary = b
	}
}

// WithWorkers sets the number of row bands processed concurrently within
// one pass. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(f *Filter) {
		if n >= 1 {
			f.workers = n
		}
	}
}

// New returns a Filter with the given options applied. The configuration
// is fixed for the lifetime of the filter; passes never mutate it.
func New(opts ...Option) *Filter {
	f := &Filter{
		mode:     ModeFullScene,
		boundary: BoundaryMirror,
		workers:  runtime.NumCPU(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	return f
}
