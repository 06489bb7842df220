package namoa

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/namoa/heuristic"
	"github.com/katalvlaran/namoa/network"
)

// Sentinel errors.
var (
	// ErrNilNetwork indicates a constructor called with a nil network.
	ErrNilNetwork = errors.New("namoa: network is nil")

	// ErrNilEngine indicates a constructor called with a nil heuristic engine.
	ErrNilEngine = errors.New("namoa: heuristic engine is nil")

	// ErrNodeOutOfRange indicates a source or target outside the network.
	ErrNodeOutOfRange = errors.New("namoa: node index out of range")

	// ErrNotInitialized indicates Run without a matching Init.
	ErrNotInitialized = errors.New("namoa: search not initialized for these endpoints")

	// ErrUnknownVariant indicates a name not accepted by New.
	ErrUnknownVariant = errors.New("namoa: unknown search variant")

	// ErrInconsistent is heuristic.ErrInconsistent, surfaced by Init when
	// WithConsistencyCheck is set.
	ErrInconsistent = heuristic.ErrInconsistent
)

// Searcher is a Pareto search over one network.
type Searcher interface {
	// Init clears all label state and computes heuristics towards target.
	Init(source, target int) error

	// Run computes the Pareto set from source to target. The endpoints must
	// match the last Init (only the target for source-independent engines).
	Run(source, target int) error

	// GeneratedLabels is the number of queue pops of the last Run.
	GeneratedLabels() int

	// Solutions returns the target's settled labels of the last Run.
	Solutions() []*network.Label
}

// Options configures a searcher.
type Options struct {
	// ConsistencyCheck verifies the heuristic after every Init.
	ConsistencyCheck bool

	// ForwardPruning enables recursive erasure along out-arcs (SingleList only).
	ForwardPruning bool

	// Logger receives Debug records per Init and Run.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns options with every check off and a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler)}
}

// WithConsistencyCheck enables heuristic.CheckConsistent after Init.
// Source-specific engines (bounded ideal point) are not checked.
func WithConsistencyCheck() Option {
	return func(o *Options) { o.ConsistencyCheck = true }
}

// WithForwardPruning enables forward erasure of dominated labels (SingleList).
func WithForwardPruning() Option {
	return func(o *Options) { o.ForwardPruning = true }
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// sourceSpecific is implemented by engines whose bounds depend on the source.
type sourceSpecific interface {
	SourceSpecific() bool
}
