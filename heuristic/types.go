package heuristic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/namoa/network"
)

// Sentinel errors.
var (
	// ErrNilNetwork indicates Init was called with a nil network.
	ErrNilNetwork = errors.New("heuristic: network is nil")

	// ErrNodeOutOfRange indicates a source or target index outside the network.
	ErrNodeOutOfRange = errors.New("heuristic: node index out of range")

	// ErrUnsupportedCriteria indicates an engine that cannot handle the
	// network's number of criteria.
	ErrUnsupportedCriteria = errors.New("heuristic: unsupported number of criteria")

	// ErrInconsistent indicates an arc (u,v) with h(u) > cost + h(v) in some criterion.
	ErrInconsistent = errors.New("heuristic: inconsistent heuristic")

	// ErrUnknownEngine indicates a name not accepted by ByName.
	ErrUnknownEngine = errors.New("heuristic: unknown engine")
)

// Engine populates Node.Heuristic for every node of a network.
type Engine interface {
	// Name identifies the engine in logs and reports.
	Name() string

	// Init computes lower bounds towards target. source is used by engines
	// whose bounds depend on the query endpoints.
	Init(net *network.Network, source, target int) error
}

// Engine names accepted by ByName.
const (
	NameBlind   = "blind"
	NameIdeal   = "ideal"
	NameBounded = "bounded"
)

// Names lists every engine name in a stable order.
func Names() []string { return []string{NameBlind, NameIdeal, NameBounded} }

// ByName returns a fresh engine for name (case-insensitive).
func ByName(name string) (Engine, error) {
	switch strings.ToLower(name) {
	case NameBlind:
		return NewBlind(), nil
	case NameIdeal:
		return NewIdeal(), nil
	case NameBounded:
		return NewBoundedIdeal(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

func validate(net *network.Network, source, target int) error {
	if net == nil {
		return ErrNilNetwork
	}
	if !net.Valid(source) || !net.Valid(target) {
		return fmt.Errorf("%w: source=%d target=%d nodes=%d", ErrNodeOutOfRange, source, target, net.NumNodes())
	}

	return nil
}
