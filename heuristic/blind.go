package heuristic

import "github.com/katalvlaran/namoa/network"

// Blind sets every heuristic to the zero vector.
type Blind struct{}

// NewBlind returns the blind engine.
func NewBlind() *Blind { return &Blind{} }

// Name returns "blind".
func (*Blind) Name() string { return NameBlind }

// Init zeroes every node's heuristic.
func (*Blind) Init(net *network.Network, source, target int) error {
	if err := validate(net, source, target); err != nil {
		return err
	}
	net.SetHeuristic(0)

	return nil
}
