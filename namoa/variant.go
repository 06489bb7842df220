package namoa

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/namoa/heuristic"
	"github.com/katalvlaran/namoa/network"
)

// Variant names accepted by New.
const (
	VariantSplit         = "split"
	VariantSingle        = "single"
	VariantSingleForward = "single-forward"
)

// Variants lists the accepted variant names.
func Variants() []string {
	return []string{VariantSplit, VariantSingle, VariantSingleForward}
}

// New builds the searcher named by variant (case-insensitive).
// "single-forward" is SingleList with WithForwardPruning.
func New(variant string, net *network.Network, engine heuristic.Engine, opts ...Option) (Searcher, error) {
	switch strings.ToLower(variant) {
	case VariantSplit:
		return NewSplit(net, engine, opts...)
	case VariantSingle:
		return NewSingleList(net, engine, opts...)
	case VariantSingleForward:
		return NewSingleList(net, engine, append(opts, WithForwardPruning())...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}
