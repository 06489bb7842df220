package heuristic

import (
	"fmt"

	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/network"
)

// CheckConsistent verifies h(u) ≤ cost(u,v) + h(v) component-wise for every
// arc, with saturating addition. It returns ErrInconsistent naming the first
// violating arc.
// Complexity: O(m·k).
func CheckConsistent(net *network.Network) error {
	if net == nil {
		return ErrNilNetwork
	}
	for u := 0; u < net.NumNodes(); u++ {
		hu := net.Node(u).Heuristic
		for _, a := range net.Node(u).Out {
			hv := net.Node(a.Head).Heuristic
			for c := range hu {
				if hu[c] > criteria.AddWeight(a.Cost[c], hv[c]) {
					return fmt.Errorf("%w: arc %s→%s criterion %d: h(u)=%s cost=%s h(v)=%s",
						ErrInconsistent, net.ID(u), net.ID(a.Head), c, hu, a.Cost, hv)
				}
			}
		}
	}

	return nil
}
