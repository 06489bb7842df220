package criteria_test

import (
	"fmt"

	"github.com/katalvlaran/namoa/criteria"
)

// ExampleVector_Dominates shows weak Pareto dominance between two-criteria costs.
func ExampleVector_Dominates() {
	fast := criteria.Of(1, 5)
	cheap := criteria.Of(3, 1)
	slow := criteria.Of(5, 9)

	fmt.Println(fast.Dominates(cheap), cheap.Dominates(fast))
	fmt.Println(fast.Dominates(slow))
	fmt.Println(criteria.NonDominated([]criteria.Vector{slow, cheap, fast}))
	// Output:
	// false false
	// true
	// [(1, 5) (3, 1)]
}
