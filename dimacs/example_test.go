package dimacs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/namoa/dimacs"
)

func ExampleReadPair() {
	dist := "p sp 2 1\na 1 2 1200\n"
	time := "p sp 2 1\na 1 2 95\n"
	g, err := dimacs.ReadPair(strings.NewReader(dist), strings.NewReader(time))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Println(e.From, "->", e.To, e.Cost)
	}
	// Output:
	// 1 -> 2 (1200, 95)
}
