package builder_test

import (
	"fmt"

	"github.com/katalvlaran/spangraph/builder"
)

// ExamplePath builds P_4 and prints its canonical edges.
func ExamplePath() {
	g, _ := builder.Path(4)
	for _, e := range g.Edges() {
		fmt.Printf("(%d,%d) ", e.S, e.T)
	}
	fmt.Println()

	// Output:
	// (0,1) (1,2) (2,3)
}

// ExampleCycle builds C_5 and shows the closing edge flipping the
// cycle test.
func ExampleCycle() {
	g, _ := builder.Cycle(5)
	fmt.Println("edges:", g.EdgeCount(), "cyclic:", g.IsCyclic())

	g.RemoveEdge(4, 0)
	fmt.Println("edges:", g.EdgeCount(), "cyclic:", g.IsCyclic())

	// Output:
	// edges: 5 cyclic: true
	// edges: 4 cyclic: false
}

// ExampleRandomSparse builds a reproducible connected fixture.
func ExampleRandomSparse() {
	g, _ := builder.RandomSparse(10, 5, builder.WithSeed(42))
	fmt.Println("nodes:", g.Size(), "edges:", g.EdgeCount())

	// Output:
	// nodes: 10 edges: 14
}
