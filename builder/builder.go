// File: builder.go
// Role: Topology constructors over ugraph.Graph.
//
// Contract (all constructors):
//   - Validate parameters first; return only sentinel errors, wrapped
//     with method context via %w.
//   - Emit edges in stable ascending order, so deterministic
//     constructors yield byte-identical Edges() output across runs.
package builder

import (
	"fmt"

	"github.com/katalvlaran/spangraph/ugraph"
)

// Constructor minima; no magic numbers at call sites.
const (
	minPathNodes   = 2
	minCycleNodes  = 3
	minStarNodes   = 2
	minForestTrees = 1
	minForestSpan  = 1
)

// Path builds the simple path P_n: edges (i-1, i) for i = 1..n-1.
// Requires n >= 2.
// Complexity: O(n)
func Path(n int) (*ugraph.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}

	g := ugraph.New(n)
	for i := 1; i < n; i++ {
		g.AddEdge(i-1, i)
	}

	return g, nil
}

// Cycle builds the simple cycle C_n: the path P_n plus the closing
// edge (n-1, 0). Requires n >= 3.
// Complexity: O(n)
func Cycle(n int) (*ugraph.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}

	g := ugraph.New(n)
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}

	return g, nil
}

// Star builds the star S_n: node 0 is the hub, with edges (0, i) for
// i = 1..n-1. Requires n >= 2.
// Complexity: O(n)
func Star(n int) (*ugraph.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
	}

	g := ugraph.New(n)
	for i := 1; i < n; i++ {
		g.AddEdge(0, i)
	}

	return g, nil
}

// Complete builds the complete graph K_n with every (i, j), i < j.
// n == 0 and n == 1 are valid and edge-free. Requires n >= 0.
// Complexity: O(n^2)
func Complete(n int) (*ugraph.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrNegativeCount)
	}

	g := ugraph.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j)
		}
	}

	return g, nil
}

// Forest builds trees disjoint paths of span nodes each, over
// trees*span total nodes: tree k covers nodes [k*span, (k+1)*span).
// Requires trees >= 1 and span >= 1; span == 1 yields isolated nodes.
// Complexity: O(trees * span)
func Forest(trees, span int) (*ugraph.Graph, error) {
	if trees < minForestTrees || span < minForestSpan {
		return nil, fmt.Errorf("Forest: trees=%d span=%d: %w", trees, span, ErrTooFewNodes)
	}

	g := ugraph.New(trees * span)
	for k := 0; k < trees; k++ {
		base := k * span
		for i := 1; i < span; i++ {
			g.AddEdge(base+i-1, base+i)
		}
	}

	return g, nil
}

// RandomSparse builds a connected graph on n nodes: the spanning path
// P_n plus extra distinct random non-loop edges drawn from the
// configured generator. Requires n >= 2 and 0 <= extra <=
// n*(n-1)/2 - (n-1), the number of chords the path leaves free.
//
// Steps:
//  1. Validate n, extra, and capacity.
//  2. Build P_n to guarantee connectivity.
//  3. Draw random pairs (u, v), u != v, until extra previously absent
//     edges have been added; duplicates and loops are redrawn.
//
// Complexity: O(n + extra) expected while the graph stays sparse.
func RandomSparse(n, extra int, opts ...Option) (*ugraph.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}
	if extra < 0 {
		return nil, fmt.Errorf("RandomSparse: extra=%d: %w", extra, ErrNegativeCount)
	}
	if chords := n*(n-1)/2 - (n - 1); extra > chords {
		return nil, fmt.Errorf("RandomSparse: extra=%d > free=%d: %w", extra, chords, ErrTooManyEdges)
	}

	cfg := newConfig(opts...)

	g, err := Path(n)
	if err != nil {
		return nil, err
	}

	for added := 0; added < extra; {
		u := cfg.rng.Intn(n)
		v := cfg.rng.Intn(n)
		if u == v || g.Adjacent(u, v) {
			continue
		}
		g.AddEdge(u, v)
		added++
	}

	return g, nil
}
