package ugraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spangraph/ugraph"
)

// TestIsCyclic_EmptyAndEdgeless verifies that graphs with no edges are
// acyclic for every size, the empty graph included.
func TestIsCyclic_EmptyAndEdgeless(t *testing.T) {
	for n := 0; n < 50; n++ {
		g := ugraph.New(n)
		assert.True(t, g.IsAcyclic(), "edgeless graph of size %d", n)
		assert.False(t, g.IsCyclic())
	}
}

// TestIsCyclic_SelfLoop verifies that a single self-loop is a cycle.
func TestIsCyclic_SelfLoop(t *testing.T) {
	g := ugraph.New(1)
	assert.False(t, g.IsCyclic())

	g.AddEdge(0, 0)
	assert.True(t, g.IsCyclic())
}

// TestIsCyclic_Triangle verifies that a 3-node graph becomes cyclic
// exactly when the third edge closes the triangle.
func TestIsCyclic_Triangle(t *testing.T) {
	g := ugraph.New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	assert.False(t, g.IsCyclic(), "two of three triangle edges are acyclic")

	g.AddEdge(2, 0)
	assert.True(t, g.IsCyclic(), "closing edge creates the cycle")
}

// TestIsCyclic_FourCycle verifies the square 0-1-2-3-0.
func TestIsCyclic_FourCycle(t *testing.T) {
	g := ugraph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	assert.False(t, g.IsCyclic())

	g.AddEdge(3, 0)
	assert.True(t, g.IsCyclic())
}

// TestIsCyclic_StarIsAcyclic verifies that a tree (star) has no cycle.
func TestIsCyclic_StarIsAcyclic(t *testing.T) {
	g := ugraph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)
	assert.False(t, g.IsCyclic())
}

// TestIsCyclic_ChordedSquare verifies a graph with two overlapping
// cycles (square plus diagonal) is reported cyclic.
func TestIsCyclic_ChordedSquare(t *testing.T) {
	g := ugraph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 0)
	g.AddEdge(1, 3)
	assert.True(t, g.IsCyclic())
}

// TestIsCyclic_PathsUntilClosed sweeps path graphs P_n for n in
// [3, 100): a path is acyclic, and the closing edge (n-1, 0) flips it.
func TestIsCyclic_PathsUntilClosed(t *testing.T) {
	for n := 3; n < 100; n++ {
		g := ugraph.New(n)
		for m := 0; m < n-1; m++ {
			g.AddEdge(m, m+1)
		}
		assert.True(t, g.IsAcyclic(), "path of %d nodes", n)

		g.AddEdge(n-1, 0)
		assert.True(t, g.IsCyclic(), "closed ring of %d nodes", n)
	}
}

// TestIsCyclic_ForestIsAcyclic verifies that ten disjoint 5-node
// paths contain no cycle.
func TestIsCyclic_ForestIsAcyclic(t *testing.T) {
	g := ugraph.New(10 * 5)
	for k := 0; k < 10; k++ {
		m := k * 5
		g.AddEdge(m, m+1)
		g.AddEdge(m+1, m+2)
		g.AddEdge(m+2, m+3)
		g.AddEdge(m+3, m+4)
	}
	assert.True(t, g.IsAcyclic())
}

// TestIsCyclic_CycleInSecondComponent verifies that the sweep over
// exploration roots finds a cycle living past an acyclic component.
func TestIsCyclic_CycleInSecondComponent(t *testing.T) {
	g := ugraph.New(6)
	// Component one: an innocent path.
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	// Component two: a triangle.
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)
	g.AddEdge(5, 3)
	assert.True(t, g.IsCyclic())
}

// TestIsCyclic_DoesNotMutateCaller verifies the aliasing discipline:
// the destructive traversal runs on a private copy, so the caller's
// adjacency is byte-identical before and after.
func TestIsCyclic_DoesNotMutateCaller(t *testing.T) {
	g := ugraph.New(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(3, 3)
	before := g.Edges()

	_ = g.IsCyclic()
	_ = g.IsAcyclic()

	assert.Equal(t, before, g.Edges())
	for i := 0; i < g.Size(); i++ {
		assert.Equal(t, len(beforeDegrees(before, i)), g.Degree(i), "degree of node %d", i)
	}
}

// beforeDegrees recovers the neighbor set of node i from a canonical
// edge list, for cross-checking degrees after a query.
func beforeDegrees(edges []ugraph.Edge, i int) map[int]struct{} {
	nbrs := make(map[int]struct{})
	for _, e := range edges {
		if e.S == i {
			nbrs[e.T] = struct{}{}
		}
		if e.T == i {
			nbrs[e.S] = struct{}{}
		}
	}

	return nbrs
}

// TestIsCyclic_GrowingRandomGraph replays a deterministic edge
// sequence and cross-checks IsCyclic against an edge-count bound:
// any component with more edges than nodes-1 is certainly cyclic.
func TestIsCyclic_GrowingRandomGraph(t *testing.T) {
	const n = 20
	g := ugraph.New(n)

	// A spanning path is acyclic at every prefix.
	for i := 1; i < n; i++ {
		g.AddEdge(i-1, i)
		assert.True(t, g.IsAcyclic(), "prefix path up to %d", i)
	}

	// Any additional distinct edge now closes a cycle.
	g.AddEdge(0, 10)
	assert.True(t, g.IsCyclic())

	// And removing it restores acyclicity.
	g.RemoveEdge(0, 10)
	assert.True(t, g.IsAcyclic())
}
