// File: spantree.go
// Role: Randomized greedy spanning-tree construction.
package spantree

import "github.com/katalvlaran/spangraph/ugraph"

// SpanningTree returns a new graph with the same node count as g,
// holding a maximal acyclic subset of g's edges: a spanning tree when
// g is connected, a spanning forest otherwise. The source graph is
// never mutated; the result shares no storage with it.
//
// Steps:
//  1. Collect g's canonical edge set into a slice.
//  2. Shuffle it uniformly with the configured random generator.
//  3. Replay into a fresh empty graph of size g.Size(): add each
//     edge, test IsCyclic, roll the edge back if it closed a cycle.
//
// Processing is strictly sequential — the accept/reject decision for
// edge i depends on the state left behind by edges 0..i. Self-loops
// in the source always close a cycle on arrival and are therefore
// never kept.
//
// Complexity: O(E) shuffle plus E cycle checks, each O(V + E) with a
// full working-copy clone — deliberately simple, knowingly slow.
func SpanningTree(g *ugraph.Graph, opts ...Option) *ugraph.Graph {
	cfg := newConfig(opts...)

	edges := g.Edges()
	cfg.rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	tree := ugraph.New(g.Size())
	for _, e := range edges {
		tree.AddEdge(e.S, e.T)
		if tree.IsCyclic() {
			tree.RemoveEdge(e.S, e.T)
		}
	}

	return tree
}
