// Package spantree extracts a random spanning tree (or spanning
// forest) from an undirected ugraph.Graph.
//
// SpanningTree collects the source graph's canonical edge set,
// shuffles it uniformly, and replays the edges into a fresh empty
// graph of the same size: each edge is added, tested with IsCyclic,
// and rolled back if it closed a cycle. The construction is a
// randomized greedy filter, not a uniform sampler over all spanning
// trees — randomness is uniform over edge insertion order only.
//
// Guarantees for a valid source graph:
//
//   - The result is always acyclic (every commit is oracle-checked).
//   - Every kept edge belongs to the source's edge set.
//   - For a connected source with n nodes the result has exactly n-1
//     edges — a spanning tree.
//   - For a disconnected source the result is a spanning forest: one
//     spanning tree per connected component, since no candidate edge
//     can ever bridge components that share none.
//
// The random source is injected: pass WithSeed or WithRand for
// reproducible output (deterministic fixtures, tests); the default is
// a time-seeded generator created at the call boundary, never hidden
// package-global state.
//
// There is no failure path. The edge list is finite, so construction
// always terminates, including the degenerate sizes n == 0 and n == 1.
package spantree
