// Package spangraph is a small in-memory toolkit for dense undirected
// graphs: build adjacency over integer nodes, ask whether the graph
// contains a cycle, and carve a random spanning tree (or forest) out
// of its edge set.
//
// Everything is organized under three subpackages:
//
//	ugraph/   — the Graph type: symmetric adjacency over nodes 0..n,
//	            edge mutation, structural queries, cycle detection
//	spantree/ — randomized greedy spanning-tree extraction on top of
//	            ugraph's cycle test
//	builder/  — deterministic topology constructors (paths, cycles,
//	            stars, complete graphs, random sparse graphs) used as
//	            fixtures and quick-start material
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	four nodes, four edges, one cycle — spantree.SpanningTree keeps
//	exactly three of them.
//
//	go get github.com/katalvlaran/spangraph
package spangraph
