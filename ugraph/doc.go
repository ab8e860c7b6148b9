// Package ugraph provides a dense, index-addressed undirected graph.
//
// A Graph is created with a fixed number of nodes 0..n and never grows
// or shrinks; only its adjacency mutates. Edges are unordered pairs of
// node indices, stored symmetrically (each endpoint records the other),
// with set semantics: no parallel edges, and adding an existing edge is
// a no-op. Self-loops are legal and count as cycles.
//
// The package favors a deliberately simple contract:
//
//   - Mutators (AddEdge, RemoveEdge, RemoveEdges) operate by side
//     effect and are idempotent where the operation is already
//     satisfied.
//   - Queries (Neighbours, Adjacent, Degree, Edges, EdgeCount, Size,
//     IsCyclic, IsAcyclic) never modify the receiver.
//   - A node index outside [0, Size()) is a caller bug, not an input
//     condition: every operation taking an index panics immediately on
//     an out-of-range value. There are no recoverable error paths.
//
// IsCyclic runs a destructive edge-consuming traversal on a private
// Clone of the adjacency, so the caller's graph is untouched. The
// algorithm trades speed for simplicity — see cycle.go — and is the
// acceptance oracle used by the spantree package.
//
// A Graph instance is not safe for concurrent mutation; each instance
// is meant to be exclusively owned by its caller.
package ugraph
