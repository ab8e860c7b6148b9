// Package ugraph defines the Graph, NodeSet, and Edge types and the
// New constructor.
//
// This file declares the data model; mutators and queries live in
// graph.go, edge enumeration in edges.go, deep copies in clone.go, and
// cycle detection in cycle.go.
package ugraph

import "fmt"

// NodeSet is a set of node indices. It is the currency of neighbor
// queries: Neighbours returns a NodeSet copy that the caller owns and
// may mutate freely without affecting the graph.
type NodeSet map[int]struct{}

// Contains reports whether node n is a member of the set.
// Complexity: O(1)
func (s NodeSet) Contains(n int) bool {
	_, ok := s[n]
	return ok
}

// Len returns the number of nodes in the set.
// Complexity: O(1)
func (s NodeSet) Len() int { return len(s) }

// Clone returns an independent copy of the set.
// Complexity: O(len(s))
func (s NodeSet) Clone() NodeSet {
	out := make(NodeSet, len(s))
	for n := range s {
		out[n] = struct{}{}
	}

	return out
}

// Edge is an undirected edge in canonical form: S <= T always holds
// for edges produced by this package. A self-loop has S == T.
type Edge struct {
	// S is the smaller endpoint index.
	S int

	// T is the larger endpoint index.
	T int
}

// NewEdge returns the canonical Edge for the unordered pair (s, t),
// swapping endpoints so that S <= T.
// Complexity: O(1)
func NewEdge(s, t int) Edge {
	if s > t {
		s, t = t, s
	}

	return Edge{S: s, T: t}
}

// Graph is a fixed-size undirected graph over nodes 0..n.
//
// Adjacency is stored symmetrically: if t is a neighbor of s then s is
// a neighbor of t, always. The node count is immutable after New;
// there is no node insertion or removal, only edge mutation.
type Graph struct {
	// nodes[i] holds the neighbor set of node i.
	nodes []NodeSet
}

// New creates a Graph with n isolated nodes. n == 0 is valid and
// yields the empty graph, which is trivially acyclic.
// Complexity: O(n)
func New(n int) *Graph {
	nodes := make([]NodeSet, n)
	for i := range nodes {
		nodes[i] = make(NodeSet)
	}

	return &Graph{nodes: nodes}
}

// checkNode panics if node is outside [0, Size()). Out-of-range
// indices are contract violations and fail fast rather than clamp or
// no-op.
func (g *Graph) checkNode(node int) {
	if node < 0 || node >= len(g.nodes) {
		panic(fmt.Sprintf("ugraph: node %d out of range [0,%d)", node, len(g.nodes)))
	}
}
