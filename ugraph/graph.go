// File: graph.go
// Role: Edge mutation and structural queries on Graph.
// Invariants:
//   - Adjacency stays symmetric across every mutator.
//   - All index parameters are validated up front; a bad index panics
//     before any state changes.
package ugraph

// Size returns the fixed node count n; valid node indices are [0, n).
// Complexity: O(1)
func (g *Graph) Size() int { return len(g.nodes) }

// Neighbours returns a copy of node's neighbor set. The returned
// NodeSet is caller-owned; mutating it does not touch the graph.
// Panics if node is out of range.
// Complexity: O(d) where d is the degree of node.
func (g *Graph) Neighbours(node int) NodeSet {
	g.checkNode(node)

	return g.nodes[node].Clone()
}

// AddEdge inserts the undirected edge (s, t), recording each endpoint
// in the other's neighbor set. Adding an existing edge is a no-op.
// s == t is legal and creates a self-loop.
// Panics if either index is out of range.
// Complexity: O(1)
func (g *Graph) AddEdge(s, t int) {
	g.checkNode(s)
	g.checkNode(t)

	g.nodes[s][t] = struct{}{}
	g.nodes[t][s] = struct{}{}
}

// RemoveEdge deletes the undirected edge (s, t) from both endpoints.
// Removing an absent edge is a no-op, not an error.
// Panics if either index is out of range.
// Complexity: O(1)
func (g *Graph) RemoveEdge(s, t int) {
	g.checkNode(s)
	g.checkNode(t)

	delete(g.nodes[s], t)
	delete(g.nodes[t], s)
}

// RemoveEdges deletes every edge incident to node, isolating it.
// The neighbor set is snapshotted before removal begins, so the
// iteration never observes its own deletions.
// Panics if node is out of range.
// Complexity: O(d) where d is the degree of node.
func (g *Graph) RemoveEdges(node int) {
	// Neighbours already hands back an independent copy.
	for neighbour := range g.Neighbours(node) {
		g.RemoveEdge(node, neighbour)
	}
}

// Adjacent reports whether t is currently a neighbor of s. Adjacency
// is symmetric by construction, so Adjacent(s, t) == Adjacent(t, s).
// Panics if either index is out of range.
// Complexity: O(1)
func (g *Graph) Adjacent(s, t int) bool {
	g.checkNode(s)
	g.checkNode(t)

	return g.nodes[s].Contains(t)
}

// Degree returns the number of distinct neighbors of node. A
// self-loop contributes one.
// Panics if node is out of range.
// Complexity: O(1)
func (g *Graph) Degree(node int) int {
	g.checkNode(node)

	return g.nodes[node].Len()
}
