// File: clone.go
// Role: Deep value copies of Graph instances.
// Concurrency:
//   - Pure read of the source; the clone shares no storage with it.
package ugraph

// Clone returns a deep copy of the graph: same node count, same
// adjacency, zero shared storage. Mutating the clone never affects
// the source and vice versa. IsCyclic relies on this to keep its
// destructive traversal private.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	nodes := make([]NodeSet, len(g.nodes))
	for i, neighbours := range g.nodes {
		nodes[i] = neighbours.Clone()
	}

	return &Graph{nodes: nodes}
}
