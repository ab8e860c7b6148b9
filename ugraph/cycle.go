// File: cycle.go
// Role: Cycle detection via a destructive edge-consuming traversal.
//
// The traversal runs on a disposable Clone of the adjacency. For each
// node popped off the open stack it snapshots the node's current
// neighbor set, then strips every edge incident to that node from the
// working copy before expanding the neighbors. Consuming the edges up
// front means a neighbor can never report the just-traversed edge back
// as a revisit, so "neighbor already visited" is exactly "second route
// to this node" — no parent-exclusion rule needed. The same check
// catches self-loops, because a node is already visited when it meets
// itself through a loop edge.
//
// The price is a full adjacency clone plus O(V+E) mutation per
// component root. That makes the test slow relative to a classic
// marking DFS, and that is accepted: the simplicity of the invariant
// is the point. Callers that need the answer repeatedly on a growing
// graph (see spantree) pay the cost knowingly.
//
// Complexity: O(V + E) clone + O(V + E) traversal work per call, with
// heavy constant factors from the working-copy mutation.
package ugraph

// IsCyclic reports whether the graph contains at least one cycle,
// self-loops included. The receiver is left unmodified; all
// destructive work happens on a private copy.
//
// Steps:
//  1. Clone the adjacency into a working copy.
//  2. For each node 0..n not yet visited: mark it, push it as a new
//     exploration root.
//  3. While the open stack is non-empty: pop current, snapshot its
//     neighbor set from the working copy, strip all of current's
//     edges, then for each neighbor — already visited means a second
//     route exists, return true; otherwise mark and push.
//  4. No root ever trips the check — return false.
func (g *Graph) IsCyclic() bool {
	work := g.Clone()
	visited := make(NodeSet, work.Size())
	open := make([]int, 0, work.Size())

	for root := 0; root < work.Size(); root++ {
		if visited.Contains(root) {
			continue
		}
		visited[root] = struct{}{}
		open = append(open[:0], root)

		for len(open) > 0 {
			current := open[len(open)-1]
			open = open[:len(open)-1]

			// Snapshot, then consume: after this, no edge can lead
			// back to current.
			neighbours := work.Neighbours(current)
			work.RemoveEdges(current)

			for n := range neighbours {
				if visited.Contains(n) {
					return true
				}
				visited[n] = struct{}{}
				open = append(open, n)
			}
		}
	}

	return false
}

// IsAcyclic reports whether the graph contains no cycle. It is the
// logical negation of IsCyclic.
func (g *Graph) IsAcyclic() bool {
	return !g.IsCyclic()
}
