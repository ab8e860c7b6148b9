// File: edges.go
// Role: Canonical edge enumeration.
// Determinism:
//   - Edges() returns edges sorted ascending by (S, T).
package ugraph

import "sort"

// Edges returns every distinct undirected edge in canonical
// (min, max) form, self-loops included as (s, s). Each edge appears
// exactly once even though adjacency stores it from both endpoints.
// The slice is sorted ascending by (S, T) for stable enumeration.
// Complexity: O(E log E) for sorting; O(V + E) to assemble.
func (g *Graph) Edges() []Edge {
	seen := make(map[Edge]struct{})
	for node, neighbours := range g.nodes {
		for adjacent := range neighbours {
			seen[NewEdge(node, adjacent)] = struct{}{}
		}
	}

	out := make([]Edge, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].S != out[j].S {
			return out[i].S < out[j].S
		}

		return out[i].T < out[j].T
	})

	return out
}

// EdgeCount returns the number of distinct undirected edges.
// Complexity: O(V + E)
func (g *Graph) EdgeCount() int {
	return len(g.Edges())
}
