// Package builder constructs common topologies over ugraph.Graph:
// paths, cycles, stars, complete graphs, disjoint-path forests, and
// random sparse connected graphs.
//
// Constructors are deterministic except RandomSparse, whose extra
// edges are drawn from an injected *rand.Rand (WithSeed/WithRand);
// the default generator is time-seeded and resolved at the call
// boundary.
//
// Error policy:
//   - Only sentinel errors are exposed; branch with errors.Is.
//   - Parameter violations return a sentinel wrapped with method
//     context (%w), never a panic.
package builder
