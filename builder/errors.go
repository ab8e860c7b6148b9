// File: errors.go
// Role: Sentinel errors for the builder package.
package builder

import "errors"

// ErrTooFewNodes indicates a node-count parameter below the
// constructor's minimum (Path needs 2, Cycle needs 3, and so on).
// Usage: if errors.Is(err, ErrTooFewNodes) { ... }.
var ErrTooFewNodes = errors.New("builder: node count below constructor minimum")

// ErrNegativeCount indicates a count parameter that must be
// non-negative (e.g. the extra-edge count of RandomSparse).
var ErrNegativeCount = errors.New("builder: negative count")

// ErrTooManyEdges indicates that RandomSparse was asked for more
// distinct extra edges than the simple graph on n nodes can hold.
var ErrTooManyEdges = errors.New("builder: extra edge count exceeds capacity")
