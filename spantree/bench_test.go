package spantree_test

import (
	"testing"

	"github.com/katalvlaran/spangraph/builder"
	"github.com/katalvlaran/spangraph/spantree"
)

// BenchmarkSpanningTree_Sparse measures the full construction on a
// connected 200-node graph with 100 chord edges. Dominated by the
// repeated destructive-copy cycle checks, which is the documented
// trade-off of the oracle.
func BenchmarkSpanningTree_Sparse(b *testing.B) {
	src, err := builder.RandomSparse(200, 100, builder.WithSeed(42))
	if err != nil {
		b.Fatalf("setup RandomSparse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = spantree.SpanningTree(src, spantree.WithSeed(int64(i)))
	}
}

// BenchmarkSpanningTree_Complete measures the dense case K_32, where
// most candidate edges are rejected after a cycle check.
func BenchmarkSpanningTree_Complete(b *testing.B) {
	src, err := builder.Complete(32)
	if err != nil {
		b.Fatalf("setup Complete failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = spantree.SpanningTree(src, spantree.WithSeed(int64(i)))
	}
}
