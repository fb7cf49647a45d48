package distance_test

import (
	"testing"

	"github.com/katalvlaran/latticewalk/distance"
)

// BenchmarkCountExact measures the brute-force count on the sample map.
// Complexity: O(b²) per iteration.
func BenchmarkCountExact(b *testing.B) {
	l := mustParse(b, sample)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distance.CountExact(l, 100)
	}
}
