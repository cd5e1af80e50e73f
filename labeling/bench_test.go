package labeling_test

import (
	"testing"

	"github.com/katalvlaran/lvlabel/labeling"
)

// BenchmarkLabel measures the full pipeline on a 1000×1000 random grid at
// the default density.
// Complexity: O(W×H) scans plus table chases.
func BenchmarkLabel(b *testing.B) {
	const n = 1000
	base := randomGrid(b, n, n, 42, 128)
	for _, tc := range []struct {
		name string
		opts []labeling.Option
	}{
		{"two-pass", nil},
		{"forward-only", []labeling.Option{labeling.WithBackwardPass(false)}},
		{"compressed", []labeling.Option{labeling.WithPathCompression(true)}},
	} {
		b.Run(tc.name, func(b *testing.B) {
			lb := labeling.New(tc.opts...)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				g := base.Clone()
				b.StartTimer()
				if _, err := lb.Label(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
