package search_test

import (
	"testing"

	"github.com/cubeforge/kociemba/cube"
	"github.com/cubeforge/kociemba/search"
	"github.com/cubeforge/kociemba/tables"
)

func benchContext(b *testing.B) *search.Context {
	b.Helper()
	tb, err := tables.GenerateAll(tables.DefaultGenerateOptions())
	if err != nil {
		b.Fatal(err)
	}
	return search.NewContext(tb)
}

func BenchmarkRun_Phase1(b *testing.B) {
	ctx := benchContext(b)
	opts := search.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := cube.New()
		_ = cube.Apply(c, "F L D B' U' R F'")
		if _, err := search.Run(ctx, c, search.Phase1, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_TwoPhase(b *testing.B) {
	ctx := benchContext(b)
	opts := search.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := cube.New()
		_ = cube.Apply(c, "F L D B' U' R F'")
		if _, err := search.Run(ctx, c, search.Phase1, opts); err != nil {
			b.Fatal(err)
		}
		if _, err := search.Run(ctx, c, search.Phase2, opts); err != nil {
			b.Fatal(err)
		}
	}
}
