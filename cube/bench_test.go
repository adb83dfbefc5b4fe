package cube_test

import (
	"testing"

	"github.com/cubeforge/kociemba/cube"
)

// BenchmarkApply_SingleMove measures the cost of one quarter-turn application.
func BenchmarkApply_SingleMove(b *testing.B) {
	c := cube.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.ApplyToken("R")
	}
}

// BenchmarkApply_Scramble measures applying an 18-move scramble end to end.
func BenchmarkApply_Scramble(b *testing.B) {
	const scramble = "R U R' U' R U R' U' R U R' U' R U R' U' R U"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := cube.New()
		_ = cube.Apply(c, scramble)
	}
}

// BenchmarkCoords measures the cost of computing all three coordinates.
func BenchmarkCoords(b *testing.B) {
	c := cube.New()
	_ = cube.Apply(c, "R U R' U' F2 L D2 B'")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.CornerOrientationCoord()
		_ = c.EdgeOrientationCoord()
		_ = c.UDSliceCoord()
	}
}
