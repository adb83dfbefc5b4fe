package tables_test

import (
	"testing"

	"github.com/cubeforge/kociemba/tables"
)

func BenchmarkGenerateAll(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tables.GenerateAll(tables.DefaultGenerateOptions()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSaveLoad(b *testing.B) {
	tb, err := tables.GenerateAll(tables.DefaultGenerateOptions())
	if err != nil {
		b.Fatal(err)
	}
	dir := b.TempDir()
	if err := tables.Save(dir, tb); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tables.Load(dir); err != nil {
			b.Fatal(err)
		}
	}
}
