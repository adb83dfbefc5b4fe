package httpapi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cubeforge/kociemba/httpapi"
	"github.com/cubeforge/kociemba/solver"
	"github.com/cubeforge/kociemba/tables"
)

func BenchmarkHandleSolve(b *testing.B) {
	tb, err := tables.GenerateAll(tables.DefaultGenerateOptions())
	if err != nil {
		b.Fatal(err)
	}
	srv := httpapi.NewServer(solver.New(tb))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/solve?scramble=R+U+R%27+U%27", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			b.Fatalf("unexpected status: %d", rec.Code)
		}
	}
}
