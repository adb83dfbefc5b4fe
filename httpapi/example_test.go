package httpapi_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/cubeforge/kociemba/httpapi"
	"github.com/cubeforge/kociemba/solver"
	"github.com/cubeforge/kociemba/tables"
)

func ExampleServer_ServeHTTP() {
	tb, err := tables.GenerateAll(tables.DefaultGenerateOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	srv := httpapi.NewServer(solver.New(tb))

	req := httptest.NewRequest(http.MethodGet, "/solve?scramble=", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	body, _ := io.ReadAll(rec.Result().Body)
	fmt.Println(rec.Code)
	fmt.Println(strings.TrimSpace(string(body)))
	// Output:
	// 200
	// {"scramble":"","solution":""}
}
