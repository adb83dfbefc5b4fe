package tables_test

import (
	"fmt"

	"github.com/cubeforge/kociemba/tables"
)

func ExampleGenerateAll() {
	tb, err := tables.GenerateAll(tables.DefaultGenerateOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tb.CO[0], tb.EO[0])
	// Output:
	// 0 0
}
