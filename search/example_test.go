package search_test

import (
	"fmt"
	"strings"

	"github.com/cubeforge/kociemba/cube"
	"github.com/cubeforge/kociemba/search"
	"github.com/cubeforge/kociemba/tables"
)

func ExampleRun() {
	tb, err := tables.GenerateAll(tables.DefaultGenerateOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ctx := search.NewContext(tb)

	c := cube.New()
	_ = cube.Apply(c, "R U R' U'")

	opts := search.DefaultOptions()
	p1, err := search.Run(ctx, c, search.Phase1, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p2, err := search.Run(ctx, c, search.Phase2, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Join(append(p1, p2...), " ") != "")
	fmt.Println(c.IsSolved())
	// Output:
	// true
	// true
}
