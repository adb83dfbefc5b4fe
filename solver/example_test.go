package solver_test

import (
	"fmt"

	"github.com/cubeforge/kociemba/solver"
	"github.com/cubeforge/kociemba/tables"
)

func ExampleSolver_Solve() {
	tb, err := tables.GenerateAll(tables.DefaultGenerateOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s := solver.New(tb)

	out, err := s.Solve("")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%q\n", out)
	// Output:
	// ""
}
