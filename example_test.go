package graphname_test

import (
	"fmt"

	"github.com/aretw0/graphname"
)

// Example shows the view following the cell.
func Example() {
	sel := graphname.New()

	stop := sel.View.Subscribe(func(name string) {
		fmt.Println("view:", name)
	})
	defer stop()

	sel.Name.Set("cluster-7")
	fmt.Println("get:", sel.View.Get())

	// Output:
	// view: blank
	// view: cluster-7
	// get: cluster-7
}

// ExampleSelection_SelectAny shows the optional type check on untyped writes.
func ExampleSelection_SelectAny() {
	sel := graphname.New()

	if err := sel.SelectAny(7); err != nil {
		fmt.Println(err)
	}
	fmt.Println(sel.Current())

	// Output:
	// type mismatch: graph name must be a string, got int
	// blank
}
