/*
Package graphname holds the currently selected graph name as a reactive cell,
plus a read-only view derived from it.

A presentation layer reads and subscribes to the view to render which graph is
selected; whatever drives the selection writes to the cell. Every write reaches
every view subscriber before it returns.

# Usage

	sel := graphname.New()

	stop := sel.View.Subscribe(func(name string) {
		fmt.Println("showing graph:", name) // "blank" right away
	})
	defer stop()

	sel.Select("cluster-7") // prints "showing graph: cluster-7"

Instances are explicit: pass the *Selection to whatever needs it instead of
sharing a package-level variable.
*/
package graphname
