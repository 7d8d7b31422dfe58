/*
Package store provides small generic reactive primitives: a writable cell and
read-only views derived from it.

A cell always holds a value. Writing it notifies every active subscriber,
synchronously and in subscription order, before the write returns. Subscribing
invokes the callback once with the current value and returns an Unsubscriber.

# Key Types

  - Readable: anything that can be read and subscribed to.
  - Writable: a mutable cell created with New.
  - Derived: a read-only view created with Derive; its value is always fn(source).
  - Hooks: optional callbacks receiving an Event for every write, notification
    and subscription change (used for logging and metrics).

# Usage

	cell := store.New("blank", store.WithName("graph"))
	view := store.Derive(store.Readable[string](cell), store.Identity[string])

	stop := view.Subscribe(func(v string) { fmt.Println("view:", v) })
	defer stop()

	cell.Set("cluster-7") // prints "view: cluster-7" before returning
*/
package store
