// Package storetest holds reusable contract suites for store implementations.
package storetest

import (
	"testing"

	"github.com/aretw0/graphname/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory builds a readable holding initial and returns a func that writes
// through to it (directly, or to the source it is derived from).
type Factory func(initial string) (store.Readable[string], func(string))

// RunReadableContract runs a suite of tests to verify that a Readable
// implementation adheres to the subscribe/notify contract.
func RunReadableContract(t *testing.T, factory Factory) {
	t.Helper()

	t.Run("Get returns last written value", func(t *testing.T) {
		r, set := factory("blank")
		assert.Equal(t, "blank", r.Get())

		for _, v := range []string{"graphA", "", "blank", "ünïcode ✓", "graphA"} {
			set(v)
			assert.Equal(t, v, r.Get())
		}
	})

	t.Run("Subscribe delivers current value immediately", func(t *testing.T) {
		r, _ := factory("blank")

		var got []string
		stop := r.Subscribe(func(v string) { got = append(got, v) })
		defer stop()

		require.Equal(t, []string{"blank"}, got, "callback must fire synchronously inside Subscribe")
	})

	t.Run("Set notifies all subscribers in order before returning", func(t *testing.T) {
		r, set := factory("blank")

		var order []string
		stopA := r.Subscribe(func(v string) { order = append(order, "a:"+v) })
		stopB := r.Subscribe(func(v string) { order = append(order, "b:"+v) })
		defer stopA()
		defer stopB()

		order = nil
		set("graphA")

		assert.Equal(t, []string{"a:graphA", "b:graphA"}, order)
	})

	t.Run("Unsubscribe stops delivery and is idempotent", func(t *testing.T) {
		r, set := factory("blank")

		calls := 0
		stop := r.Subscribe(func(string) { calls++ })
		require.Equal(t, 1, calls)

		stop()
		stop()
		set("graphB")

		assert.Equal(t, 1, calls)
	})

	t.Run("Unsubscribe keeps other subscribers", func(t *testing.T) {
		r, set := factory("blank")

		var kept []string
		stopA := r.Subscribe(func(string) {})
		stopB := r.Subscribe(func(v string) { kept = append(kept, v) })
		defer stopB()

		stopA()
		set("graphC")

		assert.Equal(t, []string{"blank", "graphC"}, kept)
	})
}
