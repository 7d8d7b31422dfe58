package observability_test

import (
	"testing"

	"github.com/aretw0/graphname/pkg/observability"
	"github.com/aretw0/graphname/pkg/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountStoreActivity(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	w := store.New("blank", store.WithName("graph"), store.WithHooks(m.Hooks()), store.SkipUnchanged())
	stopA := w.Subscribe(func(string) {})
	stopB := w.Subscribe(func(string) {})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Subscribers.WithLabelValues("graph")))

	w.Set("graphA")
	w.Set("graphA")
	w.Set("cluster-7")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Writes.WithLabelValues("graph")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SkippedWrites.WithLabelValues("graph")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Notifications.WithLabelValues("graph")))

	stopA()
	stopB()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Subscribers.WithLabelValues("graph")))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}

func TestNewMetrics_Unregistered(t *testing.T) {
	m, err := observability.NewMetrics(nil)
	require.NoError(t, err)

	w := store.New(0, store.WithHooks(m.Hooks()))
	w.Set(1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Writes.WithLabelValues("")))
}
