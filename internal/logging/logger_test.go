package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/graphname/internal/logging"
	"github.com/aretw0/graphname/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelInfo)

	logger.Error("select failed", "error", errors.New("boom"))

	assert.Contains(t, buf.String(), "err=boom")
	assert.NotContains(t, buf.String(), "error=boom")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestHooks_LogStoreEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelDebug)

	w := store.New("blank", store.WithName("graph"), store.WithHooks(logging.Hooks(logger)))
	stop := w.Subscribe(func(string) {})
	w.Set("cluster-7")
	stop()

	out := buf.String()
	assert.Contains(t, out, "event=subscribe")
	assert.Contains(t, out, "event=set")
	assert.Contains(t, out, "event=notify")
	assert.Contains(t, out, "event=unsubscribe")
	assert.Contains(t, out, "store=graph")
	assert.Contains(t, out, "value=cluster-7")
}

func TestHooks_SilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelInfo)

	w := store.New("blank", store.WithHooks(logging.Hooks(logger)))
	w.Set("graphA")

	assert.Empty(t, buf.String())
}
