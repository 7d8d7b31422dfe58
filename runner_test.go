package graphname_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/graphname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Headless(t *testing.T) {
	sel := graphname.New()
	var out bytes.Buffer

	r := graphname.NewRunner()
	r.Input = strings.NewReader("a\n\n  b  \nquit\nc\n")
	r.Output = &out
	r.Headless = true

	require.NoError(t, r.Run(context.Background(), sel))

	assert.Equal(t, "blank\na\nb\n", out.String())
	assert.Equal(t, "b", sel.Current())
	assert.Equal(t, 0, sel.View.Subscribers(), "runner unsubscribes on exit")
}

func TestRunner_Interactive(t *testing.T) {
	sel := graphname.New()
	var out bytes.Buffer

	r := graphname.NewRunner()
	r.Input = strings.NewReader("graphA\nexit\n")
	r.Output = &out

	require.NoError(t, r.Run(context.Background(), sel))

	got := out.String()
	assert.Contains(t, got, "--- graphname")
	assert.Contains(t, got, "> graphA\n")
	assert.True(t, strings.HasSuffix(got, "Bye!\n"))
}

func TestRunner_EOF(t *testing.T) {
	sel := graphname.New()
	var out bytes.Buffer

	r := &graphname.Runner{Input: strings.NewReader("graphA"), Output: &out, Headless: true}
	require.NoError(t, r.Run(context.Background(), sel))
	assert.Equal(t, "graphA", sel.Current())
}

func TestRunner_Renderer(t *testing.T) {
	sel := graphname.New()
	var out bytes.Buffer

	r := &graphname.Runner{
		Input:    strings.NewReader("graphA\n"),
		Output:   &out,
		Headless: true,
		Renderer: func(s string) (string, error) {
			if s == "blank" {
				return "", errors.New("no style")
			}
			return "[" + s + "]", nil
		},
	}
	require.NoError(t, r.Run(context.Background(), sel))

	assert.Equal(t, "blank\n[graphA]\n", out.String(), "renderer errors fall back to the raw name")
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &graphname.Runner{Input: strings.NewReader("graphA\n"), Output: &bytes.Buffer{}, Headless: true}
	err := r.Run(ctx, graphname.New())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_CancelWhileReadBlocked(t *testing.T) {
	in, feed := io.Pipe()
	defer feed.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sel := graphname.New()
	selected := make(chan struct{})
	stop := sel.Name.Subscribe(func(v string) {
		if v == "graphA" {
			close(selected)
		}
	})
	defer stop()

	var out bytes.Buffer
	r := &graphname.Runner{Input: in, Output: &out, Headless: true}

	result := make(chan error, 1)
	go func() { result <- r.Run(ctx, sel) }()

	_, err := feed.Write([]byte("graphA\n"))
	require.NoError(t, err)
	<-selected
	// Run is back in the read with no more input coming.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-result:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run still blocked after cancel")
	}
	assert.Equal(t, "blank\ngraphA\n", out.String())
	assert.Equal(t, 0, sel.View.Subscribers())
}

func TestRunner_RequiresIO(t *testing.T) {
	sel := graphname.New()

	assert.Error(t, (&graphname.Runner{Output: &bytes.Buffer{}}).Run(context.Background(), sel))
	assert.Error(t, (&graphname.Runner{Input: strings.NewReader("")}).Run(context.Background(), sel))
}
