package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/graphname"
	"github.com/aretw0/graphname/internal/presentation/tui"
	"github.com/aretw0/graphname/pkg/observability"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
)

// RunWatch reads graph names from Stdin and prints every view update to Stdout
// until EOF, "quit", or ctx is cancelled.
func RunWatch(ctx context.Context, opts WatchOptions) error {
	stdin, stdout, stderr := opts.Stdin, opts.Stdout, opts.Stderr
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	logger, err := createLogger(stderr, opts.LogLevel)
	if err != nil {
		return err
	}

	selOpts := append(opts.selectionOptions(), graphname.WithLogger(logger))

	var reg *prometheus.Registry
	if opts.Metrics {
		reg = prometheus.NewRegistry()
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		selOpts = append(selOpts, graphname.WithHooks(metrics.Hooks()))
	}

	sel := graphname.New(selOpts...)

	interactive := !opts.Headless && isTerminal(stdout)
	r := graphname.NewRunner()
	r.Input = stdin
	r.Output = stdout
	r.Headless = !interactive
	if interactive {
		profile := termenv.NewOutput(stdout).Profile
		r.Banner = func(w io.Writer) { tui.PrintBanner(w, profile) }
		r.Renderer = tui.NameRenderer(profile, sel.Initial())
	}

	logger.Debug("watch started", "initial", sel.Current(), "interactive", interactive)
	runErr := r.Run(ctx, sel)
	logger.Debug("watch finished", "final", sel.Current())

	if reg != nil {
		if err := writeMetrics(stderr, reg); err != nil {
			logger.Error("metrics dump failed", "error", err)
		}
	}

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}
