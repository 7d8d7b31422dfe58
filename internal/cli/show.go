package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/graphname"
	"github.com/aretw0/graphname/internal/presentation/graph"
	"github.com/aretw0/graphname/internal/presentation/tui"
	"gopkg.in/yaml.v3"
)

// Show prints a snapshot of a fresh Selection in the requested format.
func Show(opts ShowOptions) error {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	logger, err := createLogger(opts.Stderr, opts.LogLevel)
	if err != nil {
		return err
	}

	sel := graphname.New(append(opts.selectionOptions(), graphname.WithLogger(logger))...)
	if opts.Select != "" {
		sel.Select(opts.Select)
	}
	snap := sel.Snapshot()

	switch opts.Format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()

	case FormatJSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)

	case FormatMarkdown:
		md := tui.SnapshotMarkdown(snap)
		if isTerminal(stdout) {
			render, err := tui.NewRenderer()
			if err != nil {
				return err
			}
			if md, err = render(md); err != nil {
				return fmt.Errorf("failed to render markdown: %w", err)
			}
		}
		_, err := fmt.Fprint(stdout, md)
		return err

	case FormatMermaid:
		_, err := fmt.Fprint(stdout, graph.GenerateMermaid(snap))
		return err
	}

	return fmt.Errorf("unknown output format %q (want yaml, json, markdown or mermaid)", opts.Format)
}
