package cli

import (
	"io"

	"github.com/aretw0/graphname"
)

// Options holds settings shared by every command.
type Options struct {
	InitialName   string
	SkipUnchanged bool
	LogLevel      string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// WatchOptions configures RunWatch.
type WatchOptions struct {
	Options

	Headless bool // no banner, prompt or colour
	Metrics  bool // dump Prometheus text metrics to Stderr on exit
}

// Output formats accepted by Show.
const (
	FormatYAML     = "yaml"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatMermaid  = "mermaid"
)

// ShowOptions configures Show.
type ShowOptions struct {
	Options

	Format string
	Select string // optional name to select before the snapshot is taken
}

func (o Options) selectionOptions() []graphname.Option {
	opts := []graphname.Option{}
	if o.InitialName != "" {
		opts = append(opts, graphname.WithInitialName(o.InitialName))
	}
	if o.SkipUnchanged {
		opts = append(opts, graphname.WithSkipUnchanged())
	}
	return opts
}
