package graphname

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Runner drives a Selection from line-oriented input and prints the view.
// Each non-blank input line is selected as the new graph name.
// This allows for easy testing and integration with different frontends (CLI, pipes, tests).
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool // no banner, no prompt
	Renderer ContentRenderer
	Banner   func(io.Writer) // replaces the default banner line
}

// ContentRenderer transforms a graph name before it is printed.
// This allows for terminal styling without coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a Runner. Input and Output must be set before Run.
func NewRunner() *Runner {
	return &Runner{}
}

// Run subscribes to the view, then reads names until EOF, "exit"/"quit",
// or ctx is done. It returns ctx.Err() on cancellation, including while a
// read is blocked. A blocked read is abandoned, not interrupted.
func (r *Runner) Run(ctx context.Context, sel *Selection) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	writer := r.Output
	if writer == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	if !r.Headless {
		if r.Banner != nil {
			r.Banner(writer)
		} else {
			fmt.Fprintln(writer, "--- graphname (type a graph name, 'quit' to exit) ---")
		}
	}

	var printErr error
	stop := sel.View.Subscribe(func(name string) {
		output := name
		if r.Renderer != nil {
			if rendered, err := r.Renderer(name); err == nil {
				output = rendered
			}
		}
		if _, err := fmt.Fprintln(writer, output); err != nil && printErr == nil {
			printErr = err
		}
	})
	defer stop()

	done := make(chan struct{})
	defer close(done)
	lines := scanLines(r.Input, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if printErr != nil {
			return fmt.Errorf("output error: %w", printErr)
		}

		if !r.Headless {
			fmt.Fprint(writer, "> ")
		}

		var line scannedLine
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line = <-lines:
		}
		if line.eof {
			if line.err != nil {
				return fmt.Errorf("input error: %w", line.err)
			}
			// Graceful exit on EOF
			return nil
		}

		input := strings.TrimSpace(line.text)
		switch input {
		case "":
			continue
		case "exit", "quit":
			if !r.Headless {
				fmt.Fprintln(writer, "Bye!")
			}
			return nil
		}

		sel.Select(input)
	}
}

type scannedLine struct {
	text string
	eof  bool
	err  error
}

// scanLines reads r in its own goroutine so Run can stop on ctx while a read
// is blocked. The goroutine exits after the next line once done is closed.
func scanLines(r io.Reader, done <-chan struct{}) <-chan scannedLine {
	out := make(chan scannedLine)
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case out <- scannedLine{text: scanner.Text()}:
			case <-done:
				return
			}
		}
		select {
		case out <- scannedLine{eof: true, err: scanner.Err()}:
		case <-done:
		}
	}()
	return out
}
