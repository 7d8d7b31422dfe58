package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/graphname"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// SnapshotMarkdown describes a snapshot as a markdown document.
func SnapshotMarkdown(snap graphname.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("# Selected graph\n\n")
	fmt.Fprintf(&sb, "**%s**\n\n", snap.View)
	sb.WriteString("| store | value | subscribers |\n")
	sb.WriteString("|-------|-------|-------------|\n")
	fmt.Fprintf(&sb, "| %s | `%s` | %d |\n", graphname.CellStoreName, snap.Name, snap.Subscribers.Name)
	fmt.Fprintf(&sb, "| %s | `%s` | %d |\n", graphname.ViewStoreName, snap.View, snap.Subscribers.View)
	return sb.String()
}
