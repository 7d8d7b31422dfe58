package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes a short coloured banner for interactive sessions.
func PrintBanner(w io.Writer, p termenv.Profile) {
	title := p.String(" graphname ").Foreground(p.Color("#818cf8")).Bold()
	hint := p.String("type a graph name, 'quit' to exit").Foreground(p.Color("#a78bfa")).Faint()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", title, hint)
	fmt.Fprintln(w)
}

// NameRenderer returns a renderer that colours graph names. The placeholder
// name is dimmed so an empty selection stands out.
func NameRenderer(p termenv.Profile, placeholder string) func(string) (string, error) {
	return func(name string) (string, error) {
		if name == placeholder {
			return p.String(name).Foreground(p.Color("#6b7280")).Italic().String(), nil
		}
		return p.String(name).Foreground(p.Color("#f472b6")).Bold().String(), nil
	}
}
