package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/graphname"
)

// GenerateMermaid produces a Mermaid flowchart of the cell, its derived view
// and their subscribers. While the name is still the initial one both nodes
// are styled as empty.
func GenerateMermaid(snap graphname.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	cell := sanitizeMermaidID(graphname.CellStoreName)
	view := sanitizeMermaidID(graphname.ViewStoreName)

	fmt.Fprintf(&sb, "    %s[(\"%s: %s\")]\n", cell, graphname.CellStoreName, escapeLabel(snap.Name))
	fmt.Fprintf(&sb, "    %s[/\"%s: %s\"/]\n", view, graphname.ViewStoreName, escapeLabel(snap.View))
	fmt.Fprintf(&sb, "    %s -->|identity| %s\n", cell, view)

	if n := snap.Subscribers.View; n > 0 {
		fmt.Fprintf(&sb, "    subs((\"%d subscriber(s)\"))\n", n)
		fmt.Fprintf(&sb, "    %s -.-> subs\n", view)
	}

	if snap.Name == snap.Initial {
		sb.WriteString("    classDef empty stroke-dasharray: 5 5\n")
		fmt.Fprintf(&sb, "    class %s,%s empty\n", cell, view)
	}

	return sb.String()
}

// sanitizeMermaidID replaces characters that break Mermaid node IDs.
func sanitizeMermaidID(id string) string {
	return strings.NewReplacer("-", "_", ".", "_", " ", "_", "/", "_").Replace(id)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
