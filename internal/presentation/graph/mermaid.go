// Package graph renders transition tables as Mermaid flowcharts for
// documentation and the CLI graph command.
package graph

import (
	"fmt"
	"strings"

	machinegraph "github.com/ratchet-dev/ratchet/internal/graph"
)

// Overlay contains dynamic state data to visualize on the graph.
type Overlay struct {
	Current      string
	Predecessors []string
}

// GenerateMermaid produces Mermaid flowchart syntax from a transition table.
// The initial state is drawn as a circle, every other state as a rectangle;
// each edge is labeled with its action name. Overlay styling highlights the
// current state and its predecessors if provided.
func GenerateMermaid(table *machinegraph.Table, initial string, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, state := range table.States() {
		safeID := sanitizeMermaidID(state)
		label := displayName(state)

		opener, closer := "[", "]"
		if state == initial {
			opener, closer = "((", "))" // Circle
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))
	}

	table.Edges(func(from, action, to string) {
		safeAction := strings.ReplaceAll(action, "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
			sanitizeMermaidID(from), safeAction, sanitizeMermaidID(to)))
	})

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast regardless of theme
		sb.WriteString("    classDef predecessor fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		if len(overlay.Predecessors) > 0 {
			ids := make([]string, 0, len(overlay.Predecessors))
			for _, p := range overlay.Predecessors {
				ids = append(ids, sanitizeMermaidID(p))
			}
			sb.WriteString(fmt.Sprintf("    class %s predecessor;\n", strings.Join(ids, ",")))
		}
		if overlay.Current != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.Current)))
		}
	}

	return sb.String()
}

// displayName keeps the empty-string state visible in diagrams.
func displayName(state string) string {
	if state == "" {
		return "(empty)"
	}
	return strings.ReplaceAll(state, "\"", "'")
}

// sanitizeMermaidID strips characters Mermaid cannot digest in node IDs.
func sanitizeMermaidID(id string) string {
	if id == "" {
		return "__empty__"
	}
	var sb strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
