package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	machinegraph "github.com/ratchet-dev/ratchet/internal/graph"
	"github.com/ratchet-dev/ratchet/internal/presentation/graph"
	"github.com/ratchet-dev/ratchet/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	table := machinegraph.NewTable(domain.TransitionsMap{
		"red":   {"turnGreen": "green"},
		"green": {"turnRed": "red"},
	})

	out := graph.GenerateMermaid(table, "red", nil)

	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, `red(("red"))`, "initial state is a circle")
	assert.Contains(t, out, `green["green"]`)
	assert.Contains(t, out, `red -- "turnGreen" --> green`)
	assert.Contains(t, out, `green -- "turnRed" --> red`)
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	table := machinegraph.NewTable(domain.TransitionsMap{
		"a": {"go": "b"},
		"b": {"back": "a"},
	})

	out := graph.GenerateMermaid(table, "a", &graph.Overlay{
		Current:      "b",
		Predecessors: []string{"a"},
	})

	assert.Contains(t, out, "class b current;")
	assert.Contains(t, out, "class a predecessor;")
}

func TestGenerateMermaid_SanitizesIDs(t *testing.T) {
	table := machinegraph.NewTable(domain.TransitionsMap{
		"full": {"empty": ""},
		"":     {"fill": "full"},
	})

	out := graph.GenerateMermaid(table, "full", nil)

	assert.Contains(t, out, `__empty__["(empty)"]`, "empty-string state stays visible")
	assert.NotContains(t, out, `[""]`)
}
