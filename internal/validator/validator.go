// Package validator performs static checks on a compiled transition table:
// a known initial state, no dangling transformer references, and no states
// unreachable from the initial one.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ratchet-dev/ratchet/internal/graph"
	"github.com/ratchet-dev/ratchet/pkg/domain"
)

// Validate crawls the table from initial and reports every problem found.
func Validate(table *graph.Table, initial string, transformers map[string]domain.Transformer) error {
	states := table.States()
	known := make(map[string]bool, len(states))
	for _, s := range states {
		known[s] = true
	}

	var problems []string

	if !known[initial] {
		problems = append(problems, fmt.Sprintf("initial state %q not found in transition table", initial))
	}

	if transformers != nil {
		for _, s := range states {
			if _, ok := transformers[s]; !ok {
				problems = append(problems, fmt.Sprintf("state %q has no transformer", s))
			}
		}
	}

	// Reachability crawl from the initial state.
	if known[initial] {
		visited := map[string]bool{initial: true}
		queue := []string{initial}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, action := range table.ActionsOf(current) {
				to, _ := table.DestinationOf(current, action)
				if !visited[to] {
					visited[to] = true
					queue = append(queue, to)
				}
			}
		}

		var unreachable []string
		for _, s := range states {
			if !visited[s] {
				unreachable = append(unreachable, s)
			}
		}
		sort.Strings(unreachable)
		for _, s := range unreachable {
			problems = append(problems, fmt.Sprintf("state %q is unreachable from %q", s, initial))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("definition validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
