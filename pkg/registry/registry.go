// Package registry manages named transformers, so that machine definitions
// loaded from documents can reference value-computation functions by name.
package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ratchet-dev/ratchet/pkg/domain"
)

// Registry manages the available transformers.
type Registry struct {
	mu           sync.RWMutex
	transformers map[string]domain.Transformer
}

// New creates a registry preloaded with the built-in transformers:
// "echo" (first argument, or nil) and "join" (arguments joined with spaces).
func New() *Registry {
	r := &Registry{
		transformers: make(map[string]domain.Transformer),
	}
	r.Register("echo", domain.Echo)
	r.Register("join", join)
	return r
}

// Register adds a transformer to the registry.
// If a transformer with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn domain.Transformer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transformers[name] = fn
}

// Resolve looks up a transformer by name.
func (r *Registry) Resolve(name string) (domain.Transformer, error) {
	r.mu.RLock()
	fn, ok := r.transformers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("transformer not found: %s", name)
	}
	return fn, nil
}

func join(args ...any) (any, error) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, fmt.Sprintf("%v", a))
	}
	return strings.Join(parts, " "), nil
}
