package main

import (
	"fmt"
	"os"

	"github.com/ratchet-dev/ratchet/internal/compiler"
)

// loadDocument reads and parses a definition document from path.
func loadDocument(path string) (*compiler.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition %s: %w", path, err)
	}
	doc, err := compiler.NewParser().Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// definitionPath resolves the document path from args, defaulting to
// ratchet.yaml in the working directory.
func definitionPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "ratchet.yaml"
}
