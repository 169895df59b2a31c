package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	machinegraph "github.com/ratchet-dev/ratchet/internal/graph"
	"github.com/ratchet-dev/ratchet/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [definition]",
	Short: "Export the transition graph visualization",
	Long:  `Compiles the definition and outputs a Mermaid diagram (graph TD) of the state/action graph.`,
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := loadDocument(definitionPath(args))
		if err != nil {
			fmt.Printf("Error loading definition: %v\n", err)
			os.Exit(1)
		}

		def := doc.Definition()
		table := machinegraph.NewTable(def.Transitions)
		fmt.Print(graph.GenerateMermaid(table, def.Initial, nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
