package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ratchet-dev/ratchet/internal/graph"
	"github.com/ratchet-dev/ratchet/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [definition]",
	Short: "Check a definition for consistency",
	Long:  `Parses the definition, compiles its transition table and reports unknown initial states, states without transformers, unreachable states and invalid value schemas.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Definition is valid!")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(args []string) error {
	doc, err := loadDocument(definitionPath(args))
	if err != nil {
		return err
	}

	if _, err := doc.Schemas(); err != nil {
		return err
	}

	def := doc.Definition()
	table := graph.NewTable(def.Transitions)
	return validator.Validate(table, def.Initial, def.Transformers)
}
