package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ratchet-dev/ratchet"
	"github.com/ratchet-dev/ratchet/internal/logging"
	"github.com/ratchet-dev/ratchet/internal/presentation/tui"
	"github.com/ratchet-dev/ratchet/pkg/registry"
)

var runCmd = &cobra.Command{
	Use:   "run [definition]",
	Short: "Step through a definition interactively",
	Long: `Loads the definition with echo transformers and starts an interactive
stepper: each line is "<action> [value]", dispatched against the current
snapshot. Type "quit" to exit.`,
	Run: func(cmd *cobra.Command, args []string) {
		levelName, _ := cmd.Flags().GetString("log-level")
		if err := runStepper(args, levelName); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runStepper(args []string, levelName string) error {
	doc, err := loadDocument(definitionPath(args))
	if err != nil {
		return err
	}

	schemas, err := doc.Schemas()
	if err != nil {
		return err
	}

	opts := []ratchet.Option{
		ratchet.WithLogger(logging.New(logging.ParseLevel(levelName))),
	}
	if schemas != nil {
		opts = append(opts, ratchet.WithValidator(schemas))
	}

	def, err := doc.DefinitionUsing(registry.New())
	if err != nil {
		return err
	}

	m, err := ratchet.New(def, opts...)
	if err != nil {
		return err
	}

	renderer := tui.NewRenderer()
	reader := bufio.NewReader(os.Stdin)

	unsubscribe := m.Subscribe(func() {
		state, _ := m.Get().State()
		fmt.Println(renderer.Info("-> " + displayState(state)))
	})
	defer unsubscribe()

	for {
		snap := m.Get()
		state, err := snap.State()
		if err != nil {
			return err
		}
		value, err := snap.Value()
		if err != nil {
			return err
		}
		surface, err := snap.Actions()
		if err != nil {
			return err
		}

		fmt.Println(renderer.StateLine(state, value, surface.Names()))
		if len(surface.Names()) == 0 {
			return nil
		}

		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return nil
		}

		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}

		var dispatchArgs []any
		if len(fields) > 1 {
			dispatchArgs = append(dispatchArgs, strings.Join(fields[1:], " "))
		}

		if _, err := surface.Invoke(fields[0], dispatchArgs...); err != nil {
			fmt.Println(renderer.Error(err))
		}
	}
}

func displayState(state string) string {
	if state == "" {
		return "(empty)"
	}
	return state
}
