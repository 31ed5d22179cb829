package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/makechair/text-analyzer/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [path]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

The left pane lists notation variants by part of speech. Selecting a word
shows, in the right pane, every sentence containing each of its forms.

Controls:
  ↑/k, ↓/j - Navigate words
  Enter    - Show sentences
  Tab      - Switch pane
  s        - Cycle sort order
  a        - Toggle single-form words
  /        - Filter words
  o        - Open a file
  r        - Re-analyse
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func tuiPorts() *tui.Ports {
	ports := tui.NewPorts(analysisService, concordanceService, documentService)
	ports.Settings = settingsService
	return ports
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	app, err := tui.NewApp(tuiPorts())
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(commandContext(cmd))
	if len(args) == 1 {
		app.WithPath(args[0])
	}

	// Warm the dictionary while the UI starts.
	analysisService.Warm()

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
