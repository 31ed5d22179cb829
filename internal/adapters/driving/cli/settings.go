package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change analyzer settings.

Settings are stored in ~/.text-analyzer/config.toml. Keys use dot notation,
for example tokenizer.dictionary or display.sort.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting. The value is validated before it is saved.

Examples:
  text-analyzer settings set tokenizer.dictionary uni
  text-analyzer settings set display.sort freq_desc
  text-analyzer settings set history.enabled false`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Step through every setting. Press enter to keep the current value.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	section := ""
	for _, key := range settingsService.Keys() {
		value, err := settingsService.Value(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}

		name, field, _ := strings.Cut(key, ".")
		if name != section {
			if section != "" {
				cmd.Println()
			}
			cmd.Printf("[%s]\n", name)
			section = name
		}
		if value == "" {
			value = "(not set)"
		}
		cmd.Printf("  %-16s %s\n", field+":", value)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("text-analyzer Settings Wizard")
	cmd.Println("=============================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())
	changed := 0
	for _, key := range settingsService.Keys() {
		current, err := settingsService.Value(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}

		for {
			cmd.Printf("%s [%s]: ", key, current)
			input, eof := readLine(reader)
			if input == "" || input == current {
				if eof {
					cmd.Println()
					return finishWizard(cmd, changed)
				}
				break
			}
			if err := settingsService.Set(key, input); err != nil {
				cmd.Printf("Invalid value: %v\n", err)
				if eof {
					return finishWizard(cmd, changed)
				}
				continue
			}
			changed++
			break
		}
	}
	return finishWizard(cmd, changed)
}

func finishWizard(cmd *cobra.Command, changed int) error {
	cmd.Println()
	cmd.Printf("Configuration complete. %d setting(s) changed.\n", changed)
	return nil
}

// readLine reads one trimmed line and reports whether input has ended.
func readLine(reader *bufio.Reader) (string, bool) {
	input, err := reader.ReadString('\n')
	return strings.TrimSpace(input), errors.Is(err, io.EOF)
}
