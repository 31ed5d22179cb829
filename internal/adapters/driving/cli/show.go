package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/makechair/text-analyzer/internal/core/ports/driving"
)

var showCmd = &cobra.Command{
	Use:   "show [path] [word]",
	Short: "Show the sentences containing each variant of a word",
	Long: `Analyse a document and print, for one word, every sentence in which
each of its written forms appears, with source line numbers.

The word may be given as its katakana reading or as any of its forms.

Example:
  text-analyzer show draft.txt 林檎`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if analysisService == nil || concordanceService == nil {
		return errors.New("analysis service not configured")
	}
	if documentService == nil {
		return errors.New("document service not configured")
	}

	path, word := args[0], args[1]
	ctx := commandContext(cmd)

	doc, err := documentService.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	result, err := analysisService.Analyze(ctx, driving.AnalyzeRequest{Text: doc.Content, Source: path})
	if err != nil {
		return fmt.Errorf("analysing %s: %w", path, err)
	}

	group, err := resolveGroup(result, word)
	if err != nil {
		return err
	}
	printConcordance(cmd, group, concordanceService.Concordance(result, group.Reading), markerFor(cmd))
	return nil
}
