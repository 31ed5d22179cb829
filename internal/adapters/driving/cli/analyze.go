package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path|glob]...",
	Short: "Analyse documents for notation variants",
	Long: `Analyse one or more documents and list words that share a reading but
are written in different ways.

Arguments may be files, directories or glob patterns (for example
"docs/**/*.md"). Each file is analysed in turn. Use --stdin to read plain
text from standard input instead.

Examples:
  text-analyzer analyze draft.txt
  text-analyzer analyze --sort freq_desc --format json "chapters/*.docx"
  cat draft.txt | text-analyzer analyze --stdin`,
	Aliases: []string{"analyse"},
	RunE:    runAnalyze,
}

// Flags for the analyze command.
var (
	analyzeFormat         string
	analyzeSort           string
	analyzeAll            bool
	analyzeQuery          string
	analyzeStdin          bool
	analyzeIncludeSymbols bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "text", "output format: text, json or yaml")
	analyzeCmd.Flags().StringVarP(&analyzeSort, "sort", "s", "", "group order: kana, freq_desc or freq_asc (default from settings)")
	analyzeCmd.Flags().BoolVarP(&analyzeAll, "all", "a", false, "include words with a single written form")
	analyzeCmd.Flags().StringVarP(&analyzeQuery, "query", "q", "", "only list groups whose reading or forms contain this text")
	analyzeCmd.Flags().BoolVar(&analyzeStdin, "stdin", false, "read plain text from standard input")
	analyzeCmd.Flags().BoolVar(&analyzeIncludeSymbols, "include-symbols", false, "keep symbol tokens in the analysis")
	rootCmd.AddCommand(analyzeCmd)
}

// analyzeInput is one text to analyse.
type analyzeInput struct {
	source string
	text   string
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil || concordanceService == nil {
		return errors.New("analysis service not configured")
	}

	format, err := parseFormat(analyzeFormat)
	if err != nil {
		return err
	}
	listOpts, err := listOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	inputs, err := analyzeInputs(ctx, cmd, args)
	if err != nil {
		return err
	}

	var opts *domain.AnalysisOptions
	if cmd.Flags().Changed("include-symbols") {
		o := currentAnalysisOptions()
		o.Filter.ExcludeSymbols = !analyzeIncludeSymbols
		opts = &o
	}

	var enc encoder
	if format != formatText {
		enc = newEncoder(cmd.OutOrStdout(), format)
	}
	m := markerFor(cmd)

	for i, in := range inputs {
		result, err := analysisService.Analyze(ctx, driving.AnalyzeRequest{
			Text:    in.text,
			Source:  in.source,
			Options: opts,
		})
		if err != nil {
			return fmt.Errorf("analysing %s: %w", in.source, err)
		}
		groups := concordanceService.List(result, listOpts)

		if enc != nil {
			if err := enc.Encode(newAnalysisOutput(result, groups)); err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
			continue
		}

		if i > 0 {
			cmd.Println()
		}
		if len(inputs) > 1 || in.source != "stdin" {
			cmd.Println(m.heading("== " + in.source + " =="))
		}
		printGroups(cmd, groups, m)
		cmd.Println()
		cmd.Println(summaryLine(result))
	}
	return nil
}

// analyzeInputs reads the texts named by args, or stdin.
func analyzeInputs(ctx context.Context, cmd *cobra.Command, args []string) ([]analyzeInput, error) {
	if analyzeStdin {
		if len(args) > 0 {
			return nil, fmt.Errorf("--stdin takes no path arguments: %w", domain.ErrInvalidInput)
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []analyzeInput{{source: "stdin", text: string(data)}}, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("requires at least one path, or --stdin: %w", domain.ErrInvalidInput)
	}
	if documentService == nil {
		return nil, errors.New("document service not configured")
	}

	paths, err := documentService.Expand(args)
	if err != nil {
		return nil, fmt.Errorf("expanding paths: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no supported files match %v: %w", args, domain.ErrNotFound)
	}

	inputs := make([]analyzeInput, 0, len(paths))
	for _, p := range paths {
		doc, err := documentService.Load(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", p, err)
		}
		inputs = append(inputs, analyzeInput{source: p, text: doc.Content})
	}
	return inputs, nil
}

// listOptionsFromFlags merges the display flags over the saved settings.
func listOptionsFromFlags(cmd *cobra.Command) (domain.ListOptions, error) {
	opts := savedListOptions()
	if analyzeSort != "" {
		order := domain.SortOrder(analyzeSort)
		if !order.IsValid() {
			return opts, fmt.Errorf("unknown sort %q (want kana, freq_desc or freq_asc): %w", analyzeSort, domain.ErrInvalidInput)
		}
		opts.Sort = order
	}
	if cmd.Flags().Changed("all") {
		opts.ShowAll = analyzeAll
	}
	opts.Query = analyzeQuery
	return opts, nil
}

// savedListOptions returns the display settings, or the defaults.
func savedListOptions() domain.ListOptions {
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			return s.ListOptions()
		}
	}
	return domain.DefaultAppSettings().ListOptions()
}

func currentAnalysisOptions() domain.AnalysisOptions {
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			return s.AnalysisOptions()
		}
	}
	return domain.DefaultAnalysisOptions()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
