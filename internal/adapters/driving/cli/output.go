package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/pipeline"
)

// outputFormat selects how results are written.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(s)); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml): %w", s, domain.ErrInvalidInput)
	}
}

// analysisOutput is the machine-readable form of one analysed input.
type analysisOutput struct {
	ID                string                  `json:"id" yaml:"id"`
	Source            string                  `json:"source" yaml:"source"`
	SentenceCount     int                     `json:"sentence_count" yaml:"sentence_count"`
	GroupCount        int                     `json:"group_count" yaml:"group_count"`
	VariantGroupCount int                     `json:"variant_group_count" yaml:"variant_group_count"`
	Categories        []domain.CategoryGroups `json:"categories" yaml:"categories"`
}

func newAnalysisOutput(result *domain.AnalysisResult, groups []domain.CategoryGroups) analysisOutput {
	if groups == nil {
		groups = []domain.CategoryGroups{}
	}
	return analysisOutput{
		ID:                result.ID,
		Source:            result.Source,
		SentenceCount:     len(result.Sentences),
		GroupCount:        result.GroupCount(),
		VariantGroupCount: result.VariantGroupCount(),
		Categories:        groups,
	}
}

// encoder writes a stream of documents in a structured format.
type encoder interface {
	Encode(v any) error
}

func newEncoder(w io.Writer, f outputFormat) encoder {
	if f == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return enc
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc
}

// marker decorates text in terminal output.
type marker struct {
	heading   func(string) string
	highlight func(string) string
	muted     func(string) string
}

func plainMarker() marker {
	same := func(s string) string { return s }
	return marker{heading: same, highlight: same, muted: same}
}

func colourMarker() marker {
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	highlight := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	return marker{heading: renderWith(heading), highlight: renderWith(highlight), muted: renderWith(muted)}
}

// renderWith adapts a style to a single-string marker.
func renderWith(st lipgloss.Style) func(string) string {
	return func(s string) string { return st.Render(s) }
}

// markerFor returns a colour marker when cmd writes to a terminal.
func markerFor(cmd *cobra.Command) marker {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(f.Fd())) {
		return plainMarker()
	}
	return colourMarker()
}

func summaryLine(result *domain.AnalysisResult) string {
	return fmt.Sprintf("%d groups, %d with variants, %d sentences",
		result.GroupCount(), result.VariantGroupCount(), len(result.Sentences))
}

// printGroups writes a word list in the category layout.
func printGroups(cmd *cobra.Command, groups []domain.CategoryGroups, m marker) {
	if len(groups) == 0 {
		cmd.Println("  No notation variants found.")
		return
	}
	for _, cg := range groups {
		cmd.Println(m.heading("■ " + string(cg.Category)))
		for _, g := range cg.Groups {
			cmd.Printf("  %s (合計: %d)  %s\n", g.PrimaryWord, g.TotalCount, m.muted("["+g.Reading+"]"))
			if g.HasVariants() {
				cmd.Printf("      %s\n", variantLine(g))
			}
		}
	}
}

func variantLine(g domain.DisplayGroup) string {
	parts := make([]string, len(g.Variants))
	for i, v := range g.Variants {
		parts[i] = fmt.Sprintf("%s %d", v.Word, v.Count)
	}
	return strings.Join(parts, "・")
}

// printConcordance writes the sentences of each variant with line numbers.
func printConcordance(cmd *cobra.Command, group domain.DisplayGroup, view domain.ConcordanceView, m marker) {
	cmd.Printf("%s [%s] 合計: %d\n", m.heading(group.PrimaryWord), group.Reading, group.TotalCount)
	if len(view.Entries) == 0 {
		cmd.Println("  (No sentences)")
		return
	}
	words := view.Words()
	for _, e := range view.Entries {
		cmd.Println()
		cmd.Println(m.heading(fmt.Sprintf("■ %s (%d)", e.Word, len(e.Sentences))))
		for _, s := range e.Sentences {
			text := strings.ReplaceAll(strings.TrimRight(s.Text, "\n"), "\n", " ")
			line := pipeline.Render(pipeline.Highlight(text, words), m.highlight)
			cmd.Printf("%s %s\n", m.muted(fmt.Sprintf("%5d", s.Line)), line)
		}
	}
}

// resolveGroup finds the group for arg, which may be a reading or any
// surface form of the group.
func resolveGroup(result *domain.AnalysisResult, arg string) (domain.DisplayGroup, error) {
	if g, ok := result.Group(arg); ok {
		return g, nil
	}
	for _, cg := range result.Categories {
		for _, g := range cg.Groups {
			for _, v := range g.Variants {
				if v.Word == arg {
					return g, nil
				}
			}
		}
	}
	return domain.DisplayGroup{}, fmt.Errorf("word %q: %w", arg, domain.ErrNotFound)
}
