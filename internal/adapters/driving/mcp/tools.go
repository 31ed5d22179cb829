package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
)

// AnalyzeTextInput is the input schema for the analyze_text tool.
type AnalyzeTextInput struct {
	Text           string `json:"text" jsonschema:"the Japanese text to check"`
	Source         string `json:"source,omitempty" jsonschema:"a label for the text, shown in history"`
	IncludeSymbols bool   `json:"include_symbols,omitempty" jsonschema:"also group punctuation and symbols"`
	Sort           string `json:"sort,omitempty" jsonschema:"group order: kana, freq_desc or freq_asc (default kana)"`
	ShowAll        bool   `json:"show_all,omitempty" jsonschema:"include readings seen in a single form"`
	Query          string `json:"query,omitempty" jsonschema:"keep only groups whose reading or words contain this text"`
}

// AnalyzeFileInput is the input schema for the analyze_file tool.
type AnalyzeFileInput struct {
	Path           string `json:"path" jsonschema:"path to a .txt, .md or .docx file"`
	IncludeSymbols bool   `json:"include_symbols,omitempty" jsonschema:"also group punctuation and symbols"`
	Sort           string `json:"sort,omitempty" jsonschema:"group order: kana, freq_desc or freq_asc (default kana)"`
	ShowAll        bool   `json:"show_all,omitempty" jsonschema:"include readings seen in a single form"`
	Query          string `json:"query,omitempty" jsonschema:"keep only groups whose reading or words contain this text"`
}

// AnalyzeOutput is the output schema for the analyze tools.
type AnalyzeOutput struct {
	ID                string           `json:"id"`
	Source            string           `json:"source,omitempty"`
	SentenceCount     int              `json:"sentence_count"`
	GroupCount        int              `json:"group_count"`
	VariantGroupCount int              `json:"variant_group_count"`
	Categories        []CategoryOutput `json:"categories"`
}

// CategoryOutput is one category of the word list.
type CategoryOutput struct {
	Category string        `json:"category"`
	Groups   []GroupOutput `json:"groups"`
}

// GroupOutput is one reading and its surface forms.
type GroupOutput struct {
	Reading     string          `json:"reading"`
	PrimaryWord string          `json:"primary_word"`
	TotalCount  int             `json:"total_count"`
	Variants    []VariantOutput `json:"variants"`
}

// VariantOutput is a surface form and its count.
type VariantOutput struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ConcordanceInput is the input schema for the concordance tool.
type ConcordanceInput struct {
	Reading  string `json:"reading" jsonschema:"the katakana reading of a group"`
	ReportID string `json:"report_id,omitempty" jsonschema:"history report to read; defaults to the last analysis"`
}

// ConcordanceOutput is the output schema for the concordance tool.
type ConcordanceOutput struct {
	Reading string        `json:"reading"`
	Entries []EntryOutput `json:"entries"`
}

// EntryOutput lists the sentences attributed to one word.
type EntryOutput struct {
	Word      string           `json:"word"`
	Sentences []SentenceOutput `json:"sentences"`
}

// SentenceOutput is a sentence with its source line.
type SentenceOutput struct {
	Index int    `json:"index"`
	Line  int    `json:"line"`
	Text  string `json:"text"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_text",
		Description: "Find words written in more than one way (表記揺れ) in Japanese text",
	}, s.handleAnalyzeText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_file",
		Description: "Find notation variants in a local text, Markdown or Word file",
	}, s.handleAnalyzeFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "concordance",
		Description: "List the sentences in which each variant of a reading appears",
	}, s.handleConcordance)
}

// handleAnalyzeText handles the analyze_text tool invocation.
func (s *Server) handleAnalyzeText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeTextInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	source := input.Source
	if source == "" {
		source = "mcp"
	}
	return s.analyze(ctx, input.Text, source, input.IncludeSymbols,
		listOptions(input.Sort, input.ShowAll, input.Query))
}

// handleAnalyzeFile handles the analyze_file tool invocation.
func (s *Server) handleAnalyzeFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeFileInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	if s.ports.Document == nil {
		return nil, AnalyzeOutput{}, errors.New("file analysis is not available")
	}
	if input.Path == "" {
		return nil, AnalyzeOutput{}, fmt.Errorf("path is required: %w", domain.ErrInvalidInput)
	}

	doc, err := s.ports.Document.Load(ctx, input.Path)
	if err != nil {
		return nil, AnalyzeOutput{}, fmt.Errorf("loading %s: %w", input.Path, err)
	}
	return s.analyze(ctx, doc.Content, input.Path, input.IncludeSymbols,
		listOptions(input.Sort, input.ShowAll, input.Query))
}

func (s *Server) analyze(
	ctx context.Context,
	text, source string,
	includeSymbols bool,
	list domain.ListOptions,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	opts := domain.DefaultAnalysisOptions()
	opts.Filter.ExcludeSymbols = !includeSymbols

	result, err := s.ports.Analysis.Analyze(ctx, driving.AnalyzeRequest{
		Text:    text,
		Source:  source,
		Options: &opts,
	})
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	categories := s.ports.Concordance.List(result, list)

	return nil, AnalyzeOutput{
		ID:                result.ID,
		Source:            result.Source,
		SentenceCount:     len(result.Sentences),
		GroupCount:        result.GroupCount(),
		VariantGroupCount: result.VariantGroupCount(),
		Categories:        toCategoryOutputs(categories),
	}, nil
}

// handleConcordance handles the concordance tool invocation.
func (s *Server) handleConcordance(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConcordanceInput,
) (*mcp.CallToolResult, ConcordanceOutput, error) {
	var (
		view domain.ConcordanceView
		err  error
	)

	if input.ReportID != "" {
		if s.ports.Reports == nil || !s.ports.Reports.Enabled() {
			return nil, ConcordanceOutput{}, errors.New("history is disabled")
		}
		report, getErr := s.ports.Reports.Get(ctx, input.ReportID)
		if getErr != nil {
			return nil, ConcordanceOutput{}, fmt.Errorf("getting report %s: %w", input.ReportID, getErr)
		}
		view = s.ports.Concordance.Concordance(report.Result, input.Reading)
	} else {
		view, err = s.ports.Concordance.ForLast(input.Reading)
		if err != nil {
			return nil, ConcordanceOutput{}, err
		}
	}

	return nil, toConcordanceOutput(view), nil
}

// listOptions builds list options, falling back to kana order for an
// unknown sort.
func listOptions(sort string, showAll bool, query string) domain.ListOptions {
	order := domain.SortOrder(sort)
	if !order.IsValid() {
		order = domain.SortKana
	}
	return domain.ListOptions{Sort: order, ShowAll: showAll, Query: query}
}

func toCategoryOutputs(categories []domain.CategoryGroups) []CategoryOutput {
	out := make([]CategoryOutput, len(categories))
	for i, cg := range categories {
		groups := make([]GroupOutput, len(cg.Groups))
		for j, g := range cg.Groups {
			variants := make([]VariantOutput, len(g.Variants))
			for k, v := range g.Variants {
				variants[k] = VariantOutput{Word: v.Word, Count: v.Count}
			}
			groups[j] = GroupOutput{
				Reading:     g.Reading,
				PrimaryWord: g.PrimaryWord,
				TotalCount:  g.TotalCount,
				Variants:    variants,
			}
		}
		out[i] = CategoryOutput{Category: cg.Category.String(), Groups: groups}
	}
	return out
}

func toConcordanceOutput(view domain.ConcordanceView) ConcordanceOutput {
	out := ConcordanceOutput{
		Reading: view.Reading,
		Entries: make([]EntryOutput, len(view.Entries)),
	}
	for i, e := range view.Entries {
		sentences := make([]SentenceOutput, len(e.Sentences))
		for j, st := range e.Sentences {
			sentences[j] = SentenceOutput{Index: st.Index, Line: st.Line, Text: st.Text}
		}
		out.Entries[i] = EntryOutput{Word: e.Word, Sentences: sentences}
	}
	return out
}
