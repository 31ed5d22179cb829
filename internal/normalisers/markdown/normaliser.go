// Package markdown decodes Markdown manuscripts into plain text.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
	"github.com/makechair/text-analyzer/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles Markdown documents.
type Normaliser struct {
	md goldmark.Markdown
}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{md: goldmark.New()}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// Normalise parses the document and keeps the text of each block on its
// own line. Code blocks and raw HTML are dropped. The first level-1
// heading becomes the title.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	src := bytes.TrimPrefix(raw.Content, []byte{0xEF, 0xBB, 0xBF})
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%s: input is not valid UTF-8: %w", raw.URI, domain.ErrDecodeFailure)
	}

	root := n.md.Parser().Parse(text.NewReader(src))
	title, blocks := extract(root, src)

	doc := normalisers.NewDocument(raw, title, strings.Join(blocks, "\n"), "markdown")
	return &driven.NormaliseResult{
		Document: doc,
	}, nil
}

// extract collects the text of every leaf block in document order.
// Soft and hard line breaks inside a block are kept as newlines.
func extract(root ast.Node, src []byte) (string, []string) {
	var (
		title  string
		blocks []string
		buf    strings.Builder
	)

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if entering {
				buf.Reset()
				return ast.WalkContinue, nil
			}
			block := strings.TrimSpace(buf.String())
			if block == "" {
				break
			}
			blocks = append(blocks, block)
			if h, ok := node.(*ast.Heading); ok && h.Level == 1 && title == "" {
				title = block
			}

		case *ast.Text:
			if !entering {
				break
			}
			buf.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte('\n')
			}

		case *ast.String:
			if entering {
				buf.Write(node.Value)
			}
		}
		return ast.WalkContinue, nil
	})

	return title, blocks
}
