// Package plaintext decodes plain text documents.
//
// Input is UTF-8 by default. Legacy Japanese encodings (Shift_JIS,
// EUC-JP, ISO-2022-JP) are decoded when configured, using the WHATWG
// encoding names understood by golang.org/x/text/encoding/htmlindex.
package plaintext

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
	"github.com/makechair/text-analyzer/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Normaliser handles plain text documents.
type Normaliser struct {
	charset string
	enc     encoding.Encoding
}

// New creates a UTF-8 plain text normaliser.
func New() *Normaliser {
	return &Normaliser{charset: "utf-8"}
}

// NewWithCharset creates a normaliser for the named character set.
// Empty or UTF-8 names select UTF-8.
func NewWithCharset(charset string) (*Normaliser, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" || name == "utf-8" || name == "utf8" {
		return New(), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", charset, domain.ErrInvalidInput)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = name
	}
	return &Normaliser{charset: strings.ToLower(canonical), enc: enc}, nil
}

// Charset returns the configured character set name.
func (n *Normaliser) Charset() string {
	return n.charset
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/plain"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise decodes raw bytes into text. A UTF-8 byte order mark is removed.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content, err := n.decode(raw.Content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", raw.URI, err)
	}

	doc := normalisers.NewDocument(raw, "", content, "text")
	doc.Metadata["charset"] = n.charset

	return &driven.NormaliseResult{
		Document: doc,
	}, nil
}

func (n *Normaliser) decode(data []byte) (string, error) {
	if n.enc == nil {
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return "", fmt.Errorf("input is not valid UTF-8: %w", domain.ErrDecodeFailure)
		}
		return string(data), nil
	}

	out, _, err := transform.Bytes(n.enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %v: %w", n.charset, err, domain.ErrDecodeFailure)
	}
	return string(bytes.TrimPrefix(out, utf8BOM)), nil
}
