package pipeline

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

// isTerminator reports whether r ends a sentence.
func isTerminator(r rune) bool {
	switch r {
	case '。', '？', '！', '\n':
		return true
	default:
		return false
	}
}

// lineTable maps byte offsets to one-based line numbers.
// ends[i] is the offset of the newline closing line i+1; for the final
// line it is one past the end of the text.
type lineTable struct {
	ends []int
}

func newLineTable(text string) lineTable {
	lines := strings.Split(text, "\n")
	ends := make([]int, len(lines))
	last := -1
	for i, line := range lines {
		last += len(line) + 1
		ends[i] = last
	}
	return lineTable{ends: ends}
}

// lineOf returns the first line whose end offset is at or after offset,
// or the last line when none is.
func (t lineTable) lineOf(offset int) int {
	i := sort.SearchInts(t.ends, offset)
	if i >= len(t.ends) {
		return len(t.ends)
	}
	return i + 1
}

// SplitSentences segments text at 。？！ and newline.
// The terminator stays with its sentence, whitespace-only spans are
// dropped, and a trailing fragment without a terminator is kept.
func SplitSentences(text string) []domain.Sentence {
	if text == "" {
		return nil
	}

	lines := newLineTable(text)
	var sentences []domain.Sentence
	add := func(start, end int) {
		span := text[start:end]
		if strings.TrimSpace(span) == "" {
			return
		}
		sentences = append(sentences, domain.Sentence{
			Index: len(sentences),
			Line:  lines.lineOf(start),
			Text:  span,
		})
	}

	start := 0
	for i, r := range text {
		if isTerminator(r) {
			end := i + utf8.RuneLen(r)
			add(start, end)
			start = end
		}
	}
	if start < len(text) {
		add(start, len(text))
	}

	return sentences
}
