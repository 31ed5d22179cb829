package pipeline

import (
	"sort"
	"strings"
)

// Span is a run of sentence text, marked when it matches a keyword.
type Span struct {
	Text      string
	Highlight bool
}

// Highlight splits text into spans, marking every occurrence of words.
// Matching runs left to right and prefers the longest word at each
// position. Empty words are ignored.
func Highlight(text string, words []string) []Span {
	keys := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			keys = append(keys, w)
		}
	}
	if text == "" {
		return nil
	}
	if len(keys) == 0 {
		return []Span{{Text: text}}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return len(keys[i]) > len(keys[j])
	})

	var spans []Span
	plain := 0
	for i := 0; i < len(text); {
		match := ""
		for _, k := range keys {
			if strings.HasPrefix(text[i:], k) {
				match = k
				break
			}
		}
		if match == "" {
			i++
			continue
		}
		if plain < i {
			spans = append(spans, Span{Text: text[plain:i]})
		}
		spans = append(spans, Span{Text: match, Highlight: true})
		i += len(match)
		plain = i
	}
	if plain < len(text) {
		spans = append(spans, Span{Text: text[plain:]})
	}

	return spans
}

// Render joins spans, wrapping highlighted runs with mark.
func Render(spans []Span, mark func(string) string) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Highlight && mark != nil {
			b.WriteString(mark(s.Text))
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}
