package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		words []string
		want  []Span
	}{
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "no words",
			text: "猫がいる。",
			want: []Span{{Text: "猫がいる。"}},
		},
		{
			name:  "single match",
			text:  "猫がいる。",
			words: []string{"猫"},
			want:  []Span{{Text: "猫", Highlight: true}, {Text: "がいる。"}},
		},
		{
			name:  "several matches",
			text:  "猫とねこと猫。",
			words: []string{"猫", "ねこ"},
			want: []Span{
				{Text: "猫", Highlight: true},
				{Text: "と"},
				{Text: "ねこ", Highlight: true},
				{Text: "と"},
				{Text: "猫", Highlight: true},
				{Text: "。"},
			},
		},
		{
			name:  "longest word wins",
			text:  "東京都に行く",
			words: []string{"東京", "東京都"},
			want:  []Span{{Text: "東京都", Highlight: true}, {Text: "に行く"}},
		},
		{
			name:  "empty words ignored",
			text:  "あいう",
			words: []string{"", "い"},
			want:  []Span{{Text: "あ"}, {Text: "い", Highlight: true}, {Text: "う"}},
		},
		{
			name:  "no occurrence",
			text:  "あいう",
			words: []string{"か"},
			want:  []Span{{Text: "あいう"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.text, tt.words))
		})
	}
}

func TestRender(t *testing.T) {
	spans := Highlight("猫と犬", []string{"猫", "犬"})

	assert.Equal(t, "[猫]と[犬]", Render(spans, func(s string) string { return "[" + s + "]" }))
	assert.Equal(t, "猫と犬", Render(spans, nil))
}
