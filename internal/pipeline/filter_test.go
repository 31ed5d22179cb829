package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

func TestAdmit(t *testing.T) {
	strict := domain.FilterPolicy{ExcludeSymbols: true}
	lenient := domain.FilterPolicy{ExcludeSymbols: false}

	tests := []struct {
		name    string
		token   domain.Token
		strict  bool
		lenient bool
	}{
		{"noun", noun("猫", "ネコ"), true, true},
		{"verb", verb("走る", "ハシル"), true, true},
		{"adverb", tok("とても", "トテモ", "副詞", "一般"), true, true},
		{"interjection", tok("ああ", "アア", "感動詞"), true, true},
		{"particle", particle("は", "ハ"), false, false},
		{"auxiliary verb", tok("です", "デス", "助動詞"), false, false},
		{"conjunction", tok("しかし", "シカシ", "接続詞"), false, false},
		{"adnominal", tok("この", "コノ", "連体詞"), false, false},
		{"symbol", symbol("。"), false, true},
		{"missing reading", noun("ＡＢＣ", ""), false, false},
		{"asterisk reading", noun("ｘｙｚ", "*"), false, false},
		{"no part of speech", tok("謎", "ナゾ"), true, true},
		{"unknown base form", domain.Token{Surface: "ほげ", Reading: "ホゲ", PartOfSpeech: []string{"名詞"}, BaseForm: "*"}, false, false},
		{"empty base form", domain.Token{Surface: "猫", Reading: "ネコ", PartOfSpeech: []string{"名詞"}}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.strict, Admit(tt.token, strict), "strict")
			assert.Equal(t, tt.lenient, Admit(tt.token, lenient), "lenient")
		})
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name  string
		token domain.Token
		want  domain.Category
	}{
		{"common noun", noun("猫", "ネコ"), domain.CategoryNoun},
		{"person name", person("太郎", "タロウ"), domain.CategoryPersonName},
		{"place name", place("東京", "トウキョウ"), domain.CategoryProperNoun},
		{"organisation", tok("国連", "コクレン", "名詞", "固有名詞", "組織"), domain.CategoryProperNoun},
		{"proper noun without detail", tok("某", "ボウ", "名詞", "固有名詞"), domain.CategoryProperNoun},
		{"verb", verb("走る", "ハシル"), domain.CategoryVerb},
		{"adjective", tok("赤い", "アカイ", "形容詞", "自立"), domain.CategoryAdjective},
		{"person detail on non-noun", tok("太郎", "タロウ", "動詞", "固有名詞", "人名"), domain.CategoryVerb},
		{"unfamiliar class", tok("えー", "エー", "フィラー"), domain.Category("フィラー")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.token))
		})
	}
}
