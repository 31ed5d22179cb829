package services

import (
	"github.com/makechair/text-analyzer/internal/adapters/driven/tokenizer/static"
	"github.com/makechair/text-analyzer/internal/core/domain"
)

const sampleText = "りんごを食べた。\n林檎が好きだ！太郎はりんごを買う。"

func token(surface, reading string, pos ...string) domain.Token {
	return domain.Token{Surface: surface, Reading: reading, PartOfSpeech: pos, BaseForm: surface}
}

func sampleTokenizer() *static.Tokenizer {
	tk := static.New(nil)
	tk.Add("りんごを食べた。",
		token("りんご", "リンゴ", "名詞", "一般"), token("を", "ヲ", "助詞", "格助詞"),
		token("食べ", "タベ", "動詞", "自立"), token("た", "タ", "助動詞"), token("。", "。", "記号", "句点"))
	tk.Add("林檎が好きだ！",
		token("林檎", "リンゴ", "名詞", "一般"), token("が", "ガ", "助詞", "格助詞"),
		token("好き", "スキ", "名詞", "形容動詞語幹"), token("だ", "ダ", "助動詞"), token("！", "！", "記号", "一般"))
	tk.Add("太郎はりんごを買う。",
		token("太郎", "タロウ", "名詞", "固有名詞", "人名"), token("は", "ハ", "助詞", "係助詞"),
		token("りんご", "リンゴ", "名詞", "一般"), token("を", "ヲ", "助詞", "格助詞"),
		token("買う", "カウ", "動詞", "自立"), token("。", "。", "記号", "句点"))
	return tk
}

// sampleResult is a small finished result with one variant group.
func sampleResult(id string) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		ID: id,
		Categories: []domain.CategoryGroups{{
			Category: domain.CategoryNoun,
			Groups: []domain.DisplayGroup{{
				Reading:     "リンゴ",
				PrimaryWord: "りんご",
				TotalCount:  3,
				Variants:    []domain.Variant{{Word: "りんご", Count: 2}, {Word: "林檎", Count: 1}},
				Category:    domain.CategoryNoun,
			}},
		}},
		Sentences: []domain.Sentence{
			{Index: 0, Line: 1, Text: "りんごを食べた。"},
			{Index: 1, Line: 2, Text: "林檎が好きだ！"},
			{Index: 2, Line: 2, Text: "太郎はりんごを買う。"},
		},
		SentenceMap: map[string][]int{"リンゴ": {0, 1, 2}},
	}
}
