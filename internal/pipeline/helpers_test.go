package pipeline

import "github.com/makechair/text-analyzer/internal/core/domain"

func tok(surface, reading string, pos ...string) domain.Token {
	return domain.Token{Surface: surface, Reading: reading, PartOfSpeech: pos, BaseForm: surface}
}

func noun(surface, reading string) domain.Token {
	return tok(surface, reading, "名詞", "一般", "*")
}

func verb(surface, reading string) domain.Token {
	return tok(surface, reading, "動詞", "自立", "*")
}

func particle(surface, reading string) domain.Token {
	return tok(surface, reading, "助詞", "格助詞", "一般")
}

func person(surface, reading string) domain.Token {
	return tok(surface, reading, "名詞", "固有名詞", "人名")
}

func place(surface, reading string) domain.Token {
	return tok(surface, reading, "名詞", "固有名詞", "地域")
}

func symbol(surface string) domain.Token {
	return tok(surface, surface, "記号", "句点", "*")
}

func sentenceTexts(sentences []domain.Sentence) []string {
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, s.Text)
	}
	return out
}
