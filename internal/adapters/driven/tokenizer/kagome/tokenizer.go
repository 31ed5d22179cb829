// Package kagome adapts the kagome morphological analyser to the Tokenizer port.
//
// The IPA and UniDic dictionaries are embedded. A user dictionary in
// kagome's CSV format (surface,segmentation,readings,pos) may be layered
// on top to pin readings for names and jargon.
package kagome

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
	"github.com/makechair/text-analyzer/internal/logger"
)

// Ensure interfaces are implemented.
var (
	_ driven.Tokenizer       = (*Tokenizer)(nil)
	_ driven.TokenizerLoader = (*Loader)(nil)
)

// Loader builds kagome tokenizers.
type Loader struct {
	kind     domain.DictionaryKind
	userDict string
}

// NewLoader creates a loader for the given dictionary.
// userDictPath may be empty.
func NewLoader(kind domain.DictionaryKind, userDictPath string) *Loader {
	return &Loader{kind: kind, userDict: userDictPath}
}

// Name identifies the dictionary.
func (l *Loader) Name() string {
	if l.userDict != "" {
		return l.kind.String() + "+user"
	}
	return l.kind.String()
}

// Load reads the dictionary and returns a ready tokenizer.
// Dictionary decoding panics on corrupt data; the panic is reported
// as an initialisation error.
func (l *Loader) Load() (tok driven.Tokenizer, err error) {
	defer func() {
		if r := recover(); r != nil {
			tok = nil
			err = fmt.Errorf("load %s dictionary: %v: %w", l.kind, r, domain.ErrTokenizerInit)
		}
	}()
	defer logger.Timed("load " + l.Name() + " dictionary")()

	var d *dict.Dict
	switch l.kind {
	case domain.DictionaryIPA:
		d = ipa.Dict()
	case domain.DictionaryUni:
		d = uni.Dict()
	default:
		return nil, fmt.Errorf("unknown dictionary %q: %w", l.kind, domain.ErrTokenizerInit)
	}

	opts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if l.userDict != "" {
		ud, err := loadUserDict(l.userDict)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tokenizer.UserDict(ud))
	}

	t, err := tokenizer.New(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("create tokenizer: %v: %w", err, domain.ErrTokenizerInit)
	}
	return &Tokenizer{t: t}, nil
}

// loadUserDict parses a kagome user dictionary CSV.
func loadUserDict(path string) (*dict.UserDict, error) {
	ud, err := dict.NewUserDict(path)
	if err != nil {
		return nil, fmt.Errorf("parse user dictionary %s: %v: %w", path, err, domain.ErrTokenizerInit)
	}
	return ud, nil
}

// Tokenizer wraps a kagome tokenizer. It is safe for concurrent use.
type Tokenizer struct {
	t *tokenizer.Tokenizer
}

// Tokenize splits text into tokens in normal mode.
func (t *Tokenizer) Tokenize(text string) []domain.Token {
	if text == "" {
		return nil
	}

	ktoks := t.t.Tokenize(text)
	out := make([]domain.Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		out = append(out, convert(kt))
	}
	return out
}

// posSupplementarySymbol is UniDic's label for punctuation and symbols.
const posSupplementarySymbol = "補助記号"

// convert maps a kagome token onto the domain token.
// UniDic has no reading column, so its surface pronunciation is used
// instead. A base form of "*" is kept for the token filter to reject.
func convert(kt tokenizer.Token) domain.Token {
	if kt.Class == tokenizer.USER {
		return convertUser(kt)
	}

	reading, ok := kt.Reading()
	if !ok {
		reading, _ = kt.Pronunciation()
	}
	base, ok := kt.BaseForm()
	if !ok {
		base = kt.Surface
	}

	pos := kt.POS()
	if len(pos) > 0 && pos[0] == posSupplementarySymbol {
		pos[0] = string(domain.CategorySymbol)
	}
	return domain.Token{
		Surface:      kt.Surface,
		Reading:      reading,
		PartOfSpeech: pos,
		BaseForm:     base,
	}
}

// convertUser maps a user dictionary token. Its features are
// [pos, segmentation, readings] with segments joined by "/".
// A pos of 固有名詞 or 人名 is expanded to the noun hierarchy so user
// entries refine into the proper-noun categories.
func convertUser(kt tokenizer.Token) domain.Token {
	features := kt.Features()
	pos, reading := "", ""
	if len(features) > 0 {
		pos = features[0]
	}
	if len(features) > 2 {
		reading = strings.ReplaceAll(features[2], "/", "")
	}

	var hierarchy []string
	switch pos {
	case "固有名詞":
		hierarchy = []string{"名詞", "固有名詞", "一般"}
	case "人名":
		hierarchy = []string{"名詞", "固有名詞", "人名"}
	default:
		hierarchy = []string{pos}
	}

	return domain.Token{
		Surface:      kt.Surface,
		Reading:      reading,
		PartOfSpeech: hierarchy,
		BaseForm:     kt.Surface,
	}
}
