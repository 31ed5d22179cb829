package pipeline

import "github.com/makechair/text-analyzer/internal/core/domain"

// Sub-classification labels used to refine nouns.
const (
	posProperNoun = "固有名詞"
	posPersonName = "人名"
)

// functionWords are the major classes that never form variant groups.
var functionWords = map[domain.Category]bool{
	domain.CategoryParticle:      true,
	domain.CategoryAuxiliaryVerb: true,
	domain.CategoryConjunction:   true,
	domain.CategoryAdnominal:     true,
}

// unknownBaseForm marks a token the dictionary could not lemmatise.
const unknownBaseForm = "*"

// Admit reports whether a token takes part in aggregation.
// Tokens without a reading or with an unknown base form are rejected, as
// are function words. Symbols are rejected when the policy excludes them.
func Admit(tok domain.Token, policy domain.FilterPolicy) bool {
	if !tok.HasReading() || tok.BaseForm == unknownBaseForm {
		return false
	}
	major := domain.Category(tok.POS(0))
	if functionWords[major] {
		return false
	}
	if policy.ExcludeSymbols && major == domain.CategorySymbol {
		return false
	}
	return true
}

// Categorize returns the display category of an admitted token.
// Proper nouns are split out from common nouns, and person names from
// other proper nouns.
func Categorize(tok domain.Token) domain.Category {
	if tok.POS(0) == string(domain.CategoryNoun) && tok.POS(1) == posProperNoun {
		if tok.POS(2) == posPersonName {
			return domain.CategoryPersonName
		}
		return domain.CategoryProperNoun
	}
	return domain.Category(tok.POS(0))
}
