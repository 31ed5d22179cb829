package domain

// Category is the display category of a reading group.
// Values are the Japanese part-of-speech labels emitted by the tokenizer,
// refined for proper nouns.
type Category string

// Known categories.
const (
	CategoryProperNoun     Category = "固有名詞"
	CategoryPersonName     Category = "人名"
	CategoryNoun           Category = "名詞"
	CategoryVerb           Category = "動詞"
	CategoryAdjective      Category = "形容詞"
	CategoryAdjectivalNoun Category = "形容動詞"
	CategoryAdverb         Category = "副詞"
	CategoryAdnominal      Category = "連体詞"
	CategoryConjunction    Category = "接続詞"
	CategoryInterjection   Category = "感動詞"
	CategoryParticle       Category = "助詞"
	CategoryAuxiliaryVerb  Category = "助動詞"
	CategorySymbol         Category = "記号"
)

// PriorityCategories is the fixed category order used by the priority policy.
// Categories not listed here follow, sorted by collation.
var PriorityCategories = []Category{
	CategoryProperNoun,
	CategoryPersonName,
	CategoryNoun,
	CategoryVerb,
	CategoryAdjective,
	CategoryAdjectivalNoun,
	CategoryAdverb,
	CategoryAdnominal,
	CategoryConjunction,
	CategoryInterjection,
	CategoryParticle,
	CategoryAuxiliaryVerb,
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}
