package domain

const unknownDescription = "Unknown"

// DictionaryKind selects the morphological dictionary.
type DictionaryKind string

// Available dictionaries.
const (
	// DictionaryIPA is the IPA dictionary.
	DictionaryIPA DictionaryKind = "ipa"

	// DictionaryUni is the UniDic dictionary.
	DictionaryUni DictionaryKind = "uni"
)

// IsValid returns true if the dictionary is recognised.
func (d DictionaryKind) IsValid() bool {
	return d == DictionaryIPA || d == DictionaryUni
}

// String returns the string representation.
func (d DictionaryKind) String() string {
	return string(d)
}

// Description returns a human-readable description of the dictionary.
func (d DictionaryKind) Description() string {
	switch d {
	case DictionaryIPA:
		return "IPA dictionary (IPADIC)"
	case DictionaryUni:
		return "UniDic"
	default:
		return unknownDescription
	}
}

// CategoryOrder selects how categories are ordered in a result.
type CategoryOrder string

// Available category orders.
const (
	// CategoryOrderPriority uses the fixed priority list, then collation.
	CategoryOrderPriority CategoryOrder = "priority"

	// CategoryOrderCollation sorts every category label by Japanese collation.
	CategoryOrderCollation CategoryOrder = "collation"
)

// IsValid returns true if the category order is recognised.
func (o CategoryOrder) IsValid() bool {
	return o == CategoryOrderPriority || o == CategoryOrderCollation
}

// String returns the string representation.
func (o CategoryOrder) String() string {
	return string(o)
}

// Description returns a human-readable description of the order.
func (o CategoryOrder) Description() string {
	switch o {
	case CategoryOrderPriority:
		return "Fixed priority (proper nouns first)"
	case CategoryOrderCollation:
		return "Japanese collation of category labels"
	default:
		return unknownDescription
	}
}

// SortOrder selects how groups are ordered in list views.
type SortOrder string

// Available sort orders.
const (
	// SortKana orders groups by reading in Japanese collation.
	SortKana SortOrder = "kana"

	// SortFreqDesc orders groups by descending total count.
	SortFreqDesc SortOrder = "freq_desc"

	// SortFreqAsc orders groups by ascending total count.
	SortFreqAsc SortOrder = "freq_asc"
)

// SortOrders lists every sort order in cycle order.
var SortOrders = []SortOrder{SortKana, SortFreqDesc, SortFreqAsc}

// IsValid returns true if the sort order is recognised.
func (s SortOrder) IsValid() bool {
	switch s {
	case SortKana, SortFreqDesc, SortFreqAsc:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s SortOrder) String() string {
	return string(s)
}

// Description returns a human-readable description of the order.
func (s SortOrder) Description() string {
	switch s {
	case SortKana:
		return "Reading (あいうえお順)"
	case SortFreqDesc:
		return "Frequency (high to low)"
	case SortFreqAsc:
		return "Frequency (low to high)"
	default:
		return unknownDescription
	}
}

// Next returns the following sort order, wrapping around.
func (s SortOrder) Next() SortOrder {
	for i, o := range SortOrders {
		if o == s {
			return SortOrders[(i+1)%len(SortOrders)]
		}
	}
	return SortKana
}

// FilterPolicy controls which tokens are admitted into aggregation.
type FilterPolicy struct {
	// ExcludeSymbols drops symbol tokens in addition to function words.
	ExcludeSymbols bool
}

// AnalysisOptions control a single analysis run.
type AnalysisOptions struct {
	Filter        FilterPolicy
	CategoryOrder CategoryOrder
}

// DefaultAnalysisOptions returns the default run options.
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		Filter:        FilterPolicy{ExcludeSymbols: true},
		CategoryOrder: CategoryOrderPriority,
	}
}

// ListOptions control how a result is presented as a word list.
type ListOptions struct {
	// Sort selects group ordering within each category.
	Sort SortOrder

	// ShowAll includes groups with a single surface form.
	ShowAll bool

	// Query keeps only groups whose reading or variants contain it.
	Query string
}

// TokenizerSettings configures the morphological analyser.
type TokenizerSettings struct {
	Dictionary DictionaryKind
	UserDict   string
}

// AnalysisSettings configures the pipeline.
type AnalysisSettings struct {
	ExcludeSymbols bool
	CategoryOrder  CategoryOrder
}

// DisplaySettings configures list views.
type DisplaySettings struct {
	Sort    SortOrder
	ShowAll bool
}

// DocumentSettings configures document decoding.
type DocumentSettings struct {
	// Encoding is the character set of plain text input.
	Encoding string
}

// HistorySettings configures report persistence.
type HistorySettings struct {
	Enabled bool
}

// WatchSettings configures file watching.
type WatchSettings struct {
	// IntervalMS is the minimum gap between re-analyses.
	IntervalMS int
}

// AppSettings holds every persisted application setting.
type AppSettings struct {
	Tokenizer TokenizerSettings
	Analysis  AnalysisSettings
	Display   DisplaySettings
	Document  DocumentSettings
	History   HistorySettings
	Watch     WatchSettings
}

// DefaultAppSettings returns the default settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Tokenizer: TokenizerSettings{
			Dictionary: DictionaryIPA,
		},
		Analysis: AnalysisSettings{
			ExcludeSymbols: true,
			CategoryOrder:  CategoryOrderPriority,
		},
		Display: DisplaySettings{
			Sort: SortKana,
		},
		Document: DocumentSettings{
			Encoding: "utf-8",
		},
		History: HistorySettings{
			Enabled: true,
		},
		Watch: WatchSettings{
			IntervalMS: 500,
		},
	}
}

// AnalysisOptions converts the analysis settings into run options.
func (s AppSettings) AnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		Filter:        FilterPolicy{ExcludeSymbols: s.Analysis.ExcludeSymbols},
		CategoryOrder: s.Analysis.CategoryOrder,
	}
}

// ListOptions converts the display settings into list options.
func (s AppSettings) ListOptions() ListOptions {
	return ListOptions{
		Sort:    s.Display.Sort,
		ShowAll: s.Display.ShowAll,
	}
}
