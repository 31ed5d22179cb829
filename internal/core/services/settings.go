package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDictionary     = "tokenizer.dictionary"
	keyUserDict       = "tokenizer.user_dict"
	keyExcludeSymbols = "analysis.exclude_symbols"
	keyCategoryOrder  = "analysis.category_order"
	keyDisplaySort    = "display.sort"
	keyShowAll        = "display.show_all"
	keyEncoding       = "document.encoding"
	keyHistory        = "history.enabled"
	keyWatchInterval  = "watch.interval_ms"
)

// maxWatchIntervalMS bounds watch.interval_ms.
const maxWatchIntervalMS = 60_000

var settingKeys = []string{
	keyDictionary,
	keyUserDict,
	keyExcludeSymbols,
	keyCategoryOrder,
	keyDisplaySort,
	keyShowAll,
	keyEncoding,
	keyHistory,
	keyWatchInterval,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Tokenizer: domain.TokenizerSettings{
			Dictionary: s.getDictionary(defaults.Tokenizer.Dictionary),
			UserDict:   s.configStore.GetString(keyUserDict), // No default - empty disables the user dictionary
		},
		Analysis: domain.AnalysisSettings{
			ExcludeSymbols: s.getBool(keyExcludeSymbols, defaults.Analysis.ExcludeSymbols),
			CategoryOrder:  s.getCategoryOrder(defaults.Analysis.CategoryOrder),
		},
		Display: domain.DisplaySettings{
			Sort:    s.getSortOrder(defaults.Display.Sort),
			ShowAll: s.getBool(keyShowAll, defaults.Display.ShowAll),
		},
		Document: domain.DocumentSettings{
			Encoding: s.getString(keyEncoding, defaults.Document.Encoding),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistory, defaults.History.Enabled),
		},
		Watch: domain.WatchSettings{
			IntervalMS: s.getInterval(defaults.Watch.IntervalMS),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}

	values := []struct {
		key   string
		value any
	}{
		{keyDictionary, settings.Tokenizer.Dictionary.String()},
		{keyUserDict, settings.Tokenizer.UserDict},
		{keyExcludeSymbols, settings.Analysis.ExcludeSymbols},
		{keyCategoryOrder, settings.Analysis.CategoryOrder.String()},
		{keyDisplaySort, settings.Display.Sort.String()},
		{keyShowAll, settings.Display.ShowAll},
		{keyEncoding, settings.Document.Encoding},
		{keyHistory, settings.History.Enabled},
		{keyWatchInterval, settings.Watch.IntervalMS},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set validates value for key and stores it with its natural type.
func (s *SettingsService) Set(key, value string) error {
	parsed, err := parseSetting(key, strings.TrimSpace(value))
	if err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Value returns the effective value of key as text.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}

	switch key {
	case keyDictionary:
		return settings.Tokenizer.Dictionary.String(), nil
	case keyUserDict:
		return settings.Tokenizer.UserDict, nil
	case keyExcludeSymbols:
		return strconv.FormatBool(settings.Analysis.ExcludeSymbols), nil
	case keyCategoryOrder:
		return settings.Analysis.CategoryOrder.String(), nil
	case keyDisplaySort:
		return settings.Display.Sort.String(), nil
	case keyShowAll:
		return strconv.FormatBool(settings.Display.ShowAll), nil
	case keyEncoding:
		return settings.Document.Encoding, nil
	case keyHistory:
		return strconv.FormatBool(settings.History.Enabled), nil
	case keyWatchInterval:
		return strconv.Itoa(settings.Watch.IntervalMS), nil
	default:
		return "", unknownKey(key)
	}
}

// Keys lists every recognised setting key in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// parseSetting converts text into the stored representation of key.
func parseSetting(key, value string) (any, error) {
	switch key {
	case keyDictionary:
		d := domain.DictionaryKind(strings.ToLower(value))
		if !d.IsValid() {
			return nil, fmt.Errorf("invalid dictionary %q (want ipa or uni): %w", value, domain.ErrInvalidInput)
		}
		return d.String(), nil

	case keyUserDict:
		if value == "" {
			return "", nil
		}
		info, err := os.Stat(value)
		if err != nil || info.IsDir() {
			return nil, fmt.Errorf("user dictionary %q is not a readable file: %w", value, domain.ErrInvalidInput)
		}
		return value, nil

	case keyExcludeSymbols, keyShowAll, keyHistory:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q for %s: %w", value, key, domain.ErrInvalidInput)
		}
		return b, nil

	case keyCategoryOrder:
		o := domain.CategoryOrder(strings.ToLower(value))
		if !o.IsValid() {
			return nil, fmt.Errorf("invalid category order %q (want priority or collation): %w", value, domain.ErrInvalidInput)
		}
		return o.String(), nil

	case keyDisplaySort:
		o := domain.SortOrder(strings.ToLower(value))
		if !o.IsValid() {
			return nil, fmt.Errorf("invalid sort %q (want kana, freq_desc or freq_asc): %w", value, domain.ErrInvalidInput)
		}
		return o.String(), nil

	case keyEncoding:
		name := strings.ToLower(value)
		if name == "" || name == "utf8" {
			return "utf-8", nil
		}
		if _, err := htmlindex.Get(name); err != nil {
			return nil, fmt.Errorf("unknown encoding %q: %w", value, domain.ErrInvalidInput)
		}
		return name, nil

	case keyWatchInterval:
		ms, err := strconv.Atoi(value)
		if err != nil || ms <= 0 || ms > maxWatchIntervalMS {
			return nil, fmt.Errorf("invalid interval %q (want 1-%d ms): %w", value, maxWatchIntervalMS, domain.ErrInvalidInput)
		}
		return ms, nil

	default:
		return nil, unknownKey(key)
	}
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getInterval(defaultVal int) int {
	val := s.configStore.GetInt(keyWatchInterval)
	if val <= 0 || val > maxWatchIntervalMS {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getDictionary(defaultVal domain.DictionaryKind) domain.DictionaryKind {
	d := domain.DictionaryKind(s.configStore.GetString(keyDictionary))
	if !d.IsValid() {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getCategoryOrder(defaultVal domain.CategoryOrder) domain.CategoryOrder {
	o := domain.CategoryOrder(s.configStore.GetString(keyCategoryOrder))
	if !o.IsValid() {
		return defaultVal
	}
	return o
}

func (s *SettingsService) getSortOrder(defaultVal domain.SortOrder) domain.SortOrder {
	o := domain.SortOrder(s.configStore.GetString(keyDisplaySort))
	if !o.IsValid() {
		return defaultVal
	}
	return o
}
