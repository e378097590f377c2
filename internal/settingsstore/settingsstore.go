package settingsstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/entities"
)

var ErrInvalidSetting = errors.New("invalid setting")

// Repository is the key/value persistence the store is built on.
type Repository interface {
	GetSetting(key string) (*entities.Setting, error)
	GetAllSettings() ([]entities.Setting, error)
	SetSetting(key, value string) error
	SetSettings(values map[string]string) error
	DeleteSetting(key string) error
}

type LastRead struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
}

// AppSettings is the typed view over the reader's preferences.
type AppSettings struct {
	CurrentVersion string    `json:"currentVersion"`
	FontSize       int       `json:"fontSize"`
	DarkMode       bool      `json:"darkMode"`
	SpeechRate     float64   `json:"speechRate"`
	LastRead       *LastRead `json:"lastRead"`
}

// KeyValue is one raw setting as exchanged in backups.
type KeyValue struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// DefaultSettings returns the settings used for keys never written.
func DefaultSettings() AppSettings {
	return AppSettings{
		CurrentVersion: bible.DefaultVersion,
		FontSize:       18,
		DarkMode:       false,
		SpeechRate:     1.0,
		LastRead:       nil,
	}
}

// Priority: database > configured default > built-in default
type SettingsStore struct {
	repo     Repository
	defaults AppSettings
}

// New creates a store. An empty or unknown defaultVersion keeps the built-in
// default.
func New(repo Repository, defaultVersion string) *SettingsStore {
	defaults := DefaultSettings()
	if _, ok := bible.VersionByID(defaultVersion); ok {
		defaults.CurrentVersion = defaultVersion
	}
	return &SettingsStore{repo: repo, defaults: defaults}
}

func (s *SettingsStore) Defaults() AppSettings {
	return s.defaults
}

// GetAll resolves every typed setting. Values that no longer decode fall
// back to the default.
func (s *SettingsStore) GetAll() (AppSettings, error) {
	out := s.defaults
	stored, err := s.repo.GetAllSettings()
	if err != nil {
		return out, err
	}
	for _, kv := range stored {
		_ = applyValue(&out, kv.Key, json.RawMessage(kv.Value))
	}
	return out, nil
}

// Get returns the raw JSON value of a key and whether it was stored.
func (s *SettingsStore) Get(key string) (json.RawMessage, bool, error) {
	setting, err := s.repo.GetSetting(key)
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return json.RawMessage(setting.Value), true, nil
}

// Set validates a known key and stores its JSON value. Unknown keys are
// stored as-is.
func (s *SettingsStore) Set(key string, value json.RawMessage) error {
	if err := s.validate(key, value); err != nil {
		return err
	}
	return s.repo.SetSetting(key, string(value))
}

func (s *SettingsStore) validate(key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return fmt.Errorf("%w: %s is not valid JSON", ErrInvalidSetting, key)
	}
	scratch := s.defaults
	return applyValue(&scratch, key, value)
}

// SetValue marshals value and stores it under key.
func (s *SettingsStore) SetValue(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(key, data)
}

// Update validates every key first and stores nothing if any is invalid.
func (s *SettingsStore) Update(values map[string]json.RawMessage) (AppSettings, error) {
	raw := make(map[string]string, len(values))
	for key, value := range values {
		if err := s.validate(key, value); err != nil {
			return AppSettings{}, err
		}
		raw[key] = string(value)
	}
	if err := s.repo.SetSettings(raw); err != nil {
		return AppSettings{}, err
	}
	return s.GetAll()
}

// SetLastRead records the chapter the reader is on.
func (s *SettingsStore) SetLastRead(book string, chapter int) error {
	return s.SetValue(entities.SettingKeyLastRead, LastRead{Book: book, Chapter: chapter})
}

// Reset removes a stored key so its default applies again.
func (s *SettingsStore) Reset(key string) error {
	err := s.repo.DeleteSetting(key)
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	return err
}

// Export returns every stored setting as raw key/value pairs.
func (s *SettingsStore) Export() ([]KeyValue, error) {
	stored, err := s.repo.GetAllSettings()
	if err != nil {
		return nil, err
	}
	out := make([]KeyValue, 0, len(stored))
	for _, kv := range stored {
		value := json.RawMessage(kv.Value)
		if !json.Valid(value) {
			// Legacy plain-text values are exported as JSON strings.
			value, _ = json.Marshal(kv.Value)
		}
		out = append(out, KeyValue{Key: kv.Key, Value: value})
	}
	return out, nil
}

func applyValue(dst *AppSettings, key string, value json.RawMessage) error {
	invalid := func(err error) error {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSetting, key, err)
	}

	switch key {
	case entities.SettingKeyCurrentVersion:
		var v string
		if err := json.Unmarshal(value, &v); err != nil {
			return invalid(err)
		}
		if _, ok := bible.VersionByID(v); !ok {
			return invalid(fmt.Errorf("unknown version %q", v))
		}
		dst.CurrentVersion = v
	case entities.SettingKeyFontSize:
		var v int
		if err := json.Unmarshal(value, &v); err != nil {
			return invalid(err)
		}
		if v <= 0 {
			return invalid(errors.New("must be positive"))
		}
		dst.FontSize = v
	case entities.SettingKeyDarkMode:
		var v bool
		if err := json.Unmarshal(value, &v); err != nil {
			return invalid(err)
		}
		dst.DarkMode = v
	case entities.SettingKeySpeechRate:
		var v float64
		if err := json.Unmarshal(value, &v); err != nil {
			return invalid(err)
		}
		if v <= 0 {
			return invalid(errors.New("must be positive"))
		}
		dst.SpeechRate = v
	case entities.SettingKeyLastRead:
		var v *LastRead
		if err := json.Unmarshal(value, &v); err != nil {
			return invalid(err)
		}
		if v != nil {
			if _, ok := bible.BookByID(v.Book); !ok || v.Chapter < 1 {
				return invalid(fmt.Errorf("unknown chapter %s %d", v.Book, v.Chapter))
			}
		}
		dst.LastRead = v
	}
	return nil
}
