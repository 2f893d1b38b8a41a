package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocaleEntry is the translated text of one codex entity.
type LocaleEntry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// LocaleStrings maps a codex slug to its translated text for one locale.
type LocaleStrings map[string]LocaleEntry

// LocaleDB maps a locale code (e.g. "fr", "de") to its translations.
type LocaleDB map[string]LocaleStrings

// LoadLocaleDB reads every <locale>.json file in dir into a database.
// An absent directory yields an empty database, not an error, since
// locales are optional.
func LoadLocaleDB(dir string) (LocaleDB, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return LocaleDB{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read locale directory %s: %w", dir, err)
	}
	db := LocaleDB{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		payload, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", entry.Name(), err)
		}
		var strs LocaleStrings
		if err := json.Unmarshal(payload, &strs); err != nil {
			return nil, fmt.Errorf("failed to decode locale file %s: %w", entry.Name(), err)
		}
		db[strings.TrimSuffix(entry.Name(), ".json")] = strs
	}
	return db, nil
}

// Save writes the database as one <locale>.json file per locale.
func (db LocaleDB) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create locale directory %s: %w", dir, err)
	}
	for locale, strs := range db {
		payload, err := json.MarshalIndent(strs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode locale %s: %w", locale, err)
		}
		name := filepath.Join(dir, locale+".json")
		if err := os.WriteFile(name, payload, 0o644); err != nil {
			return fmt.Errorf("failed to write locale %s: %w", locale, err)
		}
	}
	return nil
}

// Merge folds other into db, entry by entry. Entries from other win,
// so applying a manual overlay second gives it precedence over the
// auto-fetched translations.
func (db LocaleDB) Merge(other LocaleDB) {
	for locale, strs := range other {
		existing, ok := db[locale]
		if !ok {
			existing = LocaleStrings{}
			db[locale] = existing
		}
		for slug, entry := range strs {
			existing[slug] = entry
		}
	}
}

// Overlay returns the effective database given a primary and a manual
// override database. Neither input is modified.
func Overlay(primary, manual LocaleDB) LocaleDB {
	merged := LocaleDB{}
	merged.Merge(primary)
	merged.Merge(manual)
	return merged
}
