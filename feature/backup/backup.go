package backup

import (
	"time"

	"ornasync/feature/snapshot"
)

// Backup is one archived capture: the full snapshot plus the locale
// databases fetched with it. Archives are totally ordered by the
// timestamp encoded in their name.
type Backup struct {
	// Data is the codex and guide capture.
	Data snapshot.Snapshot
	// Locales are the auto-fetched translations.
	Locales snapshot.LocaleDB
	// ManualLocales are hand-maintained overrides taking precedence
	// over Locales.
	ManualLocales snapshot.LocaleDB
}

// Config holds configuration for the backup feature.
type Config struct {
	// Directory where archives are written.
	Directory string `mapstructure:"directory" default:"backups"`
	// Prefix of archive file names.
	Prefix string `mapstructure:"prefix" default:"orna-data"`
	// Bucket the mirror pushes archives to.
	Bucket string `mapstructure:"bucket" default:"backups"`
}

// nameTimeLayout encodes the creation time in the archive name. Colons
// are avoided so the names stay portable.
const nameTimeLayout = "2006-01-02T15-04"

// ArchiveName builds the archive file name for a backup created at t.
// Lexical order of the generated names is chronological order.
func ArchiveName(prefix string, t time.Time) string {
	return prefix + "-" + t.Format(nameTimeLayout) + ".tar.gz"
}

// EffectiveLocales returns the locale database the translation layer
// should use: the primary overlaid with the manual overrides.
func (b *Backup) EffectiveLocales() snapshot.LocaleDB {
	return snapshot.Overlay(b.Locales, b.ManualLocales)
}
