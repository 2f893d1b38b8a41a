package backup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ornasync/feature/codex"
	"ornasync/feature/snapshot"
)

func TestArchiveName(t *testing.T) {
	first := ArchiveName("orna-data", time.Date(2026, 8, 26, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, "orna-data-2026-08-26T09-05.tar.gz", first)

	// Lexical order matches chronological order.
	later := ArchiveName("orna-data", time.Date(2026, 11, 2, 23, 59, 0, 0, time.UTC))
	assert.Less(t, first, later)
}

func TestBackup_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	b := &Backup{
		Locales: snapshot.LocaleDB{
			"fr": {"aquatic-blade": {Name: "Lame aquatique", Description: "Une lame."}},
		},
		ManualLocales: snapshot.LocaleDB{
			"fr": {"aquatic-blade": {Name: "Lame aquatique (forgée)"}},
		},
	}
	b.Data.Codex.Items.Items = []codex.Item{
		{Slug: "aquatic-blade", Name: "Aquatic Blade", Tier: 7},
	}

	path, err := b.Save(dir, "orna-data", time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "orna-data-2026-08-26T12-00.tar.gz"), path)

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Data.Codex.Items.Items, 1)
	assert.Equal(t, "aquatic-blade", loaded.Data.Codex.Items.Items[0].Slug)
	assert.Equal(t, "Lame aquatique", loaded.Locales["fr"]["aquatic-blade"].Name)

	// Manual overrides win in the effective view.
	effective := loaded.EffectiveLocales()
	assert.Equal(t, "Lame aquatique (forgée)", effective["fr"]["aquatic-blade"].Name)
}

func TestLoad_MissingArchive(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.tar.gz"))
	assert.Error(t, err)
}
