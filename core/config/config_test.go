package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "ornasync.db", cfg.Database.Path)
	assert.Equal(t, "https://playorna.com", cfg.Codex.BaseURL)
	assert.Equal(t, "https://orna.guide", cfg.Guide.BaseURL)
	assert.Equal(t, 4, cfg.Guide.FetchWorkers)
	assert.Equal(t, "backups", cfg.Backup.Directory)
	assert.Equal(t, "orna-data", cfg.Backup.Prefix)
	assert.Equal(t, "orna-backups", cfg.Storage.Bucket)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GUIDE_SESSION_COOKIE", "s3cret")
	t.Setenv("CODEX_FETCH_DELAY_MS", "250")

	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Guide.SessionCookie)
	assert.Equal(t, 250, cfg.Codex.FetchDelayMS)
}
