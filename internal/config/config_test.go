package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoad_DefaultsFromEnvOnly(t *testing.T) {
	chdir(t, t.TempDir()) // no config.yaml present

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Pipeline.MaxTermTokens)
	assert.Equal(t, 3, cfg.Pipeline.PhraseTokenThreshold)
	assert.Equal(t, "en", cfg.Pipeline.SourceLang)
	assert.Equal(t, "ru", cfg.Pipeline.TargetLang)
	assert.Equal(t, time.Second, cfg.Pipeline.ThrottleMin)
	assert.Equal(t, 2*time.Second, cfg.Pipeline.ThrottleMax)
	assert.Equal(t, uint64(3), cfg.Providers.RetryMaxAttempts)
	assert.Equal(t, "./data/translation_cache.json", cfg.Cache.Path)
	assert.Equal(t, "./data/history.db", cfg.History.Path)
	assert.Equal(t, "./output", cfg.Output.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
pipeline:
  max_term_tokens: 15
  target_lang: de
providers:
  yandex_dict_key: test-key
`
	path := filepath.Join(dir, "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Pipeline.MaxTermTokens)
	assert.Equal(t, "de", cfg.Pipeline.TargetLang)
	assert.Equal(t, "test-key", cfg.Providers.YandexDictKey)
	// Untouched keys keep defaults.
	assert.Equal(t, "en", cfg.Pipeline.SourceLang)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline:\n  max_term_tokens: 15\n"), 0o644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PIPELINE_MAX_TERM_TOKENS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Pipeline.MaxTermTokens)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestValidate_RejectsBadThrottleBounds(t *testing.T) {
	t.Setenv("PIPELINE_THROTTLE_MIN", "3s")
	t.Setenv("PIPELINE_THROTTLE_MAX", "1s")
	chdir(t, t.TempDir())

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttle")
}
