package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "config.yaml", `
engine:
  api_url: https://api.example.com/v1/chat/completions
  api_key: test-key
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "gpt-4o", cfg.Engine.Model)
	assert.Equal(t, 120, cfg.Engine.TimeoutSeconds)
	assert.Equal(t, 3, cfg.Meeting.MaxAttempts)
	assert.Equal(t, 4, cfg.Meeting.Concurrency)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "data/meetings.db", cfg.Data.StorePath)
	assert.Equal(t, "data/fred_cache", cfg.FRED.CacheDir)
	assert.InDelta(t, 0.5, cfg.Impact.Treasury2YPerBps, 1e-9)
	assert.Equal(t, 50, cfg.Stance.AlignedWeight)
}

func TestLoadExplicitValuesNotOverridden(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "config.yaml", `
engine:
  api_url: https://api.example.com/v1/chat/completions
  model: local-model
meeting:
  concurrency: 1
  max_attempts: 5
data:
  dir: /tmp/fb
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "local-model", cfg.Engine.Model)
	assert.Equal(t, 1, cfg.Meeting.Concurrency)
	assert.Equal(t, 5, cfg.Meeting.MaxAttempts)
	assert.Equal(t, "/tmp/fb/meetings.db", cfg.Data.StorePath)
}

func TestLoadIncludeMerge(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "base.yaml", `
engine:
  api_url: https://base.example.com/v1/chat/completions
  model: base-model
`)
	path := writeConfigFile(t, dir, "config.yaml", `
include:
  - base.yaml
engine:
  model: override-model
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://base.example.com/v1/chat/completions", cfg.Engine.APIURL)
	assert.Equal(t, "override-model", cfg.Engine.Model)
}

func TestLoadIncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "a.yaml", "include: [b.yaml]\n")
	writeConfigFile(t, dir, "b.yaml", "include: [a.yaml]\n")

	_, err := Load(filepath.Join(dir, "a.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "include cycle")
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "config.yaml", `
engine:
  api_url: https://api.example.com/v1/chat/completions
meeting:
  concurrency: -1
`)

	_, err := Load(path)
	require.Error(t, err)
}
