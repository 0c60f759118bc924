package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.Nil(t, err)
	require.Nil(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load(New(), "")
	require.Nil(t, err)

	assert.Equal(t, 50000, cfg.Extract.BatchSize)
	assert.Equal(t, "all-combined", cfg.Extract.Mode)
	assert.Equal(t, "treebank", cfg.Extract.Tokenizer)
	assert.Equal(t, 128, cfg.Extract.MaxTokens)
	assert.Equal(t, 2, cfg.Extract.Indent)
	assert.Equal(t, "5672", cfg.Parser.Port)
	assert.Equal(t, 12345, cfg.Server.Port)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "openre.yaml")
	content := []byte(`
extract:
  batch_size: 64
  mode: baseline
  use_accelerator: true
mysql:
  host: db:3306
`)
	require.Nil(t, os.WriteFile(path, content, 0o644))

	t.Setenv("OPENRE_EXTRACT_WORKERS", "3")
	t.Setenv(EnvKeyMySQLPassword, "secret")

	cfg, err := Load(New(), path)
	require.Nil(t, err)

	assert.Equal(t, 64, cfg.Extract.BatchSize)
	assert.Equal(t, "baseline", cfg.Extract.Mode)
	assert.True(t, cfg.Extract.UseAccelerator)
	assert.Equal(t, 3, cfg.Extract.Workers)
	assert.Equal(t, "db:3306", cfg.MySQL.Host)
	assert.Equal(t, "secret", cfg.MySQL.Password)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NotNil(t, err)
}
