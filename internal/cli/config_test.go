package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWritesDefault(t *testing.T) {
	t.Setenv(envLanguage, "")
	t.Setenv(envMaxContainers, "")
	dir := filepath.Join(t.TempDir(), "config")

	v, err := loadConfig(dir)

	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	assert.Equal(t, defaultConfigYAML, string(data))
	assert.Equal(t, "sqlite", v.GetString(cfgKeyBackend))
	assert.Equal(t, 0, v.GetInt(cfgKeyMaxContainers))
	assert.Equal(t, "en", v.GetString(cfgKeyLanguage))
	assert.Empty(t, v.GetString(cfgKeyDataDir))
}

func TestLoadConfigKeepsExistingFile(t *testing.T) {
	t.Setenv(envLanguage, "")
	t.Setenv(envMaxContainers, "")
	dir := t.TempDir()
	content := "backend: sqlite\ndata_dir: /srv/fridge\nmax_containers: 6\nlanguage: pt-BR\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(content), 0o644))

	v, err := loadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, "/srv/fridge", v.GetString(cfgKeyDataDir))
	assert.Equal(t, 6, v.GetInt(cfgKeyMaxContainers))
	assert.Equal(t, "pt-BR", v.GetString(cfgKeyLanguage))
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envMaxContainers, "2")
	t.Setenv(envLanguage, "pt-BR")

	v, err := loadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, 2, v.GetInt(cfgKeyMaxContainers))
	assert.Equal(t, "pt-BR", v.GetString(cfgKeyLanguage))
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("backend: [unclosed\n"), 0o644))

	_, err := loadConfig(dir)

	assert.Error(t, err)
}
