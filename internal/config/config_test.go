package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `asset_prefix: Content/
meta_extension: .sidecar
backup_suffix: .orig
default_file_format_version: "3"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Content/", cfg.AssetPrefix)
	assert.Equal(t, ".sidecar", cfg.MetaExtension)
	assert.Equal(t, ".orig", cfg.BackupSuffix)
	assert.Equal(t, "3", cfg.FileFormatVersion)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("backup_suffix: .old\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ".old", cfg.BackupSuffix)
	assert.Empty(t, cfg.AssetPrefix)
	assert.Empty(t, cfg.MetaExtension)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("asset_prefix: [unclosed\n"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("asset_prefix: Assets/Game/\n"), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Assets/Game/", cfg.AssetPrefix)
}
