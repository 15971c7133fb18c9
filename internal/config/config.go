package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds per-project overrides read from metaguid.yaml.
// Empty fields mean "use the built-in default".
type ProjectConfig struct {
	AssetPrefix       string `yaml:"asset_prefix"`
	MetaExtension     string `yaml:"meta_extension"`
	BackupSuffix      string `yaml:"backup_suffix"`
	FileFormatVersion string `yaml:"default_file_format_version"`
}

const ConfigFileName = "metaguid.yaml"

// Load reads metaguid.yaml from the project root.
func Load(projectRoot string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(projectRoot, ConfigFileName))
}

// LoadFile reads a project config from an explicit path.
func LoadFile(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	return &cfg, nil
}
