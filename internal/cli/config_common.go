package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vvka-141/metaguid/internal/config"
	"github.com/vvka-141/metaguid/pkg/metaguid"
)

// Environment variables consulted when the matching flag is not set.
const (
	envRoot         = "METAGUID_ROOT"
	envAssetPrefix  = "METAGUID_ASSET_PREFIX"
	envBackupSuffix = "METAGUID_BACKUP_SUFFIX"
)

// settings holds the fully resolved configuration shared by fix and dump.
type settings struct {
	ProjectRoot       string
	AssetPrefix       string
	MetaExtension     string
	BackupSuffix      string
	FileFormatVersion string
}

// resolveSettings merges flags, environment (.env included), metaguid.yaml and
// built-in defaults, in that order of precedence.
func resolveSettings(flags globalFlagValues) (settings, error) {
	_ = godotenv.Load()

	root := firstNonEmpty(flags.root, os.Getenv(envRoot))
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return settings{}, fmt.Errorf("failed to determine working directory: %w", err)
		}
		root = wd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return settings{}, fmt.Errorf("failed to resolve project root: %w", err)
	}

	projectCfg, err := loadProjectConfig(root, flags.configPath)
	if err != nil {
		return settings{}, err
	}
	if projectCfg == nil {
		projectCfg = &config.ProjectConfig{}
	}

	s := settings{
		ProjectRoot:       root,
		AssetPrefix:       firstNonEmpty(flags.assetPrefix, os.Getenv(envAssetPrefix), projectCfg.AssetPrefix, metaguid.DefaultAssetPrefix),
		MetaExtension:     firstNonEmpty(projectCfg.MetaExtension, metaguid.DefaultMetaExtension),
		BackupSuffix:      firstNonEmpty(os.Getenv(envBackupSuffix), projectCfg.BackupSuffix, metaguid.DefaultBackupSuffix),
		FileFormatVersion: firstNonEmpty(projectCfg.FileFormatVersion, metaguid.DefaultFileFormatVersion),
	}

	if !strings.HasSuffix(s.AssetPrefix, "/") {
		s.AssetPrefix += "/"
	}
	if !strings.HasPrefix(s.MetaExtension, ".") {
		return settings{}, fmt.Errorf("meta extension %q must start with '.': %w", s.MetaExtension, metaguid.ErrInvalidConfig)
	}

	return s, nil
}

// loadProjectConfig loads an explicit config file, or <root>/metaguid.yaml when present.
func loadProjectConfig(root, explicitPath string) (*config.ProjectConfig, error) {
	if explicitPath != "" {
		cfg, err := config.LoadFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w: %w", explicitPath, metaguid.ErrInvalidConfig, err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(root)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w: %w", config.ConfigFileName, metaguid.ErrInvalidConfig, err)
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
