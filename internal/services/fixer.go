package services

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/vvka-141/metaguid/internal/files/filesystem"
	"github.com/vvka-141/metaguid/internal/sidecar"
	"github.com/vvka-141/metaguid/pkg/metaguid"
)

// FixService applies a mapping to the sidecar files of a project.
// Thread-Safety: NOT safe for concurrent Fix() calls on the same project.
type FixService struct {
	patcher    metaguid.SidecarPatcher
	fsProvider filesystem.FileSystemProvider
	logger     metaguid.Logger
}

// NewFixService creates a new FixService with all dependencies injected.
// Panics on nil dependencies.
func NewFixService(
	patcher metaguid.SidecarPatcher,
	fsProvider filesystem.FileSystemProvider,
	logger metaguid.Logger,
) *FixService {
	if patcher == nil {
		panic("patcher cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &FixService{
		patcher:    patcher,
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// SidecarPath returns the sidecar location of an asset path under projectRoot,
// using host path separators. The asset path is appended as written and not
// cleaned: "Assets/Folder/" maps to "Assets/Folder/.meta", not to the
// folder's own "Assets/Folder.meta".
func SidecarPath(projectRoot, assetPath, metaExtension string) string {
	sep := string(filepath.Separator)
	return strings.TrimSuffix(projectRoot, sep) + sep + filepath.FromSlash(assetPath) + metaExtension
}

// underPrefix reports whether assetPath stays under prefix once ".." segments
// are resolved.
func underPrefix(assetPath, prefix string) bool {
	if !strings.HasPrefix(assetPath, prefix) {
		return false
	}
	return strings.HasPrefix(path.Clean(assetPath)+"/", prefix)
}

// Fix processes every mapping entry in order.
//
// Entries outside the asset prefix are ignored, entries with a malformed
// identifier or a missing sidecar are reported and counted, and the run goes
// on. Any other I/O failure stops the run; sidecars patched before it stay
// patched. The returned summary reflects the work done up to that point.
func (s *FixService) Fix(mapping *metaguid.Mapping, cfg metaguid.FixConfig) (metaguid.FixSummary, error) {
	var summary metaguid.FixSummary

	if err := cfg.Validate(); err != nil {
		return summary, err
	}

	s.logger.Verbose("Applying %d mapping entries under %s", mapping.Len(), cfg.ProjectRoot)
	if cfg.DryRun {
		s.logger.Verbose("Dry run: no sidecar or backup will be written")
	}

	for _, entry := range mapping.Entries() {
		if !underPrefix(entry.Path, cfg.AssetPrefix) {
			summary.Ignored++
			s.logger.Verbose("Ignoring %s (outside %s)", entry.Path, cfg.AssetPrefix)
			continue
		}

		if err := sidecar.ValidateIdentifier(entry.Identifier); err != nil {
			summary.BadIdentifier++
			s.logger.Info("[SKIP] GUID not hex32: %s -> %s", entry.Path, entry.Identifier)
			s.logger.Verbose("%s: %v", entry.Path, err)
			continue
		}

		metaPath := SidecarPath(cfg.ProjectRoot, entry.Path, cfg.MetaExtension)
		if err := s.lookupSidecar(metaPath); err != nil {
			if !errors.Is(err, metaguid.ErrMissingSidecar) {
				return summary, err
			}
			summary.Missing++
			s.logger.Info("[MISS] meta not found: %s", metaPath)
			continue
		}

		changed, err := s.patcher.Patch(metaPath, entry.Identifier)
		if err != nil {
			return summary, fmt.Errorf("failed to patch %s: %w", entry.Path, err)
		}
		if changed {
			summary.Fixed++
			s.logger.Verbose("Fixed %s -> %s", metaPath, entry.Identifier)
		} else {
			summary.Unchanged++
			s.logger.Verbose("Unchanged %s", metaPath)
		}
	}

	return summary, nil
}

// lookupSidecar returns an error wrapping metaguid.ErrMissingSidecar when the
// sidecar does not exist. Other stat failures are returned as they are.
func (s *FixService) lookupSidecar(metaPath string) error {
	exists, err := filesystem.Exists(s.fsProvider, metaPath)
	if err != nil {
		return fmt.Errorf("failed to check sidecar %s: %w", metaPath, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", metaPath, metaguid.ErrMissingSidecar)
	}
	return nil
}
