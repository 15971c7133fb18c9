package scanner

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/metaguid/internal/files/filesystem"
	"github.com/vvka-141/metaguid/internal/sidecar"
	"github.com/vvka-141/metaguid/pkg/metaguid"
)

// Result contains the outcome of scanning an asset folder.
type Result struct {
	// Entries maps asset paths (root-relative, forward slashes) to identifiers, sorted by path
	Entries []metaguid.MappingEntry

	// Orphans lists sidecars whose asset does not exist
	Orphans []string

	// NoIdentifier lists sidecars without an identifier line
	NoIdentifier []string
}

// Filter decides whether an asset path is included in the scan.
type Filter func(assetPath string) bool

// ScriptsOnly keeps C# script assets.
func ScriptsOnly(assetPath string) bool {
	return strings.EqualFold(path.Ext(assetPath), ".cs")
}

// Scanner discovers sidecar files from a directory tree.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider    filesystem.FileSystemProvider
	metaExtension string
}

// NewScanner creates a new sidecar scanner backed by the OS filesystem.
func NewScanner(metaExtension string) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), metaExtension)
}

// NewScannerWithFS creates a new scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, metaExtension string) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if metaExtension == "" {
		metaExtension = metaguid.DefaultMetaExtension
	}
	return &Scanner{
		fsProvider:    fsProvider,
		metaExtension: metaExtension,
	}
}

// Scan walks <projectRoot>/<assetPrefix> and collects the identifier of every
// sidecar whose asset passes filter. A nil filter accepts everything.
func (s *Scanner) Scan(projectRoot, assetPrefix string, filter Filter) (Result, error) {
	assetDir := strings.TrimSuffix(assetPrefix, "/")
	root := filepath.Join(projectRoot, filepath.FromSlash(assetDir))

	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open asset folder: %w", err)
	}

	var result Result
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		if file.Info().IsDir() || !strings.HasSuffix(file.Info().Name(), s.metaExtension) {
			return nil
		}

		rel := filepath.ToSlash(file.RelativePath())
		assetPath := path.Join(assetDir, strings.TrimSuffix(rel, s.metaExtension))
		if filter != nil && !filter(assetPath) {
			return nil
		}

		exists, err := filesystem.Exists(s.fsProvider, strings.TrimSuffix(file.Path(), s.metaExtension))
		if err != nil {
			return fmt.Errorf("failed to check asset %s: %w", assetPath, err)
		}
		if !exists {
			result.Orphans = append(result.Orphans, assetPath+s.metaExtension)
			return nil
		}

		content, err := file.ReadContent()
		if err != nil {
			return fmt.Errorf("failed to read sidecar %s: %w", rel, err)
		}
		id, ok := sidecar.ReadIdentifier(content)
		if !ok {
			result.NoIdentifier = append(result.NoIdentifier, assetPath+s.metaExtension)
			return nil
		}

		result.Entries = append(result.Entries, metaguid.MappingEntry{Path: assetPath, Identifier: id})
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	sort.Slice(result.Entries, func(i, j int) bool {
		return result.Entries[i].Path < result.Entries[j].Path
	})
	sort.Strings(result.Orphans)
	sort.Strings(result.NoIdentifier)

	return result, nil
}
