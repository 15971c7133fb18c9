package metaguid

import (
	"errors"
	"fmt"
	"strings"
)

// MappingEntry associates a normalized asset path with the identifier its
// sidecar should carry.
type MappingEntry struct {
	// Path is a forward-slash path relative to the project root
	Path string

	// Identifier is the raw token from the mapping file; it is validated by
	// the fix service, not by the reader
	Identifier string
}

// Mapping is a path -> identifier lookup that remembers the order in which
// paths were first seen. A later entry for the same path replaces the
// identifier but keeps the original position.
type Mapping struct {
	index   map[string]int
	entries []MappingEntry
}

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{index: make(map[string]int)}
}

// Set inserts or overwrites the identifier for path.
func (m *Mapping) Set(path, identifier string) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[path]; ok {
		m.entries[i].Identifier = identifier
		return
	}
	m.index[path] = len(m.entries)
	m.entries = append(m.entries, MappingEntry{Path: path, Identifier: identifier})
}

// Get returns the identifier stored for path.
func (m *Mapping) Get(path string) (string, bool) {
	if m == nil {
		return "", false
	}
	i, ok := m.index[path]
	if !ok {
		return "", false
	}
	return m.entries[i].Identifier, true
}

// Len returns the number of distinct paths.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns a copy of the entries in first-insertion order.
func (m *Mapping) Entries() []MappingEntry {
	if m == nil {
		return nil
	}
	out := make([]MappingEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// FixConfig contains all parameters needed for a fix run.
type FixConfig struct {
	// ProjectRoot is the directory mapping paths are resolved against
	ProjectRoot string

	// AssetPrefix filters mapping paths; others are ignored
	AssetPrefix string

	// MetaExtension is appended to an asset path to locate its sidecar
	MetaExtension string

	// DryRun reports what would change without writing sidecars or backups
	DryRun bool

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the FixConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *FixConfig) Validate() error {
	var errs []error

	if c.ProjectRoot == "" {
		errs = append(errs, fmt.Errorf("ProjectRoot is required: %w", ErrInvalidConfig))
	}

	if c.AssetPrefix != "" && !strings.HasSuffix(c.AssetPrefix, "/") {
		errs = append(errs, fmt.Errorf("AssetPrefix %q must end with '/': %w", c.AssetPrefix, ErrInvalidConfig))
	}

	if c.MetaExtension == "" {
		errs = append(errs, fmt.Errorf("MetaExtension is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// FixSummary holds the run counters reported at the end of a fix run.
type FixSummary struct {
	Fixed         int // sidecars rewritten (or that would be, in dry-run)
	Unchanged     int // sidecars that already carried the identifier
	Missing       int // entries whose sidecar does not exist
	BadIdentifier int // entries whose identifier is not 32 hex characters
	Ignored       int // entries outside the asset prefix
}

// DumpConfig contains all parameters needed to write a mapping file from a project.
type DumpConfig struct {
	// ProjectRoot is the directory containing the asset folder
	ProjectRoot string

	// AssetPrefix names the folder that is scanned
	AssetPrefix string

	// ScriptsOnly restricts the dump to .cs assets
	ScriptsOnly bool

	// OutputPath is where the mapping file is written
	OutputPath string
}

// SidecarPatcher rewrites the identifier field of a single sidecar file.
type SidecarPatcher interface {
	// Patch replaces or inserts the identifier line and reports whether the
	// file content changed.
	Patch(path, identifier string) (bool, error)
}
