package sidecar

import (
	"fmt"
	"strings"

	"github.com/vvka-141/metaguid/internal/checksum"
	"github.com/vvka-141/metaguid/internal/files/filesystem"
	"github.com/vvka-141/metaguid/pkg/metaguid"
)

// Options tunes a Patcher. Zero values fall back to the metaguid defaults.
type Options struct {
	// BackupSuffix is appended to the sidecar path to name its backup
	BackupSuffix string

	// FormatVersion is used in the synthetic header of sidecars that lack one
	FormatVersion string

	// DryRun computes changes without writing backups or sidecars
	DryRun bool
}

// Patcher rewrites the identifier line of sidecar files.
// It performs no identifier validation; callers check identifiers first.
type Patcher struct {
	fsProvider filesystem.FileSystemProvider
	calculator checksum.Calculator
	opts       Options
}

// NewPatcher creates a Patcher backed by the OS filesystem.
// Panics if calculator is nil.
func NewPatcher(calculator checksum.Calculator, opts Options) *Patcher {
	return NewPatcherWithFS(calculator, filesystem.NewOSFileSystem(), opts)
}

// NewPatcherWithFS creates a Patcher with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if calculator or fsProvider is nil.
func NewPatcherWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider, opts Options) *Patcher {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if opts.BackupSuffix == "" {
		opts.BackupSuffix = metaguid.DefaultBackupSuffix
	}
	if opts.FormatVersion == "" {
		opts.FormatVersion = metaguid.DefaultFileFormatVersion
	}
	return &Patcher{
		calculator: calculator,
		fsProvider: fsProvider,
		opts:       opts,
	}
}

// BackupPath returns where the backup of sidecarPath is kept.
func (p *Patcher) BackupPath(sidecarPath string) string {
	return sidecarPath + p.opts.BackupSuffix
}

// Patch sets the identifier field of the sidecar at path.
//
// A backup is copied first unless one already exists. The sidecar is only
// rewritten when its content differs after line-terminator normalization;
// the returned bool reports that difference.
func (p *Patcher) Patch(path, identifier string) (bool, error) {
	if !p.opts.DryRun {
		if err := p.ensureBackup(path); err != nil {
			return false, err
		}
	}

	content, err := p.fsProvider.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read sidecar %s: %w", path, err)
	}

	updated := []byte(strings.Join(Rewrite(SplitLines(content), identifier, p.opts.FormatVersion), ""))
	if p.calculator.CalculateNormalized(content) == p.calculator.CalculateNormalized(updated) {
		return false, nil
	}
	if p.opts.DryRun {
		return true, nil
	}

	info, err := p.fsProvider.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat sidecar %s: %w", path, err)
	}
	if err := p.fsProvider.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to write sidecar %s: %w", path, err)
	}
	return true, nil
}

func (p *Patcher) ensureBackup(path string) error {
	backupPath := p.BackupPath(path)
	exists, err := filesystem.Exists(p.fsProvider, backupPath)
	if err != nil {
		return fmt.Errorf("failed to check backup %s: %w", backupPath, err)
	}
	if exists {
		return nil
	}
	if err := p.fsProvider.CopyFile(path, backupPath); err != nil {
		return fmt.Errorf("failed to back up sidecar %s: %w", path, err)
	}
	return nil
}

var _ metaguid.SidecarPatcher = (*Patcher)(nil)
