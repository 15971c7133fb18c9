package services

import (
	"bytes"
	"fmt"

	"github.com/vvka-141/metaguid/internal/files/filesystem"
	"github.com/vvka-141/metaguid/internal/files/scanner"
	"github.com/vvka-141/metaguid/internal/mapping"
	"github.com/vvka-141/metaguid/pkg/metaguid"
)

// DumpService writes the identifiers currently stored in a project's
// sidecars to a mapping file that FixService can consume later.
type DumpService struct {
	scanner    *scanner.Scanner
	fsProvider filesystem.FileSystemProvider
	logger     metaguid.Logger
}

// NewDumpService creates a new DumpService. Panics on nil dependencies.
func NewDumpService(sc *scanner.Scanner, fsProvider filesystem.FileSystemProvider, logger metaguid.Logger) *DumpService {
	if sc == nil {
		panic("scanner cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &DumpService{
		scanner:    sc,
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// Dump scans the asset folder and writes the mapping file to cfg.OutputPath.
func (s *DumpService) Dump(cfg metaguid.DumpConfig) (scanner.Result, error) {
	if cfg.ProjectRoot == "" || cfg.OutputPath == "" {
		return scanner.Result{}, fmt.Errorf("project root and output path are required: %w", metaguid.ErrInvalidConfig)
	}

	var filter scanner.Filter
	if cfg.ScriptsOnly {
		filter = scanner.ScriptsOnly
	}

	res, err := s.scanner.Scan(cfg.ProjectRoot, cfg.AssetPrefix, filter)
	if err != nil {
		return scanner.Result{}, err
	}

	for _, orphan := range res.Orphans {
		s.logger.Verbose("Skipping orphaned sidecar %s", orphan)
	}
	for _, p := range res.NoIdentifier {
		s.logger.Verbose("Skipping sidecar without guid %s", p)
	}

	var buf bytes.Buffer
	if err := mapping.Write(&buf, res.Entries); err != nil {
		return scanner.Result{}, err
	}
	if err := s.fsProvider.WriteFile(cfg.OutputPath, buf.Bytes(), 0644); err != nil {
		return scanner.Result{}, fmt.Errorf("failed to write %s: %w", cfg.OutputPath, err)
	}

	s.logger.Info("Wrote: %s (%d entries)", cfg.OutputPath, len(res.Entries))
	return res, nil
}
