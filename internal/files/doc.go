// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Sidecar discovery for the dump command
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/metaguid/internal/files/filesystem"
//	    "github.com/vvka-141/metaguid/internal/files/scanner"
//	)
//
//	fsProvider := filesystem.NewOSFileSystem()
//	sc := scanner.NewScannerWithFS(fsProvider, ".meta")
//	result, err := sc.Scan("/path/to/project", "Assets/", scanner.ScriptsOnly)
package files
