package filesystem

import (
	"errors"
	"io/fs"
	"syscall"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// File represents an individual file with its metadata and content accessor
type File interface {
	// Path returns the absolute path to the file
	Path() string

	// RelativePath returns the path relative to the opened directory
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree, calling the provided function for each file and directory
	// The function receives the file/directory and any error encountered
	// If the function returns an error, walking stops
	Walk(fn func(File, error) error) error
}

// FileSystemProvider abstracts the file operations metaguid performs.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the content of the file at path, creating it with
	// perm if it does not exist. Bytes are written verbatim.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// CopyFile copies src to dst including permission bits and modification
	// time where the platform supports it.
	CopyFile(src, dst string) error

	// Stat returns file information for the given path.
	// A missing path yields an error matching fs.ErrNotExist.
	Stat(path string) (FileInfo, error)
}

// Exists reports whether path exists in the provider.
// A path that runs through a regular file (ENOTDIR) does not exist.
// Other errors are returned to the caller.
func Exists(p FileSystemProvider, path string) (bool, error) {
	_, err := p.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return false, nil
	}
	return false, err
}
