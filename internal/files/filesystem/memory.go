package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File interface for in-memory files
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    *memoryFileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	return append([]byte(nil), f.content...), nil
}

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.getEntriesUnder(d.absPath)

	// Sort by path for deterministic order
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	for _, entry := range entries {
		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()

			// Relative paths are reported against the walked directory, like filepath.Walk
			rel := strings.TrimPrefix(strings.TrimPrefix(entry.absPath, d.absPath), "/")
			if rel == "" {
				rel = "."
			}
			callbackErr = fn(&memoryFile{
				absPath: entry.absPath,
				relPath: rel,
				content: entry.content,
				info:    entry.info,
			}, nil)
		}()

		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryFile // map of absolute path -> file
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}

	mfs.files[root] = &memoryFile{
		absPath: root,
		relPath: ".",
		info: &memoryFileInfo{
			name:    path.Base(root),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	return mfs
}

// Root returns the virtual root directory.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileWithTime(path, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.put(mfs.resolve(filePath), []byte(content), 0644, modTime)
}

// put stores a file; caller must hold the write lock
func (mfs *MemoryFileSystem) put(absPath string, content []byte, mode fs.FileMode, modTime time.Time) {
	relPath := strings.TrimPrefix(absPath, mfs.root+"/")

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: relPath,
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    mode,
			modTime: modTime,
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// resolve maps a caller path onto an absolute virtual path
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}

	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = &memoryFile{
		absPath: dir,
		relPath: strings.TrimPrefix(dir, mfs.root+"/"),
		info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	mfs.ensureDirectoriesExist(dir)
}

// getEntriesUnder returns all files and directories under the given path
func (mfs *MemoryFileSystem) getEntriesUnder(basePath string) []*memoryFile {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	var entries []*memoryFile
	for p, file := range mfs.files {
		var matched bool
		if basePath == "/" {
			matched = strings.HasPrefix(p, "/")
		} else {
			matched = p == basePath || strings.HasPrefix(p, basePath+"/")
		}
		if matched {
			entries = append(entries, file)
		}
	}
	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	if file, exists := mfs.files[absPath]; exists {
		if !file.info.IsDir() {
			return nil, fmt.Errorf("path is not a directory: %s", openPath)
		}
		return &memoryDirectory{absPath: absPath, fs: mfs}, nil
	}

	return nil, &fs.PathError{Op: "open", Path: openPath, Err: fs.ErrNotExist}
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.resolve(filePath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}
	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return append([]byte(nil), file.content...), nil
}

// WriteFile implements FileSystemProvider.WriteFile.
// An existing file keeps its mode, matching os.WriteFile.
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	absPath := mfs.resolve(filePath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if existing, ok := mfs.files[absPath]; ok {
		if existing.info.IsDir() {
			return fmt.Errorf("path is a directory, not a file: %s", filePath)
		}
		perm = existing.info.mode
	}
	mfs.put(absPath, append([]byte(nil), data...), perm, time.Now())
	return nil
}

// CopyFile implements FileSystemProvider.CopyFile
func (mfs *MemoryFileSystem) CopyFile(src, dst string) error {
	srcPath := mfs.resolve(src)
	dstPath := mfs.resolve(dst)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	file, ok := mfs.files[srcPath]
	if !ok {
		return &fs.PathError{Op: "copy", Path: src, Err: fs.ErrNotExist}
	}
	if file.info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", src)
	}
	mfs.put(dstPath, append([]byte(nil), file.content...), file.info.mode, file.info.modTime)
	return nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.resolve(statPath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return file.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
