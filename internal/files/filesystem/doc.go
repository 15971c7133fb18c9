// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines interfaces for file and directory operations, enabling
// testability through in-memory implementations while maintaining compatibility
// with the OS filesystem. Sidecar patching, backups and mapping dumps all go
// through FileSystemProvider so they can be exercised without touching disk.
//
// Key interfaces:
//   - FileSystemProvider: Reads, writes, copies and stats files; opens directories
//   - Directory: Represents a directory that can be traversed
//   - File: Represents an individual file with metadata and content
//   - FileInfo: File metadata similar to os.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
