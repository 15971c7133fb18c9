// Package sidecar reads and rewrites the identifier line of asset sidecar
// (.meta) files.
//
// A sidecar is handled as an ordered list of lines that keep their original
// terminators. Patching replaces every "guid:" line, or inserts one after the
// first "fileFormatVersion:" line, or prepends a two-line header when neither
// exists. All other lines are written back byte-for-byte.
//
// Before the first write a verbatim backup is copied next to the sidecar.
// An existing backup is never replaced, so it always holds the oldest
// snapshot taken by any run.
package sidecar
