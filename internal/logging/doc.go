// Package logging provides concrete implementations of the metaguid.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted progress lines to a writer (stdout by default)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
