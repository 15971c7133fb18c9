// Package mapping reads and writes the CSV files that associate asset paths
// with sidecar identifiers.
//
// Reading is an explicit two-stage parse. The first stage accepts files whose
// header row names both a "path" and a "guid" column; the second re-reads the
// file as headerless "path,guid[,...]" rows. The stage that produced the
// mapping is reported as a Format so callers and tests can tell them apart.
//
// Paths are normalized on the way in (whitespace, byte-order marks and
// surrounding quotes trimmed, backslashes turned into slashes). Identifiers
// are only trimmed; validating them is left to the fix service.
package mapping
