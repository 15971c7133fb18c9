package metaguid

// Exit codes for semantic error classification.
//   - 0: Success (including runs with skipped entries)
//   - 1: General error or missing mapping argument
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Run completed, per-entry skips included
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 1  // CLI usage error (missing mapping file argument)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or undecodable mapping file
	ExitMappingNotFound = 11 // Mapping file does not exist
)

const (
	// DefaultAssetPrefix is the root folder prefix every accepted mapping path must carry.
	// Entries outside it (Packages/, ProjectSettings/) are ignored without a diagnostic.
	DefaultAssetPrefix = "Assets/"

	// DefaultMetaExtension is appended to an asset path to locate its sidecar.
	DefaultMetaExtension = ".meta"

	// DefaultBackupSuffix is appended to a sidecar path to name its one-time backup.
	DefaultBackupSuffix = ".bak"

	// DefaultFileFormatVersion is written in the synthetic header of sidecars
	// that carry neither a format-version nor an identifier line.
	DefaultFileFormatVersion = "2"

	// IdentifierPrefix starts the identifier line of a sidecar file.
	IdentifierPrefix = "guid:"

	// FormatVersionPrefix starts the format-version line of a sidecar file.
	FormatVersionPrefix = "fileFormatVersion:"

	// IdentifierLength is the number of hexadecimal characters in a valid identifier.
	IdentifierLength = 32

	// PathColumn and IdentifierColumn are the header names of a mapping file.
	PathColumn       = "path"
	IdentifierColumn = "guid"

	// DefaultDumpFileAll and DefaultDumpFileScripts name the files written by dump.
	DefaultDumpFileAll     = "guid_map_all.csv"
	DefaultDumpFileScripts = "guid_map_scripts.csv"
)
