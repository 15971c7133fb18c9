package metaguid

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	mapping, err := reader.ReadFile(path)
//	if errors.Is(err, metaguid.ErrEncoding) {
//	    // mapping file is not UTF-8
//	}
var (
	// ErrUsage indicates the command line is missing the mapping file argument.
	ErrUsage = errors.New("usage error")

	// ErrEncoding indicates the mapping file could not be decoded as UTF-8 text.
	ErrEncoding = errors.New("mapping file is not valid UTF-8")

	// ErrMappingNotFound indicates the mapping file does not exist.
	ErrMappingNotFound = errors.New("mapping file not found")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrBadIdentifier indicates an identifier is not 32 hexadecimal characters.
	// Recovered per entry by the fix service.
	ErrBadIdentifier = errors.New("identifier is not 32 hex characters")

	// ErrMissingSidecar indicates the sidecar of a mapped asset does not exist.
	// Recovered per entry by the fix service.
	ErrMissingSidecar = errors.New("sidecar file not found")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrEncoding):
		return ExitConfigError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMappingNotFound):
		return ExitMappingNotFound
	}

	return ExitGeneralError
}
