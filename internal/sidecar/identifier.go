package sidecar

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/metaguid/pkg/metaguid"
)

// IsValidIdentifier reports whether s is exactly 32 hexadecimal characters
// (either case), the form sidecar files use for asset identifiers.
func IsValidIdentifier(s string) bool {
	if len(s) != metaguid.IdentifierLength {
		return false
	}
	// uuid.Parse accepts the undashed 32-character form and rejects non-hex input.
	_, err := uuid.Parse(s)
	return err == nil
}

// ValidateIdentifier returns an error wrapping metaguid.ErrBadIdentifier if s
// is not a valid identifier.
func ValidateIdentifier(s string) error {
	if !IsValidIdentifier(s) {
		return fmt.Errorf("%q: %w", s, metaguid.ErrBadIdentifier)
	}
	return nil
}

// ReadIdentifier returns the value of the first identifier line in content.
func ReadIdentifier(content []byte) (string, bool) {
	for _, line := range SplitLines(content) {
		if strings.HasPrefix(line, metaguid.IdentifierPrefix) {
			value := strings.TrimSpace(strings.TrimPrefix(line, metaguid.IdentifierPrefix))
			return value, value != ""
		}
	}
	return "", false
}
