package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// Calculator is an interface for computing file checksums.
// This abstraction allows for different checksum strategies and algorithms.
type Calculator interface {
	// CalculateNormalized computes a checksum of content with line
	// terminators normalized to LF.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateNormalized computes SHA-256 of content after line-terminator normalization.
func (c SHA256) CalculateNormalized(content []byte) string {
	hash := sha256.Sum256(NormalizeLineEndings(content))
	return hex.EncodeToString(hash[:])
}

// NormalizeLineEndings converts CRLF and lone CR terminators to LF.
// The input slice is never modified.
func NormalizeLineEndings(content []byte) []byte {
	if bytes.IndexByte(content, '\r') < 0 {
		return content
	}

	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		ch := content[i]
		if ch != '\r' {
			out = append(out, ch)
			continue
		}
		out = append(out, '\n')
		if i+1 < len(content) && content[i+1] == '\n' {
			i++
		}
	}
	return out
}
