package sidecar

import (
	"strings"

	"github.com/vvka-141/metaguid/pkg/metaguid"
)

// SplitLines splits content after every '\n', keeping the terminators.
// A final line without terminator is returned as-is; empty content yields no lines.
func SplitLines(content []byte) []string {
	s := string(content)
	var lines []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}

// IdentifierLine formats the identifier line written into sidecars.
func IdentifierLine(identifier string) string {
	return metaguid.IdentifierPrefix + " " + identifier + "\n"
}

// Rewrite returns lines with the identifier field set to identifier.
//
// Every line starting with the identifier prefix is replaced. When there is
// none, the identifier line goes right after the first format-version line;
// when that is missing too, a format-version line carrying formatVersion and
// the identifier line are prepended. The input slice is not modified.
func Rewrite(lines []string, identifier, formatVersion string) []string {
	idLine := IdentifierLine(identifier)

	out := make([]string, 0, len(lines)+2)
	written := false
	for _, line := range lines {
		if strings.HasPrefix(line, metaguid.IdentifierPrefix) {
			out = append(out, idLine)
			written = true
			continue
		}
		out = append(out, line)
	}
	if written {
		return out
	}

	for i, line := range out {
		if !strings.HasPrefix(line, metaguid.FormatVersionPrefix) {
			continue
		}
		// An unterminated anchor would otherwise swallow the inserted line.
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		result := make([]string, 0, len(out)+1)
		result = append(result, out[:i]...)
		result = append(result, line, idLine)
		return append(result, out[i+1:]...)
	}

	header := metaguid.FormatVersionPrefix + " " + formatVersion + "\n"
	return append([]string{header, idLine}, out...)
}
