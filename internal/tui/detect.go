package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how output is rendered.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, scripts, and redirected output.
	ModePlain Mode = iota
	// ModeStyled is used when a human is watching the terminal.
	ModeStyled
)

// DetectMode determines whether metaguid should style its output.
//
// Returns ModePlain if:
//   - METAGUID_PLAIN=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdout is not a terminal (piped or redirected output)
//
// Returns ModeStyled otherwise.
func DetectMode() Mode {
	if os.Getenv("METAGUID_PLAIN") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModePlain
	}

	return ModeStyled
}

// IsStyled is a convenience function that returns true if output should be styled.
func IsStyled() bool {
	return DetectMode() == ModeStyled
}
