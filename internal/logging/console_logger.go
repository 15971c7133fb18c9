package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vvka-141/metaguid/pkg/metaguid"
)

// ConsoleLogger writes log messages line by line to an output writer.
// Per-entry diagnostics of a fix run go to stdout so they interleave with
// the summary block; errors go to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	out     io.Writer
	errOut  io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to stdout and stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stdout, os.Stderr, verbose)
}

// NewConsoleLoggerTo creates a ConsoleLogger with explicit writers.
func NewConsoleLoggerTo(out, errOut io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		out:     out,
		errOut:  errOut,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.out, "[VERBOSE] ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write(l.out, "", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.errOut, "[ERROR] ", format, args)
}

func (l *ConsoleLogger) write(w io.Writer, prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(w, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(w, prefix+format+"\n")
	}
}

var _ metaguid.Logger = (*ConsoleLogger)(nil)
