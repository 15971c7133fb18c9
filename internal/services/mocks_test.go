package services

import (
	"bytes"
	"sync"

	"github.com/vvka-141/metaguid/internal/logging"
)

// patchCall records one call to fakePatcher.Patch.
type patchCall struct {
	path       string
	identifier string
}

// fakePatcher records calls and returns scripted results.
type fakePatcher struct {
	mu      sync.Mutex
	calls   []patchCall
	changed bool
	errFor  map[string]error
}

func (f *fakePatcher) Patch(path, identifier string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, patchCall{path: path, identifier: identifier})
	if err, ok := f.errFor[path]; ok {
		return false, err
	}
	return f.changed, nil
}

// newBufferLogger returns a ConsoleLogger that writes to a buffer.
func newBufferLogger(verbose bool) (*logging.ConsoleLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.NewConsoleLoggerTo(&buf, &buf, verbose), &buf
}
