// Package logging writes the application log: plain error lines tagged with
// their application error kind, and JSON trace entries when tracing is on.
// Both go to one file, by default next to config.toml.
package logging

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/leetcode-tui/internal/apperr"
)

// FileName is the log file created in the configuration directory.
const FileName = "leetcode-tui.log"

var (
	traceMu      sync.Mutex
	traceEnabled bool
	logPath      = FileName
)

// PathIn is the log file location inside dir.
func PathIn(dir string) string {
	if strings.TrimSpace(dir) == "" {
		return FileName
	}
	return filepath.Join(dir, FileName)
}

// Error appends err to the log. Application errors are prefixed with their
// kind, e.g. "[storage] open store: ...".
func Error(err error) {
	if err == nil {
		return
	}
	line := err.Error()
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		line = fmt.Sprintf("[%s] %s", appErr.Kind, line)
	}
	appendTo(currentPath(), "logging", func(f *os.File) error {
		log.New(f, "", log.LstdFlags).Println(line)
		return nil
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceEnabled
}

type traceEntry struct {
	Time    time.Time   `json:"time"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Trace appends one JSON line when tracing is enabled. Event names are
// dotted, component first: "focus.move", "task.request", "ui.render".
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	entry := traceEntry{Time: time.Now().UTC(), Event: event, Payload: payload}
	appendTo(currentPath(), "trace logging", func(f *os.File) error {
		return json.NewEncoder(f).Encode(entry)
	})
}

func currentPath() string {
	traceMu.Lock()
	defer traceMu.Unlock()
	return logPath
}

// appendTo opens path for appending and hands it to write. Failures are
// reported on stderr; logging never fails its caller.
func appendTo(path, what string, write func(*os.File) error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", what, err)
		return
	}
	defer f.Close()
	if err := write(f); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", what, err)
	}
}

// Configure sets the log destination. An empty path falls back to FileName in
// the working directory. Missing directories are created.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = FileName
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = FileName
		return
	}
	logPath = path
}

// Path returns the current log destination.
func Path() string {
	return currentPath()
}
