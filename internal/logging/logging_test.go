package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/leetcode-tui/internal/apperr"
)

func TestTraceWritesJSONLinesWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})

	Trace("ignored", nil)
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("expected no file while tracing is disabled")
	}

	SetTraceEnabled(true)
	Trace("focus.move", map[string]interface{}{"from": "topic_list", "to": "question_list"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("decode trace: %v", err)
	}
	if entry.Event != "focus.move" || entry.Payload["to"] != "question_list" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "err.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)
	Error(errors.New("worker stopped"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "worker stopped") {
		t.Fatalf("expected error text in log, got %q", string(data))
	}
}

func TestErrorTagsApplicationKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "err.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(apperr.Wrap(apperr.KindStorage, errors.New("disk full"), "import"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "[storage] ") || !strings.Contains(string(data), "disk full") {
		t.Fatalf("expected kind-tagged error line, got %q", string(data))
	}
}

func TestPathIn(t *testing.T) {
	if got := PathIn("/home/u/.config/leetcode_tui"); got != "/home/u/.config/leetcode_tui/leetcode-tui.log" {
		t.Fatalf("expected log file in config dir, got %q", got)
	}
	if got := PathIn(""); got != FileName {
		t.Fatalf("expected bare file name, got %q", got)
	}
}
