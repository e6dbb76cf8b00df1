package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/leetcode-tui/internal/config"
	"github.com/atomicstack/leetcode-tui/internal/event"
	"github.com/atomicstack/leetcode-tui/internal/notification"
	"github.com/atomicstack/leetcode-tui/internal/screen"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default(t.TempDir())
	cfg.DB.Path = filepath.Join(t.TempDir(), "db", "leetcode.db")
	return cfg
}

func TestOpenWiresSession(t *testing.T) {
	cfg := testConfig(t)
	bus := event.New(event.WithShutdown(func() {}))
	s, err := open(cfg, bus, screen.New(100, 30))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.close()

	if s.core.Current().Name() != notification.TopicList {
		t.Fatalf("expected topic list focused, got %s", s.core.Current().Name())
	}

	v, _ := s.core.Widget(notification.QuestionList)
	ql, _ := v.QuestionList()
	if ql.Topic().Slug != "all" {
		t.Fatalf("expected the all topic to be announced, got %q", ql.Topic().Slug)
	}
	for i := 0; i < 40; i++ {
		if err := s.core.Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}
	if len(s.core.Popups()) != 0 {
		t.Fatalf("expected no error popups against an empty database, got %d", len(s.core.Popups()))
	}
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	cfg := testConfig(t)
	for i := 0; i < 2; i++ {
		bus := event.New(event.WithShutdown(func() {}))
		s, err := open(cfg, bus, screen.New(80, 24))
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		s.close()
	}
}

func TestOpenRejectsUnusableDatabasePath(t *testing.T) {
	cfg := testConfig(t)
	cfg.DB.Path = t.TempDir()
	bus := event.New(event.WithShutdown(func() {}))
	defer bus.Close()
	if _, err := open(cfg, bus, screen.New(80, 24)); err == nil {
		t.Fatalf("expected error when the database path is a directory")
	}
}
