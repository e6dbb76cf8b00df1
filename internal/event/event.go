// Package event is the process-wide funnel through which any component asks
// for a redraw, injects a key, or waits for a one-shot reply without holding a
// reference to the main loop.
package event

import (
	"fmt"
	"path/filepath"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind identifies an event variant.
type Kind int

const (
	Quit Kind = iota
	Key
	Render
	Resume
	Suspend
	Resize
	Topic
)

var kindNames = [...]string{"quit", "key", "render", "resume", "suspend", "resize", "topic"}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is a tagged union; only the fields of its Kind are meaningful.
type Event struct {
	Kind  Kind
	Key   tea.KeyMsg
	Trace string
	Cols  int
	Rows  int
	Topic string
}

// QuitEvent asks the main loop to exit.
func QuitEvent() Event { return Event{Kind: Quit} }

// KeyEvent injects a synthetic key.
func KeyEvent(k tea.KeyMsg) Event { return Event{Kind: Key, Key: k} }

// RenderEvent requests a redraw tagged with the caller's file:line.
func RenderEvent() Event {
	return Event{Kind: Render, Trace: caller(2)}
}

// ResumeEvent and SuspendEvent bracket handing the terminal to a child process.
func ResumeEvent() Event  { return Event{Kind: Resume} }
func SuspendEvent() Event { return Event{Kind: Suspend} }

// ResizeEvent reports new terminal dimensions.
func ResizeEvent(cols, rows int) Event { return Event{Kind: Resize, Cols: cols, Rows: rows} }

// TopicEvent asks the topic list to hover the named topic.
func TopicEvent(name string) Event { return Event{Kind: Topic, Topic: name} }

func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
