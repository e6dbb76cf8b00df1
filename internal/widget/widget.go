// Package widget holds the concrete widgets owned by the orchestrator. The set
// is closed: Variant has one arm per widget kind and dispatch is a switch on
// that kind.
package widget

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/leetcode-tui/internal/config"
	"github.com/atomicstack/leetcode-tui/internal/event"
	"github.com/atomicstack/leetcode-tui/internal/notification"
	"github.com/atomicstack/leetcode-tui/internal/task"
)

// Env is what every widget is built with. Config is read-only.
type Env struct {
	Sender task.Sender
	Bus    *event.Bus
	Config *config.Config
	// Rows reports how many list rows fit on screen; Cols the screen width.
	Rows func() int
	Cols func() int
}

func (e Env) rows() int {
	if e.Rows == nil {
		return 20
	}
	return e.Rows()
}

func (e Env) cols() int {
	if e.Cols == nil {
		return 80
	}
	return e.Cols()
}

func (e Env) language() string {
	if e.Config == nil {
		return ""
	}
	return e.Config.Solutions.Language
}

// Kind tags the arm a Variant holds.
type Kind int

const (
	KindInvalid Kind = iota
	KindTopicList
	KindQuestionList
	KindStats
	KindHelpBar
)

func (k Kind) String() string {
	switch k {
	case KindTopicList:
		return "topic list"
	case KindQuestionList:
		return "question list"
	case KindStats:
		return "stats"
	case KindHelpBar:
		return "help bar"
	default:
		return "invalid"
	}
}

// capabilities is the method set every arm provides.
type capabilities interface {
	Name() notification.WidgetName
	Setup() error
	HandleKey(tea.KeyMsg) (notification.Notification, error)
	ProcessNotification(notification.Notification) (notification.Notification, error)
	ProcessTaskResponse(task.Response) (notification.Notification, error)
	IsNavigable() bool
	CapturesAllKeys() bool
	SetActive() notification.Notification
	SetInactive() notification.Notification
	Notifications() []notification.Notification
}

// Variant is the closed sum over concrete widgets. Build one with the
// constructors below; the zero value is invalid.
type Variant struct {
	kind      Kind
	topics    *TopicList
	questions *QuestionList
	stats     *Stats
	help      *HelpBar
}

func TopicListVariant(w *TopicList) Variant       { return Variant{kind: KindTopicList, topics: w} }
func QuestionListVariant(w *QuestionList) Variant { return Variant{kind: KindQuestionList, questions: w} }
func StatsVariant(w *Stats) Variant               { return Variant{kind: KindStats, stats: w} }
func HelpBarVariant(w *HelpBar) Variant           { return Variant{kind: KindHelpBar, help: w} }

// Kind reports which arm is set.
func (v Variant) Kind() Kind { return v.kind }

func (v Variant) TopicList() (*TopicList, bool)       { return v.topics, v.kind == KindTopicList }
func (v Variant) QuestionList() (*QuestionList, bool) { return v.questions, v.kind == KindQuestionList }
func (v Variant) Stats() (*Stats, bool)               { return v.stats, v.kind == KindStats }
func (v Variant) HelpBar() (*HelpBar, bool)           { return v.help, v.kind == KindHelpBar }

func (v Variant) arm() capabilities {
	switch v.kind {
	case KindTopicList:
		return v.topics
	case KindQuestionList:
		return v.questions
	case KindStats:
		return v.stats
	case KindHelpBar:
		return v.help
	}
	panic("widget: invalid variant")
}

func (v Variant) Name() notification.WidgetName { return v.arm().Name() }
func (v Variant) Setup() error                  { return v.arm().Setup() }
func (v Variant) IsNavigable() bool             { return v.arm().IsNavigable() }
func (v Variant) CapturesAllKeys() bool         { return v.arm().CapturesAllKeys() }

func (v Variant) HandleKey(k tea.KeyMsg) (notification.Notification, error) {
	return v.arm().HandleKey(k)
}

func (v Variant) ProcessNotification(n notification.Notification) (notification.Notification, error) {
	return v.arm().ProcessNotification(n)
}

func (v Variant) ProcessTaskResponse(resp task.Response) (notification.Notification, error) {
	return v.arm().ProcessTaskResponse(resp)
}

func (v Variant) SetActive() notification.Notification   { return v.arm().SetActive() }
func (v Variant) SetInactive() notification.Notification { return v.arm().SetInactive() }

// Notifications drains the widget's own queue.
func (v Variant) Notifications() []notification.Notification {
	return v.arm().Notifications()
}

// base carries the state shared by every widget.
type base struct {
	name   notification.WidgetName
	env    Env
	active bool
	queue  []notification.Notification
}

func (b *base) Name() notification.WidgetName { return b.name }

// IsActive reports whether the widget holds focus.
func (b *base) IsActive() bool { return b.active }

func (b *base) push(n notification.Notification) {
	if n.IsNone() {
		return
	}
	b.queue = append(b.queue, n)
}

func (b *base) Notifications() []notification.Notification {
	out := b.queue
	b.queue = nil
	return out
}

func (b *base) send(body task.Body) error {
	return b.env.Sender.Send(task.NewRequest(b.name, body))
}

func helpFor(owner notification.WidgetName, bindings ...key.Binding) notification.Notification {
	entries := make([]notification.HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		entries = append(entries, notification.HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return notification.New(notification.HelpBar, notification.HelpEntries{Owner: owner, Entries: entries})
}

var (
	upKey     = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	downKey   = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	switchKey = key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "switch pane"))
	quitKey   = key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "quit"))
)
