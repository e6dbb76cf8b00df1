package widget

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/leetcode-tui/internal/notification"
	"github.com/atomicstack/leetcode-tui/internal/task"
)

// HelpBar shows the key hints published by whichever widget or popup holds
// focus.
type HelpBar struct {
	base
	owner   notification.WidgetName
	entries []notification.HelpEntry
}

func NewHelpBar(env Env) *HelpBar {
	return &HelpBar{base: base{name: notification.HelpBar, env: env}}
}

func (w *HelpBar) Entries() []notification.HelpEntry { return w.entries }
func (w *HelpBar) Owner() notification.WidgetName    { return w.owner }

func (w *HelpBar) Setup() error          { return nil }
func (w *HelpBar) IsNavigable() bool     { return false }
func (w *HelpBar) CapturesAllKeys() bool { return false }

func (w *HelpBar) SetActive() notification.Notification {
	w.active = true
	return notification.None()
}

func (w *HelpBar) SetInactive() notification.Notification {
	w.active = false
	return notification.None()
}

func (w *HelpBar) HandleKey(tea.KeyMsg) (notification.Notification, error) {
	return notification.None(), nil
}

func (w *HelpBar) ProcessNotification(n notification.Notification) (notification.Notification, error) {
	if h, ok := n.Payload.(notification.HelpEntries); ok {
		w.owner = h.Owner
		w.entries = h.Entries
	}
	return notification.None(), nil
}

func (w *HelpBar) ProcessTaskResponse(task.Response) (notification.Notification, error) {
	return notification.None(), nil
}
