package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/leetcode-tui/internal/logging/events"
	"github.com/atomicstack/leetcode-tui/internal/notification"
	"github.com/atomicstack/leetcode-tui/internal/popup"
	"github.com/atomicstack/leetcode-tui/internal/task"
)

var (
	selectKey  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
	dismissKey = key.NewBinding(key.WithKeys("enter", "esc", "q"), key.WithHelp("esc", "close"))
)

// Popup is an entry on the overlay stack. It holds either a text message or a
// selection list, decided by the notification it is fed.
type Popup struct {
	base
	title     string
	kind      notification.MessageKind
	message   *popup.Popup
	selection *popup.SelectPopup[string]
	closed    bool
}

// NewPopup builds an empty, inactive popup.
func NewPopup(env Env) *Popup {
	return &Popup{base: base{name: notification.Popup, env: env}}
}

func (p *Popup) Title() string                         { return p.title }
func (p *Popup) MessageKind() notification.MessageKind { return p.kind }

// Message returns the text content when this is a message popup.
func (p *Popup) Message() (*popup.Popup, bool) { return p.message, p.message != nil }

// Selection returns the list when this is a selection popup.
func (p *Popup) Selection() (*popup.SelectPopup[string], bool) {
	return p.selection, p.selection != nil
}

// IsActive reports whether the popup is still shown. An inactive popup is
// popped on the next tick.
func (p *Popup) IsActive() bool {
	switch {
	case p.message != nil:
		return p.message.Visible
	case p.selection != nil:
		return p.selection.Visible
	}
	return false
}

func (p *Popup) Setup() error          { return nil }
func (p *Popup) IsNavigable() bool     { return false }
func (p *Popup) CapturesAllKeys() bool { return true }

// SetActive shows the popup again unless it was closed.
func (p *Popup) SetActive() notification.Notification {
	if p.closed || p.IsActive() {
		return p.help()
	}
	switch {
	case p.message != nil:
		p.message.Toggle()
	case p.selection != nil:
		p.selection.Toggle()
	}
	return p.help()
}

func (p *Popup) SetInactive() notification.Notification {
	return notification.None()
}

func (p *Popup) help() notification.Notification {
	if p.selection != nil {
		return helpFor(p.name, upKey, downKey, selectKey)
	}
	return helpFor(p.name, upKey, downKey, dismissKey)
}

// ProcessNotification fills the popup from a Message or Selection and shows
// it.
func (p *Popup) ProcessNotification(n notification.Notification) (notification.Notification, error) {
	switch body := n.Payload.(type) {
	case notification.Message:
		p.title, p.kind = body.Title, body.Kind
		p.message = popup.New(wrapLines(body.Lines, p.width()))
	case notification.Selection:
		p.title, p.kind = body.Title, notification.Notice
		p.selection = popup.NewSelect(body.Items, body.Reply)
	default:
		return notification.None(), nil
	}
	return p.SetActive(), nil
}

func (p *Popup) ProcessTaskResponse(resp task.Response) (notification.Notification, error) {
	events.Task.Stale(resp.ID, string(p.name), resp.Kind())
	return notification.None(), nil
}

func (p *Popup) HandleKey(k tea.KeyMsg) (notification.Notification, error) {
	if p.selection != nil {
		switch {
		case key.Matches(k, upKey):
			p.selection.PrevItem()
		case key.Matches(k, downKey):
			p.selection.NextItem()
		case key.Matches(k, selectKey):
			p.closed = true
			_, n := p.selection.Close()
			return n, nil
		}
		return notification.None(), nil
	}
	if p.message == nil {
		return notification.None(), nil
	}
	switch {
	case key.Matches(k, upKey):
		p.message.ScrollUp()
	case key.Matches(k, downKey):
		p.message.ScrollDown()
	case key.Matches(k, dismissKey):
		p.closed = true
		if p.message.Visible {
			p.message.Toggle()
		}
	}
	return notification.None(), nil
}

// width is the inner text width of the popup box.
func (p *Popup) width() int {
	w := p.env.cols()*3/5 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func wrapLines(lines []string, width int) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			out = append(out, "")
			continue
		}
		out = append(out, strings.Split(ansi.Wrap(line, width, ""), "\n")...)
	}
	return out
}
