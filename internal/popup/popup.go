// Package popup holds the modal overlay state: a scrollable text popup and a
// selection popup that answers through a single-shot reply channel.
package popup

import (
	"fmt"

	"github.com/atomicstack/leetcode-tui/internal/notification"
)

const (
	noSelectionMessage = "No item selected in the popup list"
	noSenderMessage    = "Sender not present in the popup list, cannot send the selected item"
)

// Popup is immutable text plus a vertical scroll offset.
type Popup struct {
	Visible bool
	lines   []string
	scroll  int
}

// New builds a hidden popup over lines.
func New(lines []string) *Popup {
	return &Popup{lines: lines}
}

// Toggle flips visibility. It always reports a change.
func (p *Popup) Toggle() bool {
	p.Visible = !p.Visible
	return true
}

// Lines returns the popup content.
func (p *Popup) Lines() []string {
	return p.lines
}

// Scroll is the index of the first visible line.
func (p *Popup) Scroll() int {
	return p.scroll
}

// ScrollDown moves one line down, stopping at the last line.
func (p *Popup) ScrollDown() bool {
	last := len(p.lines) - 1
	if last < 0 {
		last = 0
	}
	if p.scroll >= last {
		return false
	}
	p.scroll++
	return true
}

// ScrollUp moves one line up, stopping at the first line.
func (p *Popup) ScrollUp() bool {
	if p.scroll <= 0 {
		return false
	}
	p.scroll--
	return true
}

// SelectPopup is a list of items with at most one selected entry. The reply
// channel is resolved once, on Close.
type SelectPopup[T any] struct {
	Visible  bool
	items    []T
	selected int
	hasSel   bool
	reply    chan<- int
}

// NewSelect builds a hidden selection popup. The first item is selected when
// the list is non-empty. reply should have room for one value.
func NewSelect[T any](items []T, reply chan<- int) *SelectPopup[T] {
	s := &SelectPopup[T]{items: items, reply: reply}
	if len(items) > 0 {
		s.hasSel = true
	}
	return s
}

// Items returns the selectable entries.
func (s *SelectPopup[T]) Items() []T {
	return s.items
}

// Selected returns the selected index.
func (s *SelectPopup[T]) Selected() (int, bool) {
	return s.selected, s.hasSel
}

// Toggle flips visibility. It always reports a change.
func (s *SelectPopup[T]) Toggle() bool {
	s.Visible = !s.Visible
	return true
}

// NextItem selects the following item, wrapping to the first.
func (s *SelectPopup[T]) NextItem() bool {
	if len(s.items) == 0 {
		return false
	}
	if !s.hasSel || s.selected >= len(s.items)-1 {
		s.selected = 0
	} else {
		s.selected++
	}
	s.hasSel = true
	return true
}

// PrevItem selects the preceding item, wrapping to the last.
func (s *SelectPopup[T]) PrevItem() bool {
	if len(s.items) == 0 {
		return false
	}
	switch {
	case !s.hasSel:
		s.selected = 0
	case s.selected == 0:
		s.selected = len(s.items) - 1
	default:
		s.selected--
	}
	s.hasSel = true
	return true
}

// Unselect clears the selection.
func (s *SelectPopup[T]) Unselect() {
	s.selected, s.hasSel = 0, false
}

// Close resolves the reply channel and hides the popup. Interaction mistakes
// come back as an error notification rather than an error value; a second
// Close reports the missing sender the same way.
func (s *SelectPopup[T]) Close() (bool, notification.Notification) {
	var msg string
	if reply := s.reply; reply != nil {
		s.reply = nil
		if s.hasSel {
			select {
			case reply <- s.selected:
			default:
				msg = fmt.Sprintf("reply for item %d could not be delivered", s.selected)
			}
		} else {
			msg = noSelectionMessage
		}
		close(reply)
	} else {
		msg = noSenderMessage
	}
	s.Visible = false
	if msg != "" {
		return true, notification.Error(msg)
	}
	return true, notification.None()
}
