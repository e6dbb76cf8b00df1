package core

import (
	"github.com/atomicstack/leetcode-tui/internal/apperr"
	"github.com/atomicstack/leetcode-tui/internal/logging/events"
)

// Navigate moves focus by delta, skipping widgets that cannot take focus. It
// is a no-op while a popup is shown. At most one full lap is tried.
func (a *App) Navigate(delta int) error {
	if len(a.popups) > 0 {
		return nil
	}
	count := len(a.widgets)
	start, queued := a.current, a.queue.size()
	from := a.widgets[start].Name()
	for i := 0; i < count; i++ {
		next := ((a.current+delta)%count + count) % count
		a.queue.push(a.widgets[a.current].SetInactive())
		a.queue.push(a.widgets[next].SetActive())
		a.current = next
		if a.widgets[next].IsNavigable() {
			events.Focus.Move(string(from), string(a.widgets[next].Name()), delta)
			return nil
		}
		events.Focus.Skip(string(a.widgets[next].Name()))
	}
	// Nothing took focus: undo the lap so the registry is left as it was.
	a.current = start
	a.queue.truncate(queued)
	return apperr.New(apperr.KindNoNavigableWidget, "navigation found no focusable widget")
}
