package core

import (
	"github.com/atomicstack/leetcode-tui/internal/logging/events"
	"github.com/atomicstack/leetcode-tui/internal/notification"
	"github.com/atomicstack/leetcode-tui/internal/task"
)

// Tick runs one frame: pop a closed popup, collect widget queues, route at
// most one task response, then drain.
func (a *App) Tick() error {
	changed := false
	if top, ok := a.TopPopup(); ok && !top.IsActive() {
		if _, err := a.popPopup(); err != nil {
			return err
		}
		if next, ok := a.TopPopup(); ok {
			a.queue.push(next.SetActive())
		} else {
			a.queue.push(a.widgets[a.current].SetActive())
		}
		changed = true
	}

	a.collect()

	if resp, ok := a.receiver.TryRecv(); ok {
		follow, err := a.routeResponse(resp)
		if err != nil {
			return err
		}
		a.queue.push(follow)
		changed = true
	}

	delivered, err := a.drain()
	if err != nil {
		return err
	}
	if changed || delivered > 0 {
		a.render()
	}
	return nil
}

func (a *App) routeResponse(resp task.Response) (notification.Notification, error) {
	if resp.Widget == notification.Popup {
		top, ok := a.TopPopup()
		if !ok {
			events.Task.Stale(resp.ID, string(resp.Widget), "no popup")
			return notification.None(), nil
		}
		return top.ProcessTaskResponse(resp)
	}
	w, ok := a.Widget(resp.Widget)
	if !ok {
		events.Task.Stale(resp.ID, string(resp.Widget), "unknown widget")
		return notification.None(), nil
	}
	return w.ProcessTaskResponse(resp)
}
