package core

import (
	"github.com/atomicstack/leetcode-tui/internal/apperr"
	"github.com/atomicstack/leetcode-tui/internal/logging/events"
	"github.com/atomicstack/leetcode-tui/internal/model"
	"github.com/atomicstack/leetcode-tui/internal/notification"
	"github.com/atomicstack/leetcode-tui/internal/widget"
)

// router delivers one notification and returns its follow-up.
type router interface {
	route(notification.Notification) (notification.Notification, error)
}

// dispatcher is the pending notification queue. It is drained to empty before
// the next input is handled. A widget that keeps answering itself keeps the
// drain going; nothing detects such cycles.
type dispatcher struct {
	pending []notification.Notification
}

func (d *dispatcher) push(ns ...notification.Notification) {
	d.pending = append(d.pending, ns...)
}

func (d *dispatcher) size() int { return len(d.pending) }

// truncate drops entries queued after the first n.
func (d *dispatcher) truncate(n int) {
	if n < 0 || n >= len(d.pending) {
		return
	}
	clear(d.pending[n:])
	d.pending = d.pending[:n]
}

// drain delivers entries in FIFO order until the queue is empty and reports
// how many non-empty entries were delivered.
func (d *dispatcher) drain(r router) (int, error) {
	delivered := 0
	for len(d.pending) > 0 {
		n := d.pending[0]
		d.pending[0] = notification.Notification{}
		d.pending = d.pending[1:]
		if n.IsNone() {
			continue
		}
		delivered++
		follow, err := r.route(n)
		if err != nil {
			d.pending = nil
			return delivered, err
		}
		d.push(follow)
	}
	d.pending = nil
	return delivered, nil
}

func (a *App) drain() (int, error) {
	n, err := a.queue.drain(a)
	events.Notify.Drain(n)
	return n, err
}

func (a *App) route(n notification.Notification) (notification.Notification, error) {
	events.Notify.Deliver(string(n.Target), n.String())
	if n.Target == notification.Popup {
		p := widget.NewPopup(a.env)
		follow, err := p.ProcessNotification(n)
		if err != nil {
			return notification.None(), err
		}
		a.pushPopup(p)
		return follow, nil
	}
	w, ok := a.Widget(n.Target)
	if !ok {
		return notification.None(), apperr.New(apperr.KindUnknownWidget, string(n.Target))
	}
	return w.ProcessNotification(n)
}

// collect moves every widget's own queue into the pending queue.
func (a *App) collect() {
	for _, w := range a.widgets {
		a.queue.push(w.Notifications()...)
	}
}

func topicFromName(name string) model.Topic {
	return model.Topic{Slug: name}
}
