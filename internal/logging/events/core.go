package events

import "github.com/atomicstack/leetcode-tui/internal/logging"

type FocusTracer struct{}

type NotifyTracer struct{}

type PopupTracer struct{}

type TaskTracer struct{}

type BusTracer struct{}

var (
	Focus  = FocusTracer{}
	Notify = NotifyTracer{}
	Popup  = PopupTracer{}
	Task   = TaskTracer{}
	Bus    = BusTracer{}
)

func (FocusTracer) Move(from, to string, delta int) {
	logging.Trace("focus.move", map[string]interface{}{"from": from, "to": to, "delta": delta})
}

func (FocusTracer) Skip(name string) {
	logging.Trace("focus.skip", map[string]interface{}{"widget": name})
}

func (NotifyTracer) Deliver(target, payload string) {
	logging.Trace("notify.deliver", map[string]interface{}{"target": target, "payload": payload})
}

func (NotifyTracer) Drain(delivered int) {
	if delivered == 0 {
		return
	}
	logging.Trace("notify.drain", map[string]interface{}{"delivered": delivered})
}

func (PopupTracer) Push(title string, depth int) {
	logging.Trace("popup.push", map[string]interface{}{"title": title, "depth": depth})
}

func (PopupTracer) Pop(title string, depth int) {
	logging.Trace("popup.pop", map[string]interface{}{"title": title, "depth": depth})
}

func (TaskTracer) Request(id, widget, kind string) {
	logging.Trace("task.request", map[string]interface{}{"id": id, "widget": widget, "request": kind})
}

func (TaskTracer) Response(id, widget, kind string) {
	logging.Trace("task.response", map[string]interface{}{"id": id, "widget": widget, "response": kind})
}

func (TaskTracer) Stale(id, widget, reason string) {
	logging.Trace("task.stale", map[string]interface{}{"id": id, "widget": widget, "reason": reason})
}

func (BusTracer) Render(trace string) {
	logging.Trace("bus.render", map[string]interface{}{"trace": trace})
}

func (BusTracer) Drop(kind string) {
	logging.Trace("bus.drop", map[string]interface{}{"event": kind})
}
