package events

import "github.com/atomicstack/leetcode-tui/internal/logging"

type AppTracer struct{}

type WorkerTracer struct{}

type UITracer struct{}

var (
	App    = AppTracer{}
	Worker = WorkerTracer{}
	UI     = UITracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.stop", payload)
}

func (WorkerTracer) Start(concurrency int) {
	logging.Trace("worker.start", map[string]interface{}{"concurrency": concurrency})
}

func (WorkerTracer) Error(id, kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("worker.error", map[string]interface{}{"id": id, "request": kind, "error": err.Error()})
}

func (UITracer) Event(kind string) {
	logging.Trace("ui.event", map[string]interface{}{"kind": kind})
}

func (UITracer) Render(trace string) {
	logging.Trace("ui.render", map[string]interface{}{"caller": trace})
}

func (UITracer) Resize(cols, rows int) {
	logging.Trace("ui.resize", map[string]interface{}{"cols": cols, "rows": rows})
}
