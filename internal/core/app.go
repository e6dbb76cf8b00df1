// Package core is the orchestration engine. App owns the widget registry, the
// popup stack and the pending notification queue, and is driven one key or
// tick at a time from a single goroutine.
package core

import (
	"fmt"

	"github.com/atomicstack/leetcode-tui/internal/apperr"
	"github.com/atomicstack/leetcode-tui/internal/event"
	"github.com/atomicstack/leetcode-tui/internal/logging/events"
	"github.com/atomicstack/leetcode-tui/internal/notification"
	"github.com/atomicstack/leetcode-tui/internal/task"
	"github.com/atomicstack/leetcode-tui/internal/widget"
)

// Focus is the key routing state.
type Focus int

const (
	FocusWidget Focus = iota
	FocusPopup
)

func (f Focus) String() string {
	if f == FocusPopup {
		return "popup"
	}
	return "widget"
}

// Options configures New.
type Options struct {
	// Widgets in navigation order. The first navigable one starts focused.
	Widgets  []widget.Variant
	Receiver task.Receiver
	Bus      *event.Bus
	// Env is used to build popups.
	Env widget.Env
}

// App is the orchestrator.
type App struct {
	widgets  []widget.Variant
	index    map[notification.WidgetName]int
	current  int
	popups   []*widget.Popup
	queue    dispatcher
	receiver task.Receiver
	bus      *event.Bus
	env      widget.Env
	keys     keyMap
	running  bool
}

// New validates the registry and focuses the first navigable widget.
func New(opts Options) (*App, error) {
	if len(opts.Widgets) == 0 {
		return nil, apperr.New(apperr.KindNoNavigableWidget, "no widgets registered")
	}
	a := &App{
		index:    make(map[notification.WidgetName]int, len(opts.Widgets)),
		current:  -1,
		receiver: opts.Receiver,
		bus:      opts.Bus,
		env:      opts.Env,
		keys:     defaultKeyMap(),
		running:  true,
	}
	for i, w := range opts.Widgets {
		name := w.Name()
		if name == notification.Popup {
			return nil, fmt.Errorf("widget name %q is reserved", name)
		}
		if _, dup := a.index[name]; dup {
			return nil, fmt.Errorf("duplicate widget %q", name)
		}
		a.index[name] = i
		a.widgets = append(a.widgets, w)
		if a.current < 0 && w.IsNavigable() {
			a.current = i
		}
	}
	if a.current < 0 {
		return nil, apperr.New(apperr.KindNoNavigableWidget, "registry has no navigable widget")
	}
	return a, nil
}

// Setup runs every widget's setup, activates the focused widget and drains
// the resulting notifications.
func (a *App) Setup() error {
	for _, w := range a.widgets {
		if err := w.Setup(); err != nil {
			return fmt.Errorf("setup %s: %w", w.Name(), err)
		}
	}
	a.queue.push(a.widgets[a.current].SetActive())
	a.collect()
	if _, err := a.drain(); err != nil {
		return err
	}
	a.render()
	return nil
}

// Running is false once quit was requested.
func (a *App) Running() bool { return a.running }

// Quit stops the app; the driver exits on its next check.
func (a *App) Quit() { a.running = false }

// Focus reports which state key routing is in.
func (a *App) Focus() Focus {
	if len(a.popups) > 0 {
		return FocusPopup
	}
	return FocusWidget
}

// Current is the focused widget.
func (a *App) Current() widget.Variant { return a.widgets[a.current] }

// Widgets returns the registry in navigation order.
func (a *App) Widgets() []widget.Variant { return a.widgets }

// Widget looks a widget up by name.
func (a *App) Widget(name notification.WidgetName) (widget.Variant, bool) {
	i, ok := a.index[name]
	if !ok {
		return widget.Variant{}, false
	}
	return a.widgets[i], true
}

// TopPopup returns the popup receiving keys, if any.
func (a *App) TopPopup() (*widget.Popup, bool) {
	if len(a.popups) == 0 {
		return nil, false
	}
	return a.popups[len(a.popups)-1], true
}

// Popups returns the stack, bottom first.
func (a *App) Popups() []*widget.Popup { return a.popups }

// Notify queues n and drains the queue.
func (a *App) Notify(n notification.Notification) error {
	a.queue.push(n)
	_, err := a.drain()
	a.render()
	return err
}

// HandleEvent applies a bus event that concerns the core. Terminal level
// events (resize, suspend, resume, render) belong to the driver.
func (a *App) HandleEvent(evt event.Event) error {
	switch evt.Kind {
	case event.Quit:
		a.Quit()
	case event.Key:
		return a.HandleKey(evt.Key)
	case event.Topic:
		return a.Notify(notification.New(notification.TopicList, notification.TopicSelected{
			Topic: topicFromName(evt.Topic),
		}))
	}
	return nil
}

func (a *App) render() {
	if a.bus != nil {
		a.bus.Emit(event.RenderEvent())
	}
}

func (a *App) pushPopup(p *widget.Popup) {
	a.popups = append(a.popups, p)
	events.Popup.Push(p.Title(), len(a.popups))
}

func (a *App) popPopup() (*widget.Popup, error) {
	if len(a.popups) == 0 {
		return nil, apperr.ErrEmptyPopupStack
	}
	top := a.popups[len(a.popups)-1]
	a.popups[len(a.popups)-1] = nil
	a.popups = a.popups[:len(a.popups)-1]
	events.Popup.Pop(top.Title(), len(a.popups))
	return top, nil
}
