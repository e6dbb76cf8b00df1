package event

import (
	"os"
	"runtime"
	"sync"

	"github.com/atomicstack/leetcode-tui/internal/logging/events"
)

// Bus is an unbounded multi-producer single-consumer queue of events.
type Bus struct {
	in        chan Event
	out       chan Event
	done      chan struct{}
	closeOnce sync.Once
	shutdown  func()
}

// Option customises a Bus.
type Option func(*Bus)

// WithShutdown replaces the hook run when a reply channel passed to Wait is
// closed without a value. The default exits the process.
func WithShutdown(fn func()) Option {
	return func(b *Bus) {
		if fn != nil {
			b.shutdown = fn
		}
	}
}

// New starts a bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		in:       make(chan Event),
		out:      make(chan Event),
		done:     make(chan struct{}),
		shutdown: func() { os.Exit(0) },
	}
	for _, opt := range opts {
		opt(b)
	}
	go b.pump()
	return b
}

func (b *Bus) pump() {
	defer close(b.out)
	var queue []Event
	for {
		var out chan Event
		var next Event
		if len(queue) > 0 {
			out = b.out
			next = queue[0]
		}
		select {
		case evt := <-b.in:
			queue = append(queue, evt)
		case out <- next:
			queue[0] = Event{}
			queue = queue[1:]
		case <-b.done:
			return
		}
	}
}

// Emit queues evt without waiting for the consumer. Events emitted after
// Close are dropped.
func (b *Bus) Emit(evt Event) {
	select {
	case b.in <- evt:
		if evt.Kind == Render {
			events.Bus.Render(evt.Trace)
		}
	case <-b.done:
		events.Bus.Drop(evt.Kind.String())
	}
}

// SetShutdown replaces the dropped-reply hook after construction. It must be
// called before any Wait is in flight.
func (b *Bus) SetShutdown(fn func()) {
	if fn != nil {
		b.shutdown = fn
	}
}

// Events is the consumer side. It is closed after Close.
func (b *Bus) Events() <-chan Event {
	return b.out
}

// Close stops the bus; pending events are discarded.
func (b *Bus) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

// Wait emits evt and blocks until reply yields a value. A reply channel closed
// without a value means the UI side is gone: the shutdown hook runs and the
// calling goroutine never returns.
func Wait[T any](b *Bus, evt Event, reply <-chan T) T {
	b.Emit(evt)
	v, ok := <-reply
	if !ok {
		b.shutdown()
		runtime.Goexit()
	}
	return v
}

var (
	defaultBus *Bus
	initOnce   sync.Once
)

// Init installs the process-wide bus. It must be called exactly once.
func Init(b *Bus) {
	installed := false
	initOnce.Do(func() {
		defaultBus = b
		installed = true
	})
	if !installed {
		panic("event: bus already initialised")
	}
}

// Default returns the process-wide bus installed by Init.
func Default() *Bus {
	if defaultBus == nil {
		panic("event: bus used before Init")
	}
	return defaultBus
}
