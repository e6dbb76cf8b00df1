package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/leetcode-tui/internal/core"
	"github.com/atomicstack/leetcode-tui/internal/event"
	"github.com/atomicstack/leetcode-tui/internal/logging"
	"github.com/atomicstack/leetcode-tui/internal/logging/events"
	"github.com/atomicstack/leetcode-tui/internal/screen"
	"github.com/atomicstack/leetcode-tui/internal/theme"
)

// DefaultTick is used when NewModel receives a non-positive interval.
const DefaultTick = 100 * time.Millisecond

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

type tickMsg time.Time

// Model implements the Bubble Tea model around a core.App.
type Model struct {
	app      *core.App
	bus      *event.Bus
	screen   *screen.Screen
	tick     time.Duration
	err      error
	quitting bool
	frames   int

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps app. bus may be nil, in which case no bus events are read.
func NewModel(app *core.App, bus *event.Bus, scr *screen.Screen, tick time.Duration) *Model {
	if tick <= 0 {
		tick = DefaultTick
	}
	if scr == nil {
		scr = screen.New(0, 0)
	}
	m := &Model{
		app:    app,
		bus:    bus,
		screen: scr,
		tick:   tick,
	}
	m.registerHandlers()
	return m
}

// Err is the core failure that ended the program, if any.
func (m *Model) Err() error { return m.err }

// Quitting reports whether the model has asked Bubble Tea to exit.
func (m *Model) Quitting() bool { return m.quitting }

// Frames counts processed ticks.
func (m *Model) Frames() int { return m.frames }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.scheduleTick()}
	if m.bus != nil {
		cmds = append(cmds, waitForEvent(m.bus))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(busEventMsg{}):       m.handleBusEventMsg,
		reflect.TypeOf(busDoneMsg{}):        m.handleBusDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	return m.settle(m.app.HandleKey(k))
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.screen.Resize(size.Width, size.Height)
	events.UI.Resize(size.Width, size.Height)
	return nil
}

func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	m.frames++
	if cmd := m.settle(m.app.Tick()); cmd != nil {
		return cmd
	}
	return m.scheduleTick()
}

func (m *Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// settle turns the outcome of a core call into the next command: a core
// error or a quit request ends the program.
func (m *Model) settle(err error) tea.Cmd {
	if err != nil {
		m.err = err
		logging.Error(err)
		m.quitting = true
		return tea.Quit
	}
	if !m.app.Running() {
		m.quitting = true
		return tea.Quit
	}
	return nil
}
