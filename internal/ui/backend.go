package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/leetcode-tui/internal/event"
	"github.com/atomicstack/leetcode-tui/internal/logging/events"
)

func waitForEvent(b *event.Bus) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-b.Events()
		if !ok {
			return busDoneMsg{}
		}
		return busEventMsg{event: evt}
	}
}

type busEventMsg struct {
	event event.Event
}

type busDoneMsg struct{}

func (m *Model) handleBusEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(busEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyEvent(eventMsg.event)
	if m.quitting || m.bus == nil {
		return cmd
	}
	waitCmd := waitForEvent(m.bus)
	if cmd != nil {
		return tea.Batch(cmd, waitCmd)
	}
	return waitCmd
}

func (m *Model) handleBusDoneMsg(tea.Msg) tea.Cmd {
	m.bus = nil
	return nil
}

func (m *Model) applyEvent(evt event.Event) tea.Cmd {
	switch evt.Kind {
	case event.Render:
		events.UI.Render(evt.Trace)
		return nil
	case event.Resize:
		m.screen.Resize(evt.Cols, evt.Rows)
		events.UI.Resize(evt.Cols, evt.Rows)
		return nil
	case event.Suspend:
		events.UI.Event(evt.Kind.String())
		return tea.Suspend
	case event.Resume:
		events.UI.Event(evt.Kind.String())
		return tea.ClearScreen
	default:
		events.UI.Event(evt.Kind.String())
		return m.settle(m.app.HandleEvent(evt))
	}
}
