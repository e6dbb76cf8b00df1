package core

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Prev key.Binding
	Next key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous pane")),
		Next: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next pane")),
		Quit: key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// HandleKey routes k. A shown popup takes every key. Otherwise the focused
// widget gets it, unless it lets the app intercept navigation and quit keys.
func (a *App) HandleKey(k tea.KeyMsg) error {
	if err := a.routeKey(k); err != nil {
		return err
	}
	if _, err := a.drain(); err != nil {
		return err
	}
	a.render()
	return nil
}

func (a *App) routeKey(k tea.KeyMsg) error {
	if top, ok := a.TopPopup(); ok {
		n, err := top.HandleKey(k)
		if err != nil {
			return err
		}
		a.queue.push(n)
		return nil
	}
	w := a.widgets[a.current]
	if !w.CapturesAllKeys() {
		switch {
		case key.Matches(k, a.keys.Prev):
			return a.Navigate(-1)
		case key.Matches(k, a.keys.Next):
			return a.Navigate(1)
		case key.Matches(k, a.keys.Quit):
			a.Quit()
			return nil
		}
	}
	n, err := w.HandleKey(k)
	if err != nil {
		return err
	}
	a.queue.push(n)
	return nil
}
