// Package app wires the store, the worker pool, the event bus and the
// orchestrator together and runs the Bubble Tea program.
package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/leetcode-tui/internal/config"
	"github.com/atomicstack/leetcode-tui/internal/core"
	"github.com/atomicstack/leetcode-tui/internal/event"
	"github.com/atomicstack/leetcode-tui/internal/logging/events"
	"github.com/atomicstack/leetcode-tui/internal/screen"
	"github.com/atomicstack/leetcode-tui/internal/solution"
	"github.com/atomicstack/leetcode-tui/internal/store"
	"github.com/atomicstack/leetcode-tui/internal/task"
	"github.com/atomicstack/leetcode-tui/internal/ui"
	"github.com/atomicstack/leetcode-tui/internal/widget"
	"github.com/atomicstack/leetcode-tui/internal/worker"
)

// solutionPollInterval is how often the solutions directory is rescanned.
const solutionPollInterval = 2 * time.Second

// session holds everything Run builds before the program starts.
type session struct {
	store  *store.Store
	pair   *task.Pair
	worker *worker.Worker
	bus    *event.Bus
	screen *screen.Screen
	core   *core.App
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg config.Config) (err error) {
	defer func() { events.App.Stop(err) }()

	bus := event.New()
	event.Init(bus)
	s, err := open(cfg, bus, screen.Probe())
	if err != nil {
		return err
	}
	defer s.close()

	if cfg.UI.Topic != "" {
		bus.Emit(event.TopicEvent(cfg.UI.Topic))
	}

	model := ui.NewModel(s.core, bus, s.screen, time.Duration(cfg.UI.TickMS)*time.Millisecond)
	program := tea.NewProgram(model, tea.WithAltScreen())
	bus.SetShutdown(func() {
		program.Kill()
		select {}
	})
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	return model.Err()
}

// open builds the session: store, task pair, worker pool and orchestrator.
// The orchestrator's setup has already run when it returns.
func open(cfg config.Config, bus *event.Bus, scr *screen.Screen) (*session, error) {
	if err := config.EnsureDirs(cfg); err != nil {
		return nil, err
	}
	st, err := store.Open(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	s := &session{store: st, bus: bus, screen: scr}
	s.pair = task.NewPair(cfg.Worker.QueueSize)
	s.worker = worker.New(s.pair, st, solution.Writer{Dir: cfg.Solutions.Dir}, worker.Options{
		Concurrency:  cfg.Worker.Concurrency,
		PollInterval: solutionPollInterval,
	})

	env := widget.Env{
		Sender: s.pair.Sender(),
		Bus:    bus,
		Config: &cfg,
		Rows:   scr.ListRows,
		Cols:   scr.Cols,
	}
	s.core, err = core.New(core.Options{
		Widgets: []widget.Variant{
			widget.TopicListVariant(widget.NewTopicList(env)),
			widget.QuestionListVariant(widget.NewQuestionList(env)),
			widget.StatsVariant(widget.NewStats(env)),
			widget.HelpBarVariant(widget.NewHelpBar(env)),
		},
		Receiver: s.pair.Receiver(),
		Bus:      bus,
		Env:      env,
	})
	if err == nil {
		err = s.core.Setup()
	}
	if err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

func (s *session) close() {
	s.pair.Close()
	s.worker.Stop()
	s.worker.Wait()
	if s.bus != nil {
		s.bus.Close()
	}
	s.store.Close()
}
