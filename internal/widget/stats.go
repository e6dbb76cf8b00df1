package widget

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/leetcode-tui/internal/model"
	"github.com/atomicstack/leetcode-tui/internal/notification"
	"github.com/atomicstack/leetcode-tui/internal/task"
)

// Counts summarises a question list.
type Counts struct {
	Total     int
	Easy      int
	Medium    int
	Hard      int
	Accepted  int
	Attempted int
}

// Stats shows counts for the questions currently listed. It never takes focus.
type Stats struct {
	base
	counts Counts
}

func NewStats(env Env) *Stats {
	return &Stats{base: base{name: notification.Stats, env: env}}
}

// Counts returns the latest summary.
func (w *Stats) Counts() Counts { return w.counts }

func (w *Stats) Setup() error          { return nil }
func (w *Stats) IsNavigable() bool     { return false }
func (w *Stats) CapturesAllKeys() bool { return false }

func (w *Stats) SetActive() notification.Notification {
	w.active = true
	return notification.None()
}

func (w *Stats) SetInactive() notification.Notification {
	w.active = false
	return notification.None()
}

func (w *Stats) HandleKey(tea.KeyMsg) (notification.Notification, error) {
	return notification.None(), nil
}

func (w *Stats) ProcessNotification(n notification.Notification) (notification.Notification, error) {
	if upd, ok := n.Payload.(notification.QuestionsUpdated); ok {
		w.counts = count(upd.Questions)
	}
	return notification.None(), nil
}

func (w *Stats) ProcessTaskResponse(task.Response) (notification.Notification, error) {
	return notification.None(), nil
}

func count(questions []model.Question) Counts {
	c := Counts{Total: len(questions)}
	for _, q := range questions {
		switch q.Difficulty {
		case model.Easy:
			c.Easy++
		case model.Medium:
			c.Medium++
		case model.Hard:
			c.Hard++
		}
		switch q.Status {
		case model.StatusAccepted:
			c.Accepted++
		case model.StatusAttempted:
			c.Attempted++
		}
	}
	return c
}
