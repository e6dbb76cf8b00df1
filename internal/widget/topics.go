package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/leetcode-tui/internal/logging/events"
	"github.com/atomicstack/leetcode-tui/internal/model"
	"github.com/atomicstack/leetcode-tui/internal/notification"
	"github.com/atomicstack/leetcode-tui/internal/paginate"
	"github.com/atomicstack/leetcode-tui/internal/task"
)

// TopicList lists topic tags. Moving the cursor tells the question list which
// topic to show.
type TopicList struct {
	base
	topics *paginate.Paginate[model.Topic]
	// pending is a topic requested before the tag list arrived.
	pending string
}

// NewTopicList builds the list holding only the synthetic "All" topic.
func NewTopicList(env Env) *TopicList {
	w := &TopicList{base: base{name: notification.TopicList, env: env}}
	w.topics = paginate.New([]model.Topic{model.AllTopic()}, env.rows)
	return w
}

// Setup requests the tag list and announces the initial topic.
func (w *TopicList) Setup() error {
	w.push(w.announce())
	return w.send(task.TopicTags{})
}

// Paginator exposes the list for rendering.
func (w *TopicList) Paginator() *paginate.Paginate[model.Topic] { return w.topics }

func (w *TopicList) IsNavigable() bool     { return true }
func (w *TopicList) CapturesAllKeys() bool { return false }

func (w *TopicList) SetActive() notification.Notification {
	w.active = true
	return helpFor(w.name, upKey, downKey, switchKey, quitKey)
}

func (w *TopicList) SetInactive() notification.Notification {
	w.active = false
	return notification.None()
}

func (w *TopicList) HandleKey(k tea.KeyMsg) (notification.Notification, error) {
	var moved bool
	switch {
	case key.Matches(k, upKey):
		moved = w.topics.PrevElem()
	case key.Matches(k, downKey):
		moved = w.topics.NextElem()
	}
	if !moved {
		return notification.None(), nil
	}
	return w.announce(), nil
}

// ProcessNotification hovers the named topic.
func (w *TopicList) ProcessNotification(n notification.Notification) (notification.Notification, error) {
	sel, ok := n.Payload.(notification.TopicSelected)
	if !ok {
		return notification.None(), nil
	}
	if w.seek(sel.Topic) {
		w.pending = ""
		return w.announce(), nil
	}
	w.pending = topicKey(sel.Topic)
	return notification.None(), nil
}

func (w *TopicList) ProcessTaskResponse(resp task.Response) (notification.Notification, error) {
	if resp.Err != nil {
		return notification.Error(resp.Err.Error()), nil
	}
	body, ok := resp.Body.(task.Topics)
	if !ok {
		events.Task.Stale(resp.ID, string(w.name), resp.Kind())
		return notification.None(), nil
	}
	prev, _ := w.topics.Hovered()
	list := make([]model.Topic, 0, len(body.Topics)+1)
	list = append(list, model.AllTopic())
	for _, t := range body.Topics {
		if t.Slug == model.AllTopicSlug {
			continue
		}
		list = append(list, t)
	}
	w.topics = paginate.New(list, w.env.rows)
	target := prev
	if w.pending != "" {
		target = model.Topic{Slug: w.pending}
	}
	if w.seek(target) {
		w.pending = ""
	}
	return w.announce(), nil
}

func (w *TopicList) announce() notification.Notification {
	hovered, ok := w.topics.Hovered()
	if !ok {
		return notification.None()
	}
	return notification.New(notification.QuestionList, notification.TopicSelected{Topic: hovered})
}

func (w *TopicList) seek(t model.Topic) bool {
	want := topicKey(t)
	for i, candidate := range w.topics.List() {
		if topicKey(candidate) == want || strings.EqualFold(candidate.Name, t.Slug) {
			w.topics.Seek(i)
			return true
		}
	}
	return false
}

func topicKey(t model.Topic) string {
	if t.Slug != "" {
		return strings.ToLower(t.Slug)
	}
	return strings.ToLower(strings.ReplaceAll(t.Name, " ", "-"))
}
