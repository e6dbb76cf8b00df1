package widget

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/leetcode-tui/internal/apperr"
	"github.com/atomicstack/leetcode-tui/internal/event"
	"github.com/atomicstack/leetcode-tui/internal/logging"
	"github.com/atomicstack/leetcode-tui/internal/logging/events"
	"github.com/atomicstack/leetcode-tui/internal/model"
	"github.com/atomicstack/leetcode-tui/internal/notification"
	"github.com/atomicstack/leetcode-tui/internal/paginate"
	"github.com/atomicstack/leetcode-tui/internal/task"
)

var (
	searchKey = key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search"))
	detailKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "read"))
	editKey   = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "solve"))
	acceptKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep filter"))
	cancelKey = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter"))
)

// QuestionList shows the questions of the selected topic.
type QuestionList struct {
	base
	topic     model.Topic
	all       []model.Question
	questions *paginate.Paginate[model.Question]
	local     map[int]bool
	search    textinput.Model
	searching bool
}

// NewQuestionList builds an empty list.
func NewQuestionList(env Env) *QuestionList {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search"
	ti.Cursor.SetMode(cursor.CursorStatic)
	w := &QuestionList{
		base:   base{name: notification.QuestionList, env: env},
		local:  map[int]bool{},
		search: ti,
	}
	w.questions = paginate.New[model.Question](nil, env.rows)
	return w
}

// Setup asks for the solutions already on disk.
func (w *QuestionList) Setup() error {
	return w.send(task.LocalSolutions{})
}

func (w *QuestionList) Paginator() *paginate.Paginate[model.Question] { return w.questions }

// Topic is the topic whose questions are shown.
func (w *QuestionList) Topic() model.Topic { return w.topic }

// Searching reports whether the search prompt owns the keyboard.
func (w *QuestionList) Searching() bool { return w.searching }

// Query is the active filter.
func (w *QuestionList) Query() string { return w.search.Value() }

// SearchView renders the search prompt.
func (w *QuestionList) SearchView() string { return w.search.View() }

// HasLocalSolution reports whether a solution file exists for the question.
func (w *QuestionList) HasLocalSolution(id int) bool { return w.local[id] }

func (w *QuestionList) IsNavigable() bool     { return true }
func (w *QuestionList) CapturesAllKeys() bool { return w.searching }

func (w *QuestionList) SetActive() notification.Notification {
	w.active = true
	return w.help()
}

func (w *QuestionList) SetInactive() notification.Notification {
	w.active = false
	return notification.None()
}

func (w *QuestionList) help() notification.Notification {
	if w.searching {
		return helpFor(w.name, acceptKey, cancelKey)
	}
	return helpFor(w.name, upKey, downKey, searchKey, detailKey, editKey, switchKey, quitKey)
}

func (w *QuestionList) HandleKey(k tea.KeyMsg) (notification.Notification, error) {
	if w.searching {
		return w.handleSearchKey(k), nil
	}
	switch {
	case key.Matches(k, upKey):
		w.questions.PrevElem()
	case key.Matches(k, downKey):
		w.questions.NextElem()
	case key.Matches(k, searchKey):
		w.searching = true
		w.search.Focus()
		return w.help(), nil
	case key.Matches(k, detailKey):
		if q, ok := w.questions.Hovered(); ok {
			return notification.None(), w.send(task.QuestionDetail{Slug: q.Slug})
		}
	case key.Matches(k, editKey):
		if q, ok := w.questions.Hovered(); ok {
			return notification.None(), w.send(task.Snippets{Slug: q.Slug})
		}
	}
	return notification.None(), nil
}

func (w *QuestionList) handleSearchKey(k tea.KeyMsg) notification.Notification {
	switch {
	case key.Matches(k, cancelKey):
		w.search.SetValue("")
		w.stopSearch()
		return w.help()
	case key.Matches(k, acceptKey):
		w.stopSearch()
		return w.help()
	case k.Type == tea.KeyUp:
		w.questions.PrevElem()
		return notification.None()
	case k.Type == tea.KeyDown:
		w.questions.NextElem()
		return notification.None()
	}
	before := w.search.Value()
	w.search, _ = w.search.Update(k)
	if w.search.Value() != before {
		w.refilter()
	}
	return notification.None()
}

func (w *QuestionList) stopSearch() {
	w.searching = false
	w.search.Blur()
	w.refilter()
}

// ProcessNotification switches topic.
func (w *QuestionList) ProcessNotification(n notification.Notification) (notification.Notification, error) {
	sel, ok := n.Payload.(notification.TopicSelected)
	if !ok {
		return notification.None(), nil
	}
	if sel.Topic.Slug == w.topic.Slug && w.all != nil {
		return notification.None(), nil
	}
	w.topic = sel.Topic
	return notification.None(), w.send(task.QuestionsByTopic{Topic: sel.Topic})
}

func (w *QuestionList) ProcessTaskResponse(resp task.Response) (notification.Notification, error) {
	if resp.Err != nil {
		w.push(notification.Error(resp.Err.Error()))
		return notification.None(), nil
	}
	switch body := resp.Body.(type) {
	case task.Questions:
		if body.Topic.Slug != w.topic.Slug {
			events.Task.Stale(resp.ID, string(w.name), "topic "+body.Topic.Slug)
			return notification.None(), nil
		}
		w.all = body.Questions
		if w.all == nil {
			w.all = []model.Question{}
		}
		w.refilter()
	case task.Solutions:
		w.local = body.IDs
		if w.local == nil {
			w.local = map[int]bool{}
		}
	case task.Detail:
		return notification.Info(body.Detail.Question.String(), detailLines(body.Detail)...), nil
	case task.SnippetList:
		return w.chooseLanguage(body)
	case task.Scaffolded:
		w.local[body.Question.FrontendID] = true
		verb := "Opened"
		if body.Created {
			verb = "Created"
		}
		return notification.Info("Solution", fmt.Sprintf("%s %s", verb, body.Path)), nil
	default:
		events.Task.Stale(resp.ID, string(w.name), resp.Kind())
	}
	return notification.None(), nil
}

// chooseLanguage scaffolds directly when a language is configured and
// otherwise asks through a selection popup.
func (w *QuestionList) chooseLanguage(body task.SnippetList) (notification.Notification, error) {
	snippets := body.Snippets
	if len(snippets) == 0 {
		return notification.Error(fmt.Sprintf("%s has no code snippets", body.Question.Title)), nil
	}
	if lang := w.env.language(); lang != "" {
		for _, s := range snippets {
			if s.LangSlug == lang {
				return notification.None(), w.send(task.Scaffold{Slug: body.Question.Slug, LangSlug: lang})
			}
		}
		return notification.Error(apperr.New(apperr.KindLanguageMissing, lang).Error()), nil
	}
	if w.env.Bus == nil {
		return notification.Error("language selection is unavailable"), nil
	}
	items := make([]string, len(snippets))
	for i, s := range snippets {
		items[i] = s.Lang
	}
	reply := make(chan int, 1)
	go awaitLanguage(w.env.Bus, w.env.Sender, body.Question.Slug, snippets, reply)
	return notification.New(notification.Popup, notification.Selection{
		Title: "Language",
		Items: items,
		Reply: reply,
	}), nil
}

func awaitLanguage(bus *event.Bus, sender task.Sender, slug string, snippets []model.Snippet, reply <-chan int) {
	idx := event.Wait(bus, event.RenderEvent(), reply)
	if idx < 0 || idx >= len(snippets) {
		return
	}
	req := task.NewRequest(notification.QuestionList, task.Scaffold{Slug: slug, LangSlug: snippets[idx].LangSlug})
	if err := sender.Send(req); err != nil {
		logging.Error(err)
	}
}

func (w *QuestionList) refilter() {
	prev, hadPrev := w.questions.Hovered()
	list := filterQuestions(w.all, w.search.Value())
	w.questions = paginate.New(list, w.env.rows)
	if hadPrev {
		for i, q := range list {
			if q.FrontendID == prev.FrontendID {
				w.questions.Seek(i)
				break
			}
		}
	}
	w.push(notification.New(notification.Stats, notification.QuestionsUpdated{Questions: list}))
}

func filterQuestions(all []model.Question, query string) []model.Question {
	query = strings.TrimSpace(query)
	if query == "" {
		return all
	}
	targets := make([]string, len(all))
	for i, q := range all {
		targets[i] = q.String()
	}
	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Distance < ranks[j].Distance })
	out := make([]model.Question, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, all[r.OriginalIndex])
	}
	return out
}

func detailLines(d model.QuestionDetail) []string {
	lines := []string{
		fmt.Sprintf("%s  ·  acceptance %.1f%%", d.Difficulty, d.AcRate),
	}
	if topics := d.TopicNames(); topics != "" {
		lines = append(lines, "Topics: "+topics)
	}
	if d.PaidOnly {
		lines = append(lines, "Premium question")
	}
	lines = append(lines, "")
	return append(lines, strings.Split(d.Content, "\n")...)
}
