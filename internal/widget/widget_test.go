package widget

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/leetcode-tui/internal/config"
	"github.com/atomicstack/leetcode-tui/internal/event"
	"github.com/atomicstack/leetcode-tui/internal/model"
	"github.com/atomicstack/leetcode-tui/internal/notification"
	"github.com/atomicstack/leetcode-tui/internal/task"
)

func newEnv(t *testing.T) (Env, *task.Pair) {
	t.Helper()
	pair := task.NewPair(16)
	t.Cleanup(pair.Close)
	return Env{Sender: pair.Sender(), Rows: func() int { return 10 }, Cols: func() int { return 100 }}, pair
}

func nextRequest(t *testing.T, pair *task.Pair) task.Request {
	t.Helper()
	select {
	case req := <-pair.Requests():
		return req
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a task request")
	}
	return task.Request{}
}

func noRequest(t *testing.T, pair *task.Pair) {
	t.Helper()
	select {
	case req := <-pair.Requests():
		t.Fatalf("expected no request, got %#v", req)
	default:
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleQuestions() []model.Question {
	return []model.Question{
		{FrontendID: 1, Slug: "two-sum", Title: "Two Sum", Difficulty: model.Easy, Status: model.StatusAccepted},
		{FrontendID: 2, Slug: "add-two-numbers", Title: "Add Two Numbers", Difficulty: model.Medium, Status: model.StatusAttempted},
		{FrontendID: 4, Slug: "median-of-two-sorted-arrays", Title: "Median of Two Sorted Arrays", Difficulty: model.Hard},
	}
}

func TestZeroVariantPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for zero variant")
		}
	}()
	var v Variant
	v.IsNavigable()
}

func TestVariantAccessors(t *testing.T) {
	env, _ := newEnv(t)
	v := StatsVariant(NewStats(env))
	if _, ok := v.TopicList(); ok {
		t.Fatalf("stats variant should not expose a topic list")
	}
	if s, ok := v.Stats(); !ok || s == nil {
		t.Fatalf("expected stats arm")
	}
	if v.Name() != notification.Stats || v.Kind() != KindStats {
		t.Fatalf("unexpected identity %s/%s", v.Name(), v.Kind())
	}
	if v.IsNavigable() {
		t.Fatalf("stats must not be navigable")
	}
}

func TestTopicListSetupAnnouncesAll(t *testing.T) {
	env, pair := newEnv(t)
	w := NewTopicList(env)
	if err := w.Setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if req := nextRequest(t, pair); req.Widget != notification.TopicList {
		t.Fatalf("expected topic list request, got %#v", req)
	} else if _, ok := req.Body.(task.TopicTags); !ok {
		t.Fatalf("expected TopicTags body, got %T", req.Body)
	}
	queued := w.Notifications()
	if len(queued) != 1 {
		t.Fatalf("expected one queued notification, got %d", len(queued))
	}
	sel, ok := queued[0].Payload.(notification.TopicSelected)
	if !ok || queued[0].Target != notification.QuestionList || sel.Topic.Slug != model.AllTopicSlug {
		t.Fatalf("expected All topic announcement, got %v", queued[0])
	}
	if len(w.Notifications()) != 0 {
		t.Fatalf("expected queue drained")
	}
}

func TestTopicListResponseAndMovement(t *testing.T) {
	env, _ := newEnv(t)
	w := NewTopicList(env)
	resp := task.Response{Widget: notification.TopicList, Body: task.Topics{Topics: []model.Topic{
		{Slug: "array", Name: "Array"},
		{Slug: "string", Name: "String"},
	}}}
	n, err := w.ProcessTaskResponse(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel := n.Payload.(notification.TopicSelected); sel.Topic.Slug != model.AllTopicSlug {
		t.Fatalf("expected hovered topic to remain All, got %v", sel.Topic)
	}
	if got := w.Paginator().Len(); got != 3 {
		t.Fatalf("expected 3 topics, got %d", got)
	}
	n, _ = w.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	if sel := n.Payload.(notification.TopicSelected); sel.Topic.Slug != "array" {
		t.Fatalf("expected array after down, got %v", sel.Topic)
	}
	n, _ = w.HandleKey(runes("k"))
	if sel := n.Payload.(notification.TopicSelected); sel.Topic.Slug != model.AllTopicSlug {
		t.Fatalf("expected All after k, got %v", sel.Topic)
	}
	n, _ = w.HandleKey(tea.KeyMsg{Type: tea.KeyUp})
	if !n.IsNone() {
		t.Fatalf("expected no announcement at the top, got %v", n)
	}
}

func TestTopicListSeeksPendingTopic(t *testing.T) {
	env, _ := newEnv(t)
	w := NewTopicList(env)
	n, _ := w.ProcessNotification(notification.New(notification.TopicList, notification.TopicSelected{Topic: model.Topic{Slug: "string"}}))
	if !n.IsNone() {
		t.Fatalf("expected no announcement before topics load, got %v", n)
	}
	n, _ = w.ProcessTaskResponse(task.Response{Body: task.Topics{Topics: []model.Topic{
		{Slug: "array", Name: "Array"},
		{Slug: "string", Name: "String"},
	}}})
	sel, ok := n.Payload.(notification.TopicSelected)
	if !ok || sel.Topic.Slug != "string" {
		t.Fatalf("expected pending topic to be hovered, got %v", n)
	}
}

func TestTopicListErrorResponseBecomesPopup(t *testing.T) {
	env, _ := newEnv(t)
	w := NewTopicList(env)
	n, err := w.ProcessTaskResponse(task.Response{Err: errors.New("db gone")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Target != notification.Popup {
		t.Fatalf("expected popup notification, got %v", n)
	}
}

func loadQuestions(t *testing.T, w *QuestionList, pair *task.Pair, topic model.Topic, qs []model.Question) {
	t.Helper()
	if _, err := w.ProcessNotification(notification.New(notification.QuestionList, notification.TopicSelected{Topic: topic})); err != nil {
		t.Fatalf("topic selected: %v", err)
	}
	req := nextRequest(t, pair)
	body, ok := req.Body.(task.QuestionsByTopic)
	if !ok || body.Topic.Slug != topic.Slug {
		t.Fatalf("expected questions request for %s, got %#v", topic.Slug, req.Body)
	}
	if _, err := w.ProcessTaskResponse(task.Reply(req, task.Questions{Topic: topic, Questions: qs}, nil)); err != nil {
		t.Fatalf("questions response: %v", err)
	}
}

func TestQuestionListDiscardsStaleTopic(t *testing.T) {
	env, pair := newEnv(t)
	w := NewQuestionList(env)
	array := model.Topic{Slug: "array", Name: "Array"}
	loadQuestions(t, w, pair, array, sampleQuestions())
	if w.Paginator().Len() != 3 {
		t.Fatalf("expected 3 questions, got %d", w.Paginator().Len())
	}
	queued := w.Notifications()
	if len(queued) != 1 || queued[0].Target != notification.Stats {
		t.Fatalf("expected stats update, got %v", queued)
	}

	_, _ = w.ProcessTaskResponse(task.Response{Body: task.Questions{
		Topic:     model.Topic{Slug: "string"},
		Questions: sampleQuestions()[:1],
	}})
	if w.Paginator().Len() != 3 {
		t.Fatalf("expected stale response to be discarded")
	}
	if len(w.Notifications()) != 0 {
		t.Fatalf("expected no stats update for a stale response")
	}
}

func TestQuestionListSameTopicDoesNotRequestAgain(t *testing.T) {
	env, pair := newEnv(t)
	w := NewQuestionList(env)
	all := model.AllTopic()
	loadQuestions(t, w, pair, all, sampleQuestions())
	if _, err := w.ProcessNotification(notification.New(notification.QuestionList, notification.TopicSelected{Topic: all})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	noRequest(t, pair)
}

func TestQuestionListSearchCapturesKeys(t *testing.T) {
	env, pair := newEnv(t)
	w := NewQuestionList(env)
	loadQuestions(t, w, pair, model.AllTopic(), sampleQuestions())
	w.Notifications()

	if w.CapturesAllKeys() {
		t.Fatalf("expected list not to capture keys before search")
	}
	n, _ := w.HandleKey(runes("/"))
	if !w.CapturesAllKeys() || n.Target != notification.HelpBar {
		t.Fatalf("expected search mode with help update, got %v", n)
	}
	for _, r := range "median" {
		w.HandleKey(runes(string(r)))
	}
	if w.Query() != "median" {
		t.Fatalf("expected query median, got %q", w.Query())
	}
	if got := w.Paginator().Len(); got != 1 {
		t.Fatalf("expected 1 match, got %d", got)
	}
	if q, _ := w.Paginator().Hovered(); q.FrontendID != 4 {
		t.Fatalf("expected question 4, got %v", q)
	}
	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if w.CapturesAllKeys() {
		t.Fatalf("expected enter to leave search mode")
	}
	if w.Paginator().Len() != 1 {
		t.Fatalf("expected filter kept after enter")
	}
	w.HandleKey(runes("/"))
	w.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if w.Query() != "" || w.Paginator().Len() != 3 {
		t.Fatalf("expected esc to clear the filter, got %q/%d", w.Query(), w.Paginator().Len())
	}
	noRequest(t, pair)
}

func TestQuestionListDetailRequestAndPopup(t *testing.T) {
	env, pair := newEnv(t)
	w := NewQuestionList(env)
	loadQuestions(t, w, pair, model.AllTopic(), sampleQuestions())
	if _, err := w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}); err != nil {
		t.Fatalf("enter: %v", err)
	}
	req := nextRequest(t, pair)
	if body, ok := req.Body.(task.QuestionDetail); !ok || body.Slug != "two-sum" {
		t.Fatalf("expected detail request for two-sum, got %#v", req.Body)
	}
	detail := model.QuestionDetail{Question: sampleQuestions()[0], Content: "Given an array.\nReturn indices."}
	n, _ := w.ProcessTaskResponse(task.Reply(req, task.Detail{Detail: detail}, nil))
	msg, ok := n.Payload.(notification.Message)
	if !ok || n.Target != notification.Popup {
		t.Fatalf("expected message popup, got %v", n)
	}
	if msg.Title != "[1] Two Sum" || msg.Lines[len(msg.Lines)-1] != "Return indices." {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestQuestionListErrorGoesToOwnQueue(t *testing.T) {
	env, _ := newEnv(t)
	w := NewQuestionList(env)
	n, err := w.ProcessTaskResponse(task.Response{Err: errors.New("boom")})
	if err != nil || !n.IsNone() {
		t.Fatalf("expected queued error, got %v/%v", n, err)
	}
	queued := w.Notifications()
	if len(queued) != 1 || queued[0].Target != notification.Popup {
		t.Fatalf("expected error popup queued, got %v", queued)
	}
}

func TestConfiguredLanguageScaffoldsDirectly(t *testing.T) {
	env, pair := newEnv(t)
	env.Config = &config.Config{Solutions: config.Solutions{Language: "golang"}}
	w := NewQuestionList(env)
	q := sampleQuestions()[0]
	n, err := w.ProcessTaskResponse(task.Response{Body: task.SnippetList{Question: q, Snippets: []model.Snippet{
		{Lang: "C++", LangSlug: "cpp"},
		{Lang: "Go", LangSlug: "golang"},
	}}})
	if err != nil || !n.IsNone() {
		t.Fatalf("expected direct scaffold, got %v/%v", n, err)
	}
	req := nextRequest(t, pair)
	if body, ok := req.Body.(task.Scaffold); !ok || body.LangSlug != "golang" || body.Slug != q.Slug {
		t.Fatalf("unexpected scaffold request %#v", req.Body)
	}

	env.Config.Solutions.Language = "cobol"
	n, _ = w.ProcessTaskResponse(task.Response{Body: task.SnippetList{Question: q, Snippets: []model.Snippet{{Lang: "Go", LangSlug: "golang"}}}})
	if n.Target != notification.Popup {
		t.Fatalf("expected missing language error popup, got %v", n)
	}
}

func TestLanguageSelectionScaffoldsChosenSnippet(t *testing.T) {
	env, pair := newEnv(t)
	bus := event.New(event.WithShutdown(func() {}))
	t.Cleanup(bus.Close)
	env.Bus = bus
	w := NewQuestionList(env)
	q := sampleQuestions()[0]
	n, err := w.ProcessTaskResponse(task.Response{Body: task.SnippetList{Question: q, Snippets: []model.Snippet{
		{Lang: "C++", LangSlug: "cpp"},
		{Lang: "Python3", LangSlug: "python3"},
	}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sel, ok := n.Payload.(notification.Selection)
	if !ok || n.Target != notification.Popup {
		t.Fatalf("expected selection popup, got %v", n)
	}
	if len(sel.Items) != 2 || sel.Items[1] != "Python3" {
		t.Fatalf("unexpected items %v", sel.Items)
	}
	sel.Reply <- 1
	close(sel.Reply)
	req := nextRequest(t, pair)
	if body, ok := req.Body.(task.Scaffold); !ok || body.LangSlug != "python3" {
		t.Fatalf("expected python3 scaffold, got %#v", req.Body)
	}
	if req.Widget != notification.QuestionList {
		t.Fatalf("expected scaffold routed to question list, got %s", req.Widget)
	}
}

func TestSolutionsAndScaffoldedMarkLocal(t *testing.T) {
	env, _ := newEnv(t)
	w := NewQuestionList(env)
	w.ProcessTaskResponse(task.Response{Body: task.Solutions{IDs: map[int]bool{2: true}}})
	if !w.HasLocalSolution(2) || w.HasLocalSolution(1) {
		t.Fatalf("unexpected local solutions")
	}
	n, _ := w.ProcessTaskResponse(task.Response{Body: task.Scaffolded{Question: sampleQuestions()[0], Path: "/tmp/1_two-sum.go", Created: true}})
	if !w.HasLocalSolution(1) {
		t.Fatalf("expected scaffolded question marked")
	}
	if msg, ok := n.Payload.(notification.Message); !ok || msg.Lines[0] != "Created /tmp/1_two-sum.go" {
		t.Fatalf("unexpected scaffold message %v", n)
	}
}

func TestStatsCounts(t *testing.T) {
	env, _ := newEnv(t)
	w := NewStats(env)
	w.ProcessNotification(notification.New(notification.Stats, notification.QuestionsUpdated{Questions: sampleQuestions()}))
	c := w.Counts()
	if c.Total != 3 || c.Easy != 1 || c.Medium != 1 || c.Hard != 1 || c.Accepted != 1 || c.Attempted != 1 {
		t.Fatalf("unexpected counts %#v", c)
	}
}

func TestHelpBarTakesEntries(t *testing.T) {
	env, _ := newEnv(t)
	tl := NewTopicList(env)
	h := NewHelpBar(env)
	h.ProcessNotification(tl.SetActive())
	if h.Owner() != notification.TopicList || len(h.Entries()) == 0 {
		t.Fatalf("expected topic list help, got %s %v", h.Owner(), h.Entries())
	}
	if h.Entries()[0].Key != "↑/k" {
		t.Fatalf("unexpected first entry %#v", h.Entries()[0])
	}
}

func TestMessagePopupLifecycle(t *testing.T) {
	env, _ := newEnv(t)
	p := NewPopup(env)
	if p.IsActive() {
		t.Fatalf("expected empty popup inactive")
	}
	n, _ := p.ProcessNotification(notification.Info("Title", "one", "two", "three"))
	if !p.IsActive() || n.Target != notification.HelpBar {
		t.Fatalf("expected active popup publishing help, got %v", n)
	}
	msg, _ := p.Message()
	p.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	p.HandleKey(runes("j"))
	p.HandleKey(runes("j"))
	if msg.Scroll() != 2 {
		t.Fatalf("expected scroll clamped at 2, got %d", msg.Scroll())
	}
	p.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if p.IsActive() {
		t.Fatalf("expected esc to close the popup")
	}
	p.SetActive()
	if p.IsActive() {
		t.Fatalf("expected closed popup to stay inactive")
	}
}

func TestMessagePopupWrapsLongLines(t *testing.T) {
	env, _ := newEnv(t)
	env.Cols = func() int { return 40 }
	p := NewPopup(env)
	p.ProcessNotification(notification.Info("Wrap", "alpha beta gamma delta epsilon zeta eta theta"))
	msg, _ := p.Message()
	if len(msg.Lines()) < 2 {
		t.Fatalf("expected wrapped lines, got %v", msg.Lines())
	}
}

func TestSelectionPopupSendsChoice(t *testing.T) {
	env, _ := newEnv(t)
	p := NewPopup(env)
	reply := make(chan int, 1)
	p.ProcessNotification(notification.New(notification.Popup, notification.Selection{Title: "Language", Items: []string{"Go", "Rust"}, Reply: reply}))
	p.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if !p.IsActive() {
		t.Fatalf("expected esc to leave a selection popup open")
	}
	p.HandleKey(tea.KeyMsg{Type: tea.KeyUp})
	n, _ := p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if !n.IsNone() {
		t.Fatalf("expected no error notification, got %v", n)
	}
	if got := <-reply; got != 1 {
		t.Fatalf("expected wrapped selection 1, got %d", got)
	}
	if p.IsActive() {
		t.Fatalf("expected popup closed after selection")
	}
}
