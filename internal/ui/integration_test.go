package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/leetcode-tui/internal/core"
	"github.com/atomicstack/leetcode-tui/internal/model"
	"github.com/atomicstack/leetcode-tui/internal/notification"
	"github.com/atomicstack/leetcode-tui/internal/task"
)

func TestSearchFiltersQuestionPane(t *testing.T) {
	rig := newRig(t, nil)
	rig.load(t)
	rig.harness.Key("right")
	rig.harness.Key("/")
	for _, r := range "med" {
		rig.harness.Key(string(r))
	}
	ql, _ := rig.harness.Model().questionList()
	if !ql.Searching() {
		t.Fatalf("expected search mode")
	}
	view := rig.harness.View()
	if !strings.Contains(view, "Median of Two Sorted Arrays") || strings.Contains(view, "Two Sum") {
		t.Fatalf("expected only the median question, got:\n%s", view)
	}

	rig.harness.Key("esc")
	if ql.Searching() {
		t.Fatalf("expected search mode to end")
	}
	if !strings.Contains(rig.harness.View(), "Two Sum") {
		t.Fatalf("expected full list after clearing the search")
	}
}

func TestEnterOpensQuestionDetail(t *testing.T) {
	rig := newRig(t, nil)
	rig.load(t)
	drainRequests(rig.pair)
	rig.harness.Key("right")
	rig.harness.Key("enter")

	var req task.Request
	select {
	case req = <-rig.pair.Requests():
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a detail request")
	}
	body, ok := req.Body.(task.QuestionDetail)
	if !ok || body.Slug != "two-sum" {
		t.Fatalf("expected detail request for two-sum, got %#v", req.Body)
	}

	detail := model.QuestionDetail{
		Question: model.Question{FrontendID: 1, Slug: "two-sum", Title: "Two Sum", Difficulty: model.Easy},
		Content:  "Return indices of the two numbers.",
	}
	rig.respond(t, task.Reply(req, task.Detail{Detail: detail}, nil))
	if rig.app.Focus() != core.FocusPopup {
		t.Fatalf("expected popup focus")
	}
	if !strings.Contains(rig.harness.View(), "Return indices of the two numbers.") {
		t.Fatalf("expected detail popup, got:\n%s", rig.harness.View())
	}
	if _, ok := rig.app.Widget(notification.Popup); ok {
		t.Fatalf("expected popups to stay out of the widget registry")
	}
}
