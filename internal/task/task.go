// Package task is the asynchronous boundary between UI state and background
// workers. Requests are tagged with the requesting widget; responses carry the
// same name back and are routed on it alone.
package task

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/atomicstack/leetcode-tui/internal/model"
	"github.com/atomicstack/leetcode-tui/internal/notification"
)

// Body is implemented by every request body.
type Body interface {
	body()
}

// Request is an opaque unit of work for the worker. ID is only used for
// tracing; it plays no part in routing the response.
type Request struct {
	ID     string
	Widget notification.WidgetName
	Body   Body
}

// NewRequest stamps a request with a fresh id.
func NewRequest(widget notification.WidgetName, body Body) Request {
	return Request{ID: uuid.NewString(), Widget: widget, Body: body}
}

// Kind names the body type for logs.
func (r Request) Kind() string {
	return kindOf(r.Body)
}

type (
	// TopicTags lists every topic.
	TopicTags struct{}
	// QuestionsByTopic lists the questions of a topic; the "all" topic lists everything.
	QuestionsByTopic struct{ Topic model.Topic }
	// QuestionDetail loads the description of a question.
	QuestionDetail struct{ Slug string }
	// Snippets lists the starter code languages of a question.
	Snippets struct{ Slug string }
	// Scaffold writes a solution file for a question in a language.
	Scaffold struct {
		Slug     string
		LangSlug string
	}
	// LocalSolutions scans the solutions directory.
	LocalSolutions struct{}
)

func (TopicTags) body()        {}
func (QuestionsByTopic) body() {}
func (QuestionDetail) body()   {}
func (Snippets) body()         {}
func (Scaffold) body()         {}
func (LocalSolutions) body()   {}

// Response is the worker's answer. Exactly one of Body and Err is set.
type Response struct {
	ID     string
	Widget notification.WidgetName
	Body   any
	Err    error
}

// Kind names the body type for logs.
func (r Response) Kind() string {
	if r.Err != nil {
		return "error"
	}
	return kindOf(r.Body)
}

// Response bodies.
type (
	Topics    struct{ Topics []model.Topic }
	Questions struct {
		Topic     model.Topic
		Questions []model.Question
	}
	Detail      struct{ Detail model.QuestionDetail }
	SnippetList struct {
		Question model.Question
		Snippets []model.Snippet
	}
	Scaffolded struct {
		Question model.Question
		Path     string
		Created  bool
	}
	Solutions struct{ IDs map[int]bool }
)

// Reply builds the response to req.
func Reply(req Request, body any, err error) Response {
	if err != nil {
		body = nil
	}
	return Response{ID: req.ID, Widget: req.Widget, Body: body, Err: err}
}

func kindOf(v any) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprintf("%T", v)
}
