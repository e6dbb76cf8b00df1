// Package notification defines the addressed messages widgets exchange through
// the orchestrator's pending queue.
package notification

import (
	"fmt"

	"github.com/atomicstack/leetcode-tui/internal/model"
)

// WidgetName tags a widget instance. It is the routing key for notifications
// and task responses.
type WidgetName string

const (
	TopicList    WidgetName = "topic_list"
	QuestionList WidgetName = "question_list"
	Stats        WidgetName = "stats"
	HelpBar      WidgetName = "help_bar"
	// Popup is reserved for the overlay stack. Notifications addressed to it
	// create a new popup instead of reaching a registered widget.
	Popup WidgetName = "popup"
)

// Payload is implemented by every notification body.
type Payload interface {
	payload()
}

// Notification is a message for a named widget. The zero value is the none
// entry and is skipped by the dispatcher.
type Notification struct {
	Target  WidgetName
	Payload Payload
}

// None returns the empty notification.
func None() Notification {
	return Notification{}
}

// New addresses payload to target.
func New(target WidgetName, payload Payload) Notification {
	return Notification{Target: target, Payload: payload}
}

// IsNone reports whether the entry carries nothing to deliver.
func (n Notification) IsNone() bool {
	return n.Target == "" || n.Payload == nil
}

func (n Notification) String() string {
	if n.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%s<-%T", n.Target, n.Payload)
}

// MessageKind distinguishes informational popups from error popups.
type MessageKind int

const (
	Notice MessageKind = iota
	Failure
)

// Message asks for a scrollable text popup.
type Message struct {
	Kind  MessageKind
	Title string
	Lines []string
}

// Selection asks for a selection popup. Reply receives the chosen index once;
// it is closed without a value when nothing was selected.
type Selection struct {
	Title string
	Items []string
	Reply chan<- int
}

// TopicSelected tells the question list which topic to show, or tells the
// topic list which topic to hover.
type TopicSelected struct {
	Topic model.Topic
}

// QuestionsUpdated carries the question list currently on screen.
type QuestionsUpdated struct {
	Questions []model.Question
}

// HelpEntry is one key hint.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpEntries replaces the hints shown by the help bar.
type HelpEntries struct {
	Owner   WidgetName
	Entries []HelpEntry
}

func (Message) payload()          {}
func (Selection) payload()        {}
func (TopicSelected) payload()    {}
func (QuestionsUpdated) payload() {}
func (HelpEntries) payload()      {}

// Error builds an error popup notification.
func Error(text string) Notification {
	return New(Popup, Message{Kind: Failure, Title: "Error", Lines: []string{text}})
}

// Info builds an informational popup notification.
func Info(title string, lines ...string) Notification {
	return New(Popup, Message{Kind: Notice, Title: title, Lines: lines})
}
