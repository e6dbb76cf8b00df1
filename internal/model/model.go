package model

import (
	"fmt"
	"strings"
)

// Difficulty mirrors the LeetCode difficulty labels.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// AllTopicSlug identifies the synthetic topic that matches every question.
const AllTopicSlug = "all"

// Topic is a LeetCode topic tag.
type Topic struct {
	Slug string
	Name string
}

// AllTopic returns the synthetic topic listing every question.
func AllTopic() Topic {
	return Topic{Slug: AllTopicSlug, Name: "All"}
}

func (t Topic) String() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Slug
}

// Status values reported for a question.
const (
	StatusAccepted  = "ac"
	StatusAttempted = "notac"
)

// Question is a single problem as listed in the question list.
type Question struct {
	FrontendID int
	Slug       string
	Title      string
	Difficulty Difficulty
	Status     string
	PaidOnly   bool
	AcRate     float64
}

func (q Question) String() string {
	return fmt.Sprintf("[%d] %s", q.FrontendID, q.Title)
}

// Solved reports whether the question has an accepted submission.
func (q Question) Solved() bool {
	return q.Status == StatusAccepted
}

// Snippet is the starter code for one language.
type Snippet struct {
	Lang     string
	LangSlug string
	Code     string
}

func (s Snippet) String() string {
	return s.Lang
}

// QuestionDetail is the full description shown in a popup.
type QuestionDetail struct {
	Question
	Content string
	Topics  []Topic
}

// TopicNames joins the topic names for display.
func (d QuestionDetail) TopicNames() string {
	names := make([]string, 0, len(d.Topics))
	for _, t := range d.Topics {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}
