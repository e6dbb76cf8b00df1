package task

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/atomicstack/leetcode-tui/internal/apperr"
	"github.com/atomicstack/leetcode-tui/internal/notification"
)

func TestSendAndRespondRoundTrip(t *testing.T) {
	pair := NewPair(4)
	req := NewRequest(notification.TopicList, TopicTags{})
	if req.ID == "" {
		t.Fatalf("expected request id")
	}
	if err := pair.Sender().Send(req); err != nil {
		t.Fatalf("send: %v", err)
	}
	got := <-pair.Requests()
	if got.ID != req.ID || got.Widget != notification.TopicList {
		t.Fatalf("unexpected request %#v", got)
	}
	if _, ok := pair.Receiver().TryRecv(); ok {
		t.Fatalf("expected no response yet")
	}
	if err := pair.Respond(context.Background(), Reply(got, Topics{}, nil)); err != nil {
		t.Fatalf("respond: %v", err)
	}
	resp, ok := pair.Receiver().TryRecv()
	if !ok || resp.Widget != notification.TopicList {
		t.Fatalf("expected response routed to topic list, got %#v", resp)
	}
	if _, ok := pair.Receiver().TryRecv(); ok {
		t.Fatalf("expected a single response")
	}
}

func TestSendAfterCloseFails(t *testing.T) {
	pair := NewPair(1)
	pair.Close()
	err := pair.Sender().Send(NewRequest(notification.Stats, LocalSolutions{}))
	if !errors.Is(err, apperr.ErrChannelClosed) {
		t.Fatalf("expected channel closed error, got %v", err)
	}
	if err := pair.Respond(context.Background(), Response{}); !errors.Is(err, apperr.ErrChannelClosed) {
		t.Fatalf("expected channel closed error on respond, got %v", err)
	}
	var zero Sender
	if err := zero.Send(Request{}); err == nil {
		t.Fatalf("expected zero sender to fail")
	}
}

func TestReplyDropsBodyOnError(t *testing.T) {
	req := NewRequest(notification.QuestionList, Snippets{Slug: "two-sum"})
	resp := Reply(req, SnippetList{}, errors.New("boom"))
	if resp.Body != nil || resp.Kind() != "error" {
		t.Fatalf("expected error response without body, got %#v", resp)
	}
}

func TestSendDoesNotBlockPastQueueSize(t *testing.T) {
	pair := NewPair(4)
	defer pair.Close()
	sent := make([]Request, 0, 20)
	done := make(chan error, 1)
	go func() {
		for i := 0; i < 20; i++ {
			req := NewRequest(notification.QuestionList, QuestionsByTopic{})
			if err := pair.Sender().Send(req); err != nil {
				done <- err
				return
			}
			sent = append(sent, req)
		}
		done <- nil
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("send: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected Send to return with no consumer, blocked after %d requests", pair.Backlog()+4)
	}

	for i, want := range sent {
		select {
		case got := <-pair.Requests():
			if got.ID != want.ID {
				t.Fatalf("expected request %d to be %s, got %s", i, want.ID, got.ID)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("expected request %d to be delivered", i)
		}
	}
	if n := pair.Backlog(); n != 0 {
		t.Fatalf("expected empty backlog, got %d", n)
	}
}

func TestRespondQueuesWithoutPolling(t *testing.T) {
	pair := NewPair(1)
	defer pair.Close()
	for i := 0; i < 100; i++ {
		resp := Response{ID: fmt.Sprint(i), Widget: notification.QuestionList}
		if err := pair.Respond(context.Background(), resp); err != nil {
			t.Fatalf("respond %d: %v", i, err)
		}
	}
	for i := 0; i < 100; i++ {
		resp, ok := pair.Receiver().TryRecv()
		if !ok || resp.ID != fmt.Sprint(i) {
			t.Fatalf("expected response %d in order, got %#v (ok=%v)", i, resp, ok)
		}
	}
	if _, ok := pair.Receiver().TryRecv(); ok {
		t.Fatalf("expected responses to be drained")
	}
}

func TestCloseStopsOverflowFlusher(t *testing.T) {
	pair := NewPair(1)
	for i := 0; i < 5; i++ {
		if err := pair.Sender().Send(NewRequest(notification.TopicList, TopicTags{})); err != nil {
			t.Fatalf("send: %v", err)
		}
	}
	pair.Close()
	deadline := time.Now().Add(2 * time.Second)
	for pair.Backlog() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected backlog to be dropped after close, got %d", pair.Backlog())
		}
		time.Sleep(time.Millisecond)
	}
	if err := pair.Respond(context.Background(), Response{}); !errors.Is(err, apperr.ErrChannelClosed) {
		t.Fatalf("expected channel closed error, got %v", err)
	}
}
