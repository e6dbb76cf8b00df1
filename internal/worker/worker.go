// Package worker executes task requests off the UI goroutine: store reads,
// solution scaffolding and solution directory scans.
package worker

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/atomicstack/leetcode-tui/internal/apperr"
	"github.com/atomicstack/leetcode-tui/internal/logging/events"
	"github.com/atomicstack/leetcode-tui/internal/model"
	"github.com/atomicstack/leetcode-tui/internal/notification"
	"github.com/atomicstack/leetcode-tui/internal/solution"
	"github.com/atomicstack/leetcode-tui/internal/task"
)

// Source is the question database.
type Source interface {
	Topics(ctx context.Context) ([]model.Topic, error)
	Questions(ctx context.Context, topic model.Topic) ([]model.Question, error)
	Detail(ctx context.Context, slug string) (model.QuestionDetail, error)
	Snippets(ctx context.Context, slug string) (model.Question, []model.Snippet, error)
}

// Options tunes the pool.
type Options struct {
	Concurrency int
	// PollInterval is how often the solutions directory is rescanned for
	// files created outside the app. Zero disables the poller.
	PollInterval time.Duration
}

// Worker serves requests from a task pair with a fixed number of goroutines.
type Worker struct {
	pair      *task.Pair
	source    Source
	solutions solution.Writer
	scans     *throttle

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	known map[int]bool
}

// New starts the pool.
func New(pair *task.Pair, source Source, solutions solution.Writer, opts Options) *Worker {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Worker{
		pair:      pair,
		source:    source,
		solutions: solutions,
		scans:     newThrottle(100 * time.Millisecond),
		ctx:       ctx,
		cancel:    cancel,
	}
	events.Worker.Start(opts.Concurrency)
	for i := 0; i < opts.Concurrency; i++ {
		w.wg.Add(1)
		go w.serve()
	}
	if opts.PollInterval > 0 {
		w.wg.Add(1)
		go w.pollSolutions(opts.PollInterval)
	}
	return w
}

// Stop cancels the pool. In-flight requests finish their current step; use
// Wait when a clean drain is required.
func (w *Worker) Stop() {
	w.cancel()
}

// Wait blocks until every goroutine has exited.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) serve() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.pair.Done():
			return
		case req := <-w.pair.Requests():
			resp := w.Handle(w.ctx, req)
			events.Worker.Error(req.ID, req.Kind(), resp.Err)
			if err := w.pair.Respond(w.ctx, resp); err != nil {
				return
			}
		}
	}
}

// Handle executes one request.
func (w *Worker) Handle(ctx context.Context, req task.Request) task.Response {
	body, err := w.handle(ctx, req.Body)
	return task.Reply(req, body, err)
}

func (w *Worker) handle(ctx context.Context, body task.Body) (any, error) {
	switch b := body.(type) {
	case task.TopicTags:
		topics, err := w.source.Topics(ctx)
		if err != nil {
			return nil, err
		}
		return task.Topics{Topics: topics}, nil
	case task.QuestionsByTopic:
		questions, err := w.source.Questions(ctx, b.Topic)
		if err != nil {
			return nil, err
		}
		return task.Questions{Topic: b.Topic, Questions: questions}, nil
	case task.QuestionDetail:
		detail, err := w.source.Detail(ctx, b.Slug)
		if err != nil {
			return nil, err
		}
		return task.Detail{Detail: detail}, nil
	case task.Snippets:
		q, snippets, err := w.source.Snippets(ctx, b.Slug)
		if err != nil {
			return nil, err
		}
		return task.SnippetList{Question: q, Snippets: snippets}, nil
	case task.Scaffold:
		return w.scaffold(ctx, b)
	case task.LocalSolutions:
		ids, err := w.scan()
		if err != nil {
			return nil, err
		}
		return task.Solutions{IDs: ids}, nil
	}
	return nil, fmt.Errorf("unsupported request %T", body)
}

func (w *Worker) scaffold(ctx context.Context, b task.Scaffold) (any, error) {
	q, snippets, err := w.source.Snippets(ctx, b.Slug)
	if err != nil {
		return nil, err
	}
	for _, s := range snippets {
		if s.LangSlug != b.LangSlug {
			continue
		}
		path, created, err := w.solutions.Write(q, s)
		if err != nil {
			return nil, err
		}
		w.mu.Lock()
		if w.known != nil {
			w.known[q.FrontendID] = true
		}
		w.mu.Unlock()
		return task.Scaffolded{Question: q, Path: path, Created: created}, nil
	}
	return nil, apperr.New(apperr.KindLanguageMissing, fmt.Sprintf("%s for %s", b.LangSlug, b.Slug))
}

func (w *Worker) scan() (map[int]bool, error) {
	if !w.scans.wait(w.ctx.Done()) {
		return nil, w.ctx.Err()
	}
	return w.solutions.Scan()
}

// pollSolutions pushes an unsolicited Solutions response to the question list
// whenever the set of solution files changes.
func (w *Worker) pollSolutions(interval time.Duration) {
	defer w.wg.Done()

	emit := func() bool {
		ids, err := w.scan()
		if err != nil {
			events.Worker.Error("", "poll", err)
			return w.ctx.Err() == nil
		}
		w.mu.Lock()
		changed := w.known == nil || !maps.Equal(w.known, ids)
		if changed {
			w.known = maps.Clone(ids)
		}
		w.mu.Unlock()
		if !changed {
			return true
		}
		req := task.NewRequest(notification.QuestionList, task.LocalSolutions{})
		return w.pair.Respond(w.ctx, task.Reply(req, task.Solutions{IDs: ids}, nil)) == nil
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
