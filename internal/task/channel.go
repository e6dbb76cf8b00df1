package task

import (
	"context"
	"sync"

	"github.com/atomicstack/leetcode-tui/internal/apperr"
	"github.com/atomicstack/leetcode-tui/internal/logging/events"
)

// DefaultQueueSize is the request buffer used when a Pair is built with
// size <= 0.
const DefaultQueueSize = 64

// Pair owns both directions of the task boundary. Neither direction blocks
// its producer: requests beyond the channel buffer wait in an overflow queue
// that a flusher goroutine feeds to the worker in order, and responses queue
// until the UI polls them.
type Pair struct {
	requests chan Request

	mu        sync.Mutex
	overflow  []Request
	flushing  bool
	responses []Response

	closed    chan struct{}
	closeOnce sync.Once
}

// NewPair builds a channel pair whose request channel buffers size entries.
func NewPair(size int) *Pair {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Pair{
		requests: make(chan Request, size),
		closed:   make(chan struct{}),
	}
}

// Sender is the UI end used to submit requests.
func (p *Pair) Sender() Sender {
	return Sender{pair: p}
}

// Receiver is the UI end used to poll responses.
func (p *Pair) Receiver() Receiver {
	return Receiver{pair: p}
}

// Requests is the worker end of the request direction.
func (p *Pair) Requests() <-chan Request {
	return p.requests
}

// Done is closed once the pair is closed.
func (p *Pair) Done() <-chan struct{} {
	return p.closed
}

// Respond queues a response for the UI. It never waits for the UI to poll;
// it fails once ctx has ended or the pair is closed.
func (p *Pair) Respond(ctx context.Context, resp Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.isClosed() {
		return apperr.New(apperr.KindChannelClosed, "response channel")
	}
	p.responses = append(p.responses, resp)
	events.Task.Response(resp.ID, string(resp.Widget), resp.Kind())
	return nil
}

// Close shuts both directions. Sends after Close fail and queued entries are
// dropped.
func (p *Pair) Close() {
	p.closeOnce.Do(func() {
		close(p.closed)
		p.mu.Lock()
		p.responses = nil
		p.mu.Unlock()
	})
}

func (p *Pair) isClosed() bool {
	select {
	case <-p.closed:
		return true
	default:
		return false
	}
}

// send hands req to the request channel when nothing is waiting ahead of it,
// and otherwise appends it to the overflow queue. Callers hold p.mu.
func (p *Pair) send(req Request) {
	if len(p.overflow) == 0 {
		select {
		case p.requests <- req:
			return
		default:
		}
	}
	p.overflow = append(p.overflow, req)
	if !p.flushing {
		p.flushing = true
		go p.flush()
	}
}

// flush moves overflowed requests into the request channel in order and exits
// once the overflow queue is empty.
func (p *Pair) flush() {
	for {
		p.mu.Lock()
		if len(p.overflow) == 0 {
			p.flushing = false
			p.mu.Unlock()
			return
		}
		next := p.overflow[0]
		p.mu.Unlock()

		select {
		case p.requests <- next:
		case <-p.closed:
			p.mu.Lock()
			p.overflow = nil
			p.flushing = false
			p.mu.Unlock()
			return
		}

		p.mu.Lock()
		p.overflow[0] = Request{}
		p.overflow = p.overflow[1:]
		p.mu.Unlock()
	}
}

// Backlog is the number of requests waiting in the overflow queue.
func (p *Pair) Backlog() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.overflow)
}

// Sender submits requests. The zero value rejects every request.
type Sender struct {
	pair *Pair
}

// Send queues req for the worker without blocking.
func (s Sender) Send(req Request) error {
	if s.pair == nil {
		return apperr.New(apperr.KindChannelClosed, "request channel not connected")
	}
	s.pair.mu.Lock()
	defer s.pair.mu.Unlock()
	if s.pair.isClosed() {
		return apperr.New(apperr.KindChannelClosed, "request channel")
	}
	s.pair.send(req)
	events.Task.Request(req.ID, string(req.Widget), req.Kind())
	return nil
}

// Receiver polls responses without blocking.
type Receiver struct {
	pair *Pair
}

// TryRecv returns the oldest pending response, if any.
func (r Receiver) TryRecv() (Response, bool) {
	if r.pair == nil {
		return Response{}, false
	}
	r.pair.mu.Lock()
	defer r.pair.mu.Unlock()
	if len(r.pair.responses) == 0 {
		return Response{}, false
	}
	resp := r.pair.responses[0]
	r.pair.responses[0] = Response{}
	r.pair.responses = r.pair.responses[1:]
	return resp, true
}
