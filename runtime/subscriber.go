package runtime

import (
	"chat-relay/domain/chat"
	"chat-relay/errors"
	"context"
	"sync"

	"github.com/google/uuid"
)

// Subscriber is the receiving end of one live stream.
// Its queue is bounded: when full, the oldest undelivered message is discarded
// so that publishing never waits on a slow reader.
type Subscriber struct {
	id       string
	seq      uint64
	capacity int

	mu      sync.Mutex
	queue   []chat.Message // ring buffer
	head    int
	size    int
	dropped uint64
	closed  bool

	notify chan struct{}
	done   chan struct{}
}

func NewSubscriber(seq uint64, capacity int) *Subscriber {
	capacity = max(capacity, 1)
	return &Subscriber{
		id:       uuid.NewString(),
		seq:      seq,
		capacity: capacity,
		queue:    make([]chat.Message, capacity),
		notify:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

func (s *Subscriber) ID() string {
	return s.id
}

// Seq is the registration order, used for diagnostics only.
func (s *Subscriber) Seq() uint64 {
	return s.seq
}

// enqueue never blocks. It returns the message that had to be discarded, if any.
func (s *Subscriber) enqueue(msg chat.Message) (chat.Message, bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return chat.Message{}, false
	}
	var (
		discarded chat.Message
		dropped   bool
	)
	if s.size == len(s.queue) {
		discarded, dropped = s.queue[s.head], true
		s.queue[s.head] = chat.Message{}
		s.head = (s.head + 1) % len(s.queue)
		s.size--
		s.dropped++
	}
	s.queue[(s.head+s.size)%len(s.queue)] = msg
	s.size++
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
	return discarded, dropped
}

// Next blocks until a message is available, ctx is done or the subscriber is closed.
func (s *Subscriber) Next(ctx context.Context) (chat.Message, error) {
	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return chat.Message{}, errors.ErrSubscriberClosed
		}
		if s.size > 0 {
			msg := s.queue[s.head]
			s.queue[s.head] = chat.Message{}
			s.head = (s.head + 1) % len(s.queue)
			s.size--
			s.mu.Unlock()
			return msg, nil
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return chat.Message{}, ctx.Err()
		case <-s.done:
		case <-s.notify:
		}
	}
}

func (s *Subscriber) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

func (s *Subscriber) Cap() int {
	return s.capacity
}

func (s *Subscriber) Dropped() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

func (s *Subscriber) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Subscriber) stats() chat.SubscriberStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return chat.SubscriberStats{
		ID:       s.id,
		Seq:      s.seq,
		Length:   s.size,
		Capacity: s.capacity,
		Dropped:  s.dropped,
	}
}

// close releases the queued messages and wakes any pending Next. Safe to call twice.
func (s *Subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.queue = s.queue[:0:0]
	s.head, s.size = 0, 0
	close(s.done)
}
