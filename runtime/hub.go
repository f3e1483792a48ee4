package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain/chat"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Hub accepts messages, retains them in a bounded history and fans them out
// to every registered subscriber.
//
// Submit is serialized by publishMu: id assignment, history append and fan-out
// happen as one step, so every subscriber observes messages in acceptance order.
// History reads and deletes go through the store's own lock and never wait on publishers.
type Hub struct {
	log              *slog.Logger
	history          contract.IHistoryStore
	registry         *Registry
	telemetryChan    chan event.Event
	bufferSize       int
	maxContentLength int
	now              func() time.Time

	publishMu     sync.Mutex
	lastID        uint64
	lastCreatedAt time.Time

	accepted atomic.Uint64
	dropped  atomic.Uint64
	closed   atomic.Bool
}

// NewHub builds a hub owning history. telemetryChan may be nil.
// A maxContentLength of zero disables the content length check.
func NewHub(log *slog.Logger,
	history contract.IHistoryStore,
	registry *Registry,
	telemetryChan chan event.Event,
	bufferSize, maxContentLength int) *Hub {
	return &Hub{
		log:              log,
		history:          history,
		registry:         registry,
		telemetryChan:    telemetryChan,
		bufferSize:       bufferSize,
		maxContentLength: maxContentLength,
		now:              time.Now,
	}
}

func (h *Hub) Submit(ctx context.Context, sender, content string) (chat.Message, error) {
	if h.closed.Load() {
		return chat.Message{}, errors.ErrHubClosed
	}
	if err := h.validate(sender, content); err != nil {
		return chat.Message{}, err
	}

	h.publishMu.Lock()
	defer h.publishMu.Unlock()

	if h.closed.Load() {
		return chat.Message{}, errors.ErrHubClosed
	}
	// Timestamps never go backwards even if the wall clock does
	createdAt := h.now().UTC()
	if createdAt.Before(h.lastCreatedAt) {
		createdAt = h.lastCreatedAt
	}
	h.lastID++
	msg := chat.Message{
		ID:        chat.MessageID(h.lastID),
		Sender:    sender,
		Content:   content,
		CreatedAt: createdAt,
	}
	if _, err := h.history.Append(msg); err != nil {
		return chat.Message{}, fmt.Errorf("append message %s: %w", msg.ID, err)
	}
	h.lastCreatedAt = createdAt
	h.accepted.Add(1)
	h.registry.ForEach(func(sub *Subscriber) {
		discarded, dropped := sub.enqueue(msg)
		if !dropped {
			return
		}
		h.dropped.Add(1)
		h.emit(event.New(event.MessageDroppedType, event.MessageDropped{
			SubscriberID: sub.ID(),
			MessageID:    discarded.ID,
		}))
	})
	h.log.DebugContext(ctx, "Message accepted", "message_id", msg.ID.String(), "sender", sender)
	return msg, nil
}

func (h *Hub) validate(sender, content string) error {
	if strings.TrimSpace(sender) == "" {
		return fmt.Errorf("%w: sender must not be empty", errors.ErrInvalidInput)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content must not be empty", errors.ErrInvalidInput)
	}
	if h.maxContentLength > 0 && utf8.RuneCountInString(content) > h.maxContentLength {
		return fmt.Errorf("%w: content exceeds %d characters", errors.ErrInvalidInput, h.maxContentLength)
	}
	return nil
}

// Subscribe registers a new live stream. Messages accepted before this call are not replayed.
func (h *Hub) Subscribe() (contract.Subscription, error) {
	if h.closed.Load() {
		return nil, errors.ErrHubClosed
	}
	sub, ok := h.registry.Subscribe(h.bufferSize)
	if !ok {
		return nil, errors.ErrHubClosed
	}
	h.log.Debug("Subscriber registered", "subscriber_id", sub.ID(), "seq", sub.Seq())
	return sub, nil
}

// Unsubscribe is idempotent. Handles unknown to this hub are ignored.
func (h *Hub) Unsubscribe(sub contract.Subscription) {
	if sub == nil {
		return
	}
	removed := h.registry.Unsubscribe(sub.ID())
	if removed == nil {
		return
	}
	removed.close()
	h.log.Debug("Subscriber unregistered", "subscriber_id", removed.ID(), "dropped", removed.Dropped())
}

func (h *Hub) GetHistory(limit int) ([]chat.Message, error) {
	if h.closed.Load() {
		return nil, errors.ErrHubClosed
	}
	if limit <= 0 {
		return []chat.Message{}, nil
	}
	return h.history.Recent(limit)
}

// Delete removes a retained message. Copies already delivered to subscribers are not retracted.
func (h *Hub) Delete(id chat.MessageID) (bool, string, error) {
	if h.closed.Load() {
		return false, "", errors.ErrHubClosed
	}
	deleted, err := h.history.DeleteByID(id)
	if err != nil {
		return false, "", err
	}
	if !deleted {
		return false, fmt.Sprintf("message %s not found", id), nil
	}
	h.log.Debug("Message deleted", "message_id", id.String())
	return true, fmt.Sprintf("message %s deleted", id), nil
}

func (h *Hub) Stats() chat.HubStats {
	return chat.HubStats{
		Subscribers: h.registry.Len(),
		Retained:    h.history.Len(),
		Accepted:    h.accepted.Load(),
		Dropped:     h.dropped.Load(),
	}
}

func (h *Hub) Subscribers() []chat.SubscriberStats {
	return lo.Map(h.registry.Snapshot(), func(sub *Subscriber, _ int) chat.SubscriberStats {
		return sub.stats()
	})
}

// Close unregisters and closes every subscriber, then releases the history store.
// Pending Next calls return ErrSubscriberClosed. Calling Close twice is a no-op.
func (h *Hub) Close() error {
	if h.closed.Swap(true) {
		return nil
	}
	// wait for an in-flight Submit to finish its fan-out
	h.publishMu.Lock()
	defer h.publishMu.Unlock()

	subs := h.registry.Drain()
	for _, sub := range subs {
		sub.close()
	}
	h.log.Info("Hub closed", "subscribers", len(subs), "accepted", h.accepted.Load())
	return h.history.Close()
}

func (h *Hub) emit(evt event.Event) {
	if h.telemetryChan == nil {
		return
	}
	select {
	case h.telemetryChan <- evt:
	default:
		h.log.Debug("Telemetry event lost", "type", evt.Type)
	}
}
