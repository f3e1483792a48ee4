package repositories

import (
	"chat-relay/domain/chat"
	"container/list"
	"log/slog"
	"sync"
)

// MemoryHistory keeps the most recent messages in a bounded in-memory list.
// Append and DeleteByID are O(1); Recent walks the newest k entries.
type MemoryHistory struct {
	log   *slog.Logger
	mu    sync.RWMutex
	limit int
	order *list.List
	index map[chat.MessageID]*list.Element
}

func NewMemoryHistory(log *slog.Logger, limit int) *MemoryHistory {
	return &MemoryHistory{
		log:   log,
		limit: limit,
		order: list.New(),
		index: make(map[chat.MessageID]*list.Element),
	}
}

func (h *MemoryHistory) Append(message chat.Message) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.index[message.ID] = h.order.PushBack(message)
	evicted := 0
	for h.order.Len() > h.limit {
		oldest := h.order.Front()
		h.order.Remove(oldest)
		delete(h.index, oldest.Value.(chat.Message).ID)
		evicted++
	}
	if evicted > 0 {
		h.log.Debug("History bound reached", "evicted", evicted, "limit", h.limit)
	}
	return evicted, nil
}

func (h *MemoryHistory) DeleteByID(id chat.MessageID) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	elem, ok := h.index[id]
	if !ok {
		return false, nil
	}
	h.order.Remove(elem)
	delete(h.index, id)
	return true, nil
}

func (h *MemoryHistory) Recent(limit int) ([]chat.Message, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := min(limit, h.order.Len())
	if n <= 0 {
		return []chat.Message{}, nil
	}
	messages := make([]chat.Message, n)
	elem := h.order.Back()
	for i := n - 1; i >= 0; i-- {
		messages[i] = elem.Value.(chat.Message)
		elem = elem.Prev()
	}
	return messages, nil
}

func (h *MemoryHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.order.Len()
}

func (h *MemoryHistory) Close() error {
	return nil
}
