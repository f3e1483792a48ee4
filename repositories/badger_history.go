package repositories

import (
	"chat-relay/domain/chat"
	"chat-relay/grpc/chatpb"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
)

const messagePrefix = "msg:"

// BadgerHistory keeps the retained messages in an in-memory badger instance.
// Keys are formatted as "msg:{id padded to 20 digits}" so that lexicographic
// order matches acceptance order.
type BadgerHistory struct {
	db    *badger.DB
	log   *slog.Logger
	limit int
	// mu keeps count consistent with the keys present in db
	mu    sync.Mutex
	count int
}

// OpenBadgerHistory starts a badger instance without any on-disk state.
func OpenBadgerHistory(log *slog.Logger, limit int) (*BadgerHistory, error) {
	options := badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("badger opening failed: %w", err)
	}
	return NewBadgerHistory(db, log, limit), nil
}

func NewBadgerHistory(db *badger.DB, log *slog.Logger, limit int) *BadgerHistory {
	return &BadgerHistory{db: db, log: log, limit: limit}
}

func messageKey(id chat.MessageID) []byte {
	return []byte(fmt.Sprintf("%s%020d", messagePrefix, uint64(id)))
}

func (h *BadgerHistory) Append(message chat.Message) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	value, err := proto.Marshal(fromMessage(message))
	if err != nil {
		return 0, fmt.Errorf("encode message %s: %w", message.ID, err)
	}
	evicted := 0
	err = h.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(messageKey(message.ID), value); err != nil {
			return err
		}
		excess := h.count + 1 - h.limit
		if excess <= 0 {
			return nil
		}
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(messagePrefix)
		var oldest [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix) && len(oldest) < excess; it.Next() {
			oldest = append(oldest, it.Item().KeyCopy(nil))
		}
		for _, key := range oldest {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		evicted = len(oldest)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("store message %s: %w", message.ID, err)
	}
	h.count += 1 - evicted
	if evicted > 0 {
		h.log.Debug("History bound reached", "evicted", evicted, "limit", h.limit)
	}
	return evicted, nil
}

func (h *BadgerHistory) DeleteByID(id chat.MessageID) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	found := true
	err := h.db.Update(func(txn *badger.Txn) error {
		key := messageKey(id)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				found = false
				return nil
			}
			return err
		}
		return txn.Delete(key)
	})
	if err != nil {
		return false, fmt.Errorf("delete message %s: %w", id, err)
	}
	if found {
		h.count--
	}
	return found, nil
}

// Recent scans backwards from the newest key and returns the result oldest first.
func (h *BadgerHistory) Recent(limit int) ([]chat.Message, error) {
	if limit <= 0 {
		return []chat.Message{}, nil
	}
	var messages []chat.Message
	err := h.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(messagePrefix)
		// Highest possible key, the iterator then walks back to older messages
		seekKey := append([]byte(messagePrefix), []byte("99999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix) && len(messages) < limit; it.Next() {
			err := it.Item().Value(func(value []byte) error {
				stored := &chatpb.StoredMessage{}
				if err := proto.Unmarshal(value, stored); err != nil {
					return err
				}
				messages = append(messages, toMessage(stored))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read recent messages: %w", err)
	}
	if messages == nil {
		return []chat.Message{}, nil
	}
	return lo.Reverse(messages), nil
}

func (h *BadgerHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

func (h *BadgerHistory) Close() error {
	return h.db.Close()
}

func fromMessage(message chat.Message) *chatpb.StoredMessage {
	return &chatpb.StoredMessage{
		Id:        uint64(message.ID),
		Sender:    message.Sender,
		Content:   message.Content,
		CreatedAt: message.CreatedAt.UnixNano(),
	}
}

func toMessage(stored *chatpb.StoredMessage) chat.Message {
	return chat.Message{
		ID:        chat.MessageID(stored.GetId()),
		Sender:    stored.GetSender(),
		Content:   stored.GetContent(),
		CreatedAt: time.Unix(0, stored.GetCreatedAt()).UTC(),
	}
}
