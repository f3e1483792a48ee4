package repositories

import (
	"chat-relay/contract"
	"chat-relay/domain/chat"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type historyFactory func(t *testing.T, limit int) contract.IHistoryStore

func backends() map[string]historyFactory {
	return map[string]historyFactory{
		"memory": func(t *testing.T, limit int) contract.IHistoryStore {
			return NewMemoryHistory(slog.New(slog.DiscardHandler), limit)
		},
		"badger": func(t *testing.T, limit int) contract.IHistoryStore {
			h, err := OpenBadgerHistory(slog.New(slog.DiscardHandler), limit)
			require.NoError(t, err)
			t.Cleanup(func() { _ = h.Close() })
			return h
		},
	}
}

func newMessage(id int, at time.Time) chat.Message {
	return chat.Message{
		ID:        chat.MessageID(id),
		Sender:    fmt.Sprintf("sender-%d", id),
		Content:   fmt.Sprintf("content %d", id),
		CreatedAt: at.Add(time.Duration(id) * time.Millisecond),
	}
}

func TestHistory_Recent_Oldest_First(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			history := open(t, 10)
			at := time.Now().UTC()

			// Given three stored messages
			for i := 1; i <= 3; i++ {
				evicted, err := history.Append(newMessage(i, at))
				req.NoError(err)
				req.Zero(evicted)
			}

			// When fetching more than retained
			messages, err := history.Recent(50)

			// Then all are returned in acceptance order
			req.NoError(err)
			req.Equal([]chat.Message{newMessage(1, at), newMessage(2, at), newMessage(3, at)}, messages)

			// When fetching fewer, the newest ones are kept
			messages, err = history.Recent(2)
			req.NoError(err)
			req.Equal([]chat.Message{newMessage(2, at), newMessage(3, at)}, messages)
			req.Equal(3, history.Len())
		})
	}
}

func TestHistory_Recent_Non_Positive_Limit(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			history := open(t, 10)
			_, err := history.Append(newMessage(1, time.Now().UTC()))
			req.NoError(err)

			for _, limit := range []int{0, -1} {
				messages, err := history.Recent(limit)
				req.NoError(err)
				req.NotNil(messages)
				req.Empty(messages)
			}
		})
	}
}

func TestHistory_Empty(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			history := open(t, 10)

			messages, err := history.Recent(5)
			req.NoError(err)
			req.NotNil(messages)
			req.Empty(messages)
			req.Zero(history.Len())
		})
	}
}

func TestHistory_Evicts_Oldest_Beyond_Bound(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			limit := 100
			history := open(t, limit)
			at := time.Now().UTC()

			// Given 105 appended messages
			totalEvicted := 0
			for i := 1; i <= 105; i++ {
				evicted, err := history.Append(newMessage(i, at))
				req.NoError(err)
				totalEvicted += evicted
			}

			// Then only the last 100 are retained
			req.Equal(5, totalEvicted)
			req.Equal(limit, history.Len())
			messages, err := history.Recent(1000)
			req.NoError(err)
			req.Len(messages, limit)
			req.Equal(chat.MessageID(6), messages[0].ID)
			req.Equal(chat.MessageID(105), messages[limit-1].ID)

			// And an evicted id cannot be deleted anymore
			deleted, err := history.DeleteByID(3)
			req.NoError(err)
			req.False(deleted)
		})
	}
}

func TestHistory_DeleteByID(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			history := open(t, 10)
			at := time.Now().UTC()
			for i := 1; i <= 3; i++ {
				_, err := history.Append(newMessage(i, at))
				req.NoError(err)
			}

			// When deleting the middle message
			deleted, err := history.DeleteByID(2)
			req.NoError(err)
			req.True(deleted)

			// Then it no longer appears and order is preserved
			messages, err := history.Recent(10)
			req.NoError(err)
			req.Equal([]chat.Message{newMessage(1, at), newMessage(3, at)}, messages)
			req.Equal(2, history.Len())

			// And deleting it twice is reported as absent
			deleted, err = history.DeleteByID(2)
			req.NoError(err)
			req.False(deleted)
		})
	}
}

func TestHistory_Delete_Frees_Room_Before_Eviction(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			history := open(t, 2)
			at := time.Now().UTC()

			_, err := history.Append(newMessage(1, at))
			req.NoError(err)
			_, err = history.Append(newMessage(2, at))
			req.NoError(err)
			_, err = history.DeleteByID(1)
			req.NoError(err)

			// When a third message arrives the store is not over its bound
			evicted, err := history.Append(newMessage(3, at))
			req.NoError(err)
			req.Zero(evicted)

			messages, err := history.Recent(10)
			req.NoError(err)
			req.Equal([]chat.Message{newMessage(2, at), newMessage(3, at)}, messages)
		})
	}
}
