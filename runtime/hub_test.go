package runtime

import (
	"chat-relay/domain/chat"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/repositories"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHub(historyLimit, bufferSize int, telemetryChan chan event.Event) *Hub {
	log := slog.New(slog.DiscardHandler)
	return NewHub(log, repositories.NewMemoryHistory(log, historyLimit), NewRegistry(), telemetryChan, bufferSize, 100)
}

func next(t *testing.T, sub interface {
	Next(ctx context.Context) (chat.Message, error)
}) chat.Message {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	msg, err := sub.Next(ctx)
	require.NoError(t, err)
	return msg
}

func assertNothingPending(t *testing.T, sub interface {
	Next(ctx context.Context) (chat.Message, error)
}) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := sub.Next(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHub_Concrete_Scenario(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	hub := newTestHub(100, 16, nil)

	// Given two messages submitted before anyone listens
	hi, err := hub.Submit(ctx, "alice", "hi")
	req.NoError(err)
	_, err = hub.Submit(ctx, "bob", "yo")
	req.NoError(err)

	// When a subscriber registers and a third message arrives
	s1, err := hub.Subscribe()
	req.NoError(err)
	_, err = hub.Submit(ctx, "alice", "again")
	req.NoError(err)

	// Then it receives exactly the third message
	msg := next(t, s1)
	req.Equal("alice", msg.Sender)
	req.Equal("again", msg.Content)
	assertNothingPending(t, s1)

	// And history holds the two most recent, oldest first
	history, err := hub.GetHistory(2)
	req.NoError(err)
	req.Len(history, 2)
	req.Equal("yo", history[0].Content)
	req.Equal("again", history[1].Content)

	// When the first message is deleted
	deleted, detail, err := hub.Delete(hi.ID)
	req.NoError(err)
	req.True(deleted)
	req.Equal(fmt.Sprintf("message %s deleted", hi.ID), detail)

	// Then it disappears from history
	history, err = hub.GetHistory(10)
	req.NoError(err)
	req.Len(history, 2)
	req.Equal([]string{"yo", "again"}, []string{history[0].Content, history[1].Content})
}

func TestHub_Submit_Assigns_Increasing_IDs_And_Timestamps(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(2, 4, nil)
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	hub.now = func() time.Time { return at }

	var ids []chat.MessageID
	for i := range 5 {
		msg, err := hub.Submit(context.Background(), "alice", fmt.Sprintf("m%d", i))
		req.NoError(err)
		req.Equal(at, msg.CreatedAt)
		ids = append(ids, msg.ID)
	}

	// Ids keep increasing even though the oldest were evicted
	req.Equal([]chat.MessageID{1, 2, 3, 4, 5}, ids)
	deleted, _, err := hub.Delete(5)
	req.NoError(err)
	req.True(deleted)

	msg, err := hub.Submit(context.Background(), "alice", "after delete")
	req.NoError(err)
	req.Equal(chat.MessageID(6), msg.ID)
}

func TestHub_Submit_Rejects_Invalid_Input_Before_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := slog.New(slog.DiscardHandler)

	// Given a history store that must never be written
	history := mocks.NewMockIHistoryStore(ctrl)
	history.EXPECT().Append(gomock.Any()).Times(0)
	hub := NewHub(log, history, NewRegistry(), nil, 4, 10)
	sub, err := hub.Subscribe()
	require.NoError(t, err)

	tests := []struct {
		name    string
		sender  string
		content string
	}{
		{"empty sender", "", "hello"},
		{"blank sender", "   ", "hello"},
		{"empty content", "alice", ""},
		{"blank content", "alice", " \n\t"},
		{"content too long", "alice", strings.Repeat("é", 11)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			_, err := hub.Submit(context.Background(), tt.sender, tt.content)
			req.ErrorIs(err, errors.ErrInvalidInput)
		})
	}

	// Then no subscriber received anything
	assertNothingPending(t, sub)
	require.Zero(t, hub.accepted.Load())
}

func TestHub_Submit_Accepts_Content_At_Max_Length(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(10, 4, nil)

	_, err := hub.Submit(context.Background(), "alice", strings.Repeat("é", 100))
	req.NoError(err)
}

func TestHub_Submit_Surfaces_History_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := slog.New(slog.DiscardHandler)

	history := mocks.NewMockIHistoryStore(ctrl)
	history.EXPECT().Append(gomock.Any()).Return(0, fmt.Errorf("disk on fire"))
	hub := NewHub(log, history, NewRegistry(), nil, 4, 0)
	sub, err := hub.Subscribe()
	req.NoError(err)

	_, err = hub.Submit(context.Background(), "alice", "hello")

	// Then the failure is reported and nothing is fanned out
	req.ErrorContains(err, "disk on fire")
	assertNothingPending(t, sub)
}

func TestHub_GetHistory_Limits(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(100, 4, nil)
	for i := range 3 {
		_, err := hub.Submit(context.Background(), "alice", fmt.Sprintf("m%d", i))
		req.NoError(err)
	}

	for _, limit := range []int{0, -3} {
		history, err := hub.GetHistory(limit)
		req.NoError(err)
		req.NotNil(history)
		req.Empty(history)
	}

	history, err := hub.GetHistory(50)
	req.NoError(err)
	req.Len(history, 3)
}

func TestHub_Delete_Unknown_ID(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(100, 4, nil)
	_, err := hub.Submit(context.Background(), "alice", "hello")
	req.NoError(err)

	deleted, detail, err := hub.Delete(42)

	req.NoError(err)
	req.False(deleted)
	req.Equal("message 42 not found", detail)
	history, err := hub.GetHistory(10)
	req.NoError(err)
	req.Len(history, 1)
}

func TestHub_Order_Preserved_Per_Subscriber(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(1000, 1000, nil)
	subs := make([]interface {
		Next(ctx context.Context) (chat.Message, error)
	}, 3)
	for i := range subs {
		sub, err := hub.Subscribe()
		req.NoError(err)
		subs[i] = sub
	}

	// Given concurrent producers
	var wg sync.WaitGroup
	for p := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				if _, err := hub.Submit(context.Background(), fmt.Sprintf("producer-%d", p), fmt.Sprintf("m%d", i)); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()

	// Then every subscriber sees the same strictly increasing sequence
	for _, sub := range subs {
		var last chat.MessageID
		for range 200 {
			msg := next(t, sub)
			req.Greater(msg.ID, last)
			last = msg.ID
		}
	}
}

func TestHub_Slow_Subscriber_Does_Not_Block(t *testing.T) {
	req := require.New(t)
	telemetryChan := make(chan event.Event, 10)
	hub := newTestHub(100, 2, telemetryChan)

	slow, err := hub.Subscribe()
	req.NoError(err)

	// When five messages are submitted and nobody reads
	for i := range 5 {
		_, err := hub.Submit(context.Background(), "alice", fmt.Sprintf("m%d", i))
		req.NoError(err)
	}

	// Then the slow subscriber keeps the last two and reports the drops
	req.Equal(uint64(3), slow.Dropped())
	req.Equal("m3", next(t, slow).Content)
	req.Equal("m4", next(t, slow).Content)
	req.Equal(uint64(3), hub.Stats().Dropped)

	// And one telemetry event was emitted per dropped message
	req.Len(telemetryChan, 3)
	evt := <-telemetryChan
	req.Equal(event.MessageDroppedType, evt.Type)
	req.Equal(event.MessageDropped{SubscriberID: slow.ID(), MessageID: 1}, evt.Payload)
}

func TestHub_Unsubscribe_Releases_Subscriber(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(100, 4, nil)
	sub, err := hub.Subscribe()
	req.NoError(err)
	other, err := hub.Subscribe()
	req.NoError(err)

	// When a subscriber leaves, twice
	hub.Unsubscribe(sub)
	hub.Unsubscribe(sub)
	hub.Unsubscribe(nil)

	// Then producers are unaffected and only the other subscriber receives
	_, err = hub.Submit(context.Background(), "alice", "hello")
	req.NoError(err)
	req.Equal("hello", next(t, other).Content)
	_, err = sub.Next(context.Background())
	req.ErrorIs(err, errors.ErrSubscriberClosed)
	req.Equal(1, hub.Stats().Subscribers)
}

func TestHub_Close(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(100, 4, nil)
	sub, err := hub.Subscribe()
	req.NoError(err)

	errChan := make(chan error, 1)
	go func() {
		_, err := sub.Next(context.Background())
		errChan <- err
	}()
	time.Sleep(20 * time.Millisecond)

	// When the hub is torn down
	req.NoError(hub.Close())
	req.NoError(hub.Close())

	// Then pending readers are released
	select {
	case err := <-errChan:
		req.ErrorIs(err, errors.ErrSubscriberClosed)
	case <-time.After(time.Second):
		req.Fail("subscriber should be released on close")
	}

	// And every operation reports the closed hub
	_, err = hub.Submit(context.Background(), "alice", "hello")
	req.ErrorIs(err, errors.ErrHubClosed)
	_, err = hub.Subscribe()
	req.ErrorIs(err, errors.ErrHubClosed)
	_, err = hub.GetHistory(10)
	req.ErrorIs(err, errors.ErrHubClosed)
	_, _, err = hub.Delete(1)
	req.ErrorIs(err, errors.ErrHubClosed)
	req.Zero(hub.Stats().Subscribers)
}

func TestHub_Subscribers_Snapshot(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(100, 3, nil)
	first, err := hub.Subscribe()
	req.NoError(err)
	_, err = hub.Submit(context.Background(), "alice", "hello")
	req.NoError(err)
	second, err := hub.Subscribe()
	req.NoError(err)

	stats := hub.Subscribers()

	req.Equal([]chat.SubscriberStats{
		{ID: first.ID(), Seq: 1, Length: 1, Capacity: 3},
		{ID: second.ID(), Seq: 2, Length: 0, Capacity: 3},
	}, stats)
	req.Equal(chat.HubStats{Subscribers: 2, Retained: 1, Accepted: 1}, hub.Stats())
}

func TestHub_Submit_Timestamps_Never_Go_Backwards(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(10, 4, nil)
	later := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	earlier := later.Add(-time.Hour)

	// Given a first message stamped by a clock that is then set back
	hub.now = func() time.Time { return later }
	first, err := hub.Submit(context.Background(), "alice", "first")
	req.NoError(err)
	hub.now = func() time.Time { return earlier }

	// When another message is accepted
	second, err := hub.Submit(context.Background(), "alice", "second")
	req.NoError(err)

	// Then it keeps the previous timestamp instead of going back in time
	req.Equal(later, first.CreatedAt)
	req.Equal(later, second.CreatedAt)

	// And a clock moving forward again is used as is
	hub.now = func() time.Time { return later.Add(time.Minute) }
	third, err := hub.Submit(context.Background(), "alice", "third")
	req.NoError(err)
	req.Equal(later.Add(time.Minute), third.CreatedAt)
}

func TestHub_Subscribe_Racing_Close(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(10, 4, nil)

	// Given many subscribers registering while the hub is closing
	start := make(chan struct{})
	subs := make(chan *Subscriber, 64)
	refused := make(chan error, 64)
	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			sub, err := hub.Subscribe()
			if err != nil {
				refused <- err
				return
			}
			subs <- sub.(*Subscriber)
		}()
	}
	close(start)
	req.NoError(hub.Close())
	wg.Wait()
	close(subs)
	close(refused)

	// Then nobody is left registered and every accepted subscriber was released
	req.Zero(hub.Stats().Subscribers)
	for sub := range subs {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		_, err := sub.Next(ctx)
		cancel()
		req.ErrorIs(err, errors.ErrSubscriberClosed)
	}
	for err := range refused {
		req.ErrorIs(err, errors.ErrHubClosed)
	}
}
