package server

import (
	"chat-relay/domain/chat"
	"chat-relay/errors"
	"chat-relay/grpc/client"
	"chat-relay/mocks"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/services"
	"context"
	"log/slog"
	"math"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startServer(t *testing.T, chatService services.IChatService) *client.ChatClient {
	t.Helper()
	listener := bufconn.Listen(1024 * 1024)
	server := NewGRPCServer(slog.New(slog.DiscardHandler), chatService, time.Second)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	chatClient, err := client.NewChatClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = chatClient.Close() })
	return chatClient
}

func newHub(t *testing.T) *runtime.Hub {
	log := slog.New(slog.DiscardHandler)
	hub := runtime.NewHub(log, repositories.NewMemoryHistory(log, 100), runtime.NewRegistry(), nil, 16, 4096)
	t.Cleanup(func() { _ = hub.Close() })
	return hub
}

func TestChatServer_Scenario(t *testing.T) {
	req := require.New(t)
	hub := newHub(t)
	chatClient := startServer(t, services.NewChatService(slog.New(slog.DiscardHandler), hub))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Given two messages sent before anyone listens
	hi, err := chatClient.Send(ctx, "alice", "hi")
	req.NoError(err)
	req.Equal(chat.MessageID(1), hi.ID)
	_, err = chatClient.Send(ctx, "bob", "yo")
	req.NoError(err)

	// When a stream is opened
	received := make(chan chat.Message, 10)
	streamCtx, stopStream := context.WithCancel(ctx)
	streamDone := make(chan error, 1)
	go func() {
		streamDone <- chatClient.Stream(streamCtx, func(m chat.Message) error {
			received <- m
			return nil
		})
	}()
	req.Eventually(func() bool { return hub.Stats().Subscribers == 1 }, time.Second, 5*time.Millisecond)

	_, err = chatClient.Send(ctx, "alice", "again")
	req.NoError(err)

	// Then it only receives the new message
	select {
	case msg := <-received:
		req.Equal("alice", msg.Sender)
		req.Equal("again", msg.Content)
		req.Equal(chat.MessageID(3), msg.ID)
	case <-time.After(2 * time.Second):
		req.Fail("stream did not deliver the message")
	}
	req.Empty(received)

	// And history returns the two most recent
	history, err := chatClient.History(ctx, 2)
	req.NoError(err)
	req.Len(history, 2)
	req.Equal("yo", history[0].Content)
	req.Equal("again", history[1].Content)

	// When deleting the first message
	deleted, detail, err := chatClient.Delete(ctx, hi.ID.String())
	req.NoError(err)
	req.True(deleted)
	req.Equal("message 1 deleted", detail)

	history, err = chatClient.History(ctx, 10)
	req.NoError(err)
	req.Len(history, 2)

	// And deleting it again reports it as missing
	deleted, detail, err = chatClient.Delete(ctx, hi.ID.String())
	req.NoError(err)
	req.False(deleted)
	req.Equal("message 1 not found", detail)

	// When the client disconnects, the subscriber is released
	stopStream()
	req.NoError(<-streamDone)
	req.Eventually(func() bool { return hub.Stats().Subscribers == 0 }, time.Second, 5*time.Millisecond)
}

func TestChatServer_Rejects_Invalid_Input(t *testing.T) {
	req := require.New(t)
	hub := newHub(t)
	chatClient := startServer(t, services.NewChatService(slog.New(slog.DiscardHandler), hub))
	ctx := context.Background()

	_, err := chatClient.Send(ctx, "", "hello")
	req.Equal(codes.InvalidArgument, status.Code(err))

	_, err = chatClient.Send(ctx, "alice", "")
	req.Equal(codes.InvalidArgument, status.Code(err))

	_, _, err = chatClient.Delete(ctx, "not-a-number")
	req.Equal(codes.InvalidArgument, status.Code(err))

	history, err := chatClient.History(ctx, 0)
	req.NoError(err)
	req.Empty(history)
}

func TestChatServer_Stream_Ends_On_Shutdown(t *testing.T) {
	req := require.New(t)
	hub := newHub(t)
	chatClient := startServer(t, services.NewChatService(slog.New(slog.DiscardHandler), hub))

	streamDone := make(chan error, 1)
	go func() {
		streamDone <- chatClient.Stream(context.Background(), func(chat.Message) error { return nil })
	}()
	req.Eventually(func() bool { return hub.Stats().Subscribers == 1 }, time.Second, 5*time.Millisecond)

	// When the hub is torn down
	req.NoError(hub.Close())

	// Then the stream finishes cleanly
	select {
	case err := <-streamDone:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		req.Fail("stream should end when the hub closes")
	}
}

func TestChatServer_Maps_Service_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	chatService := mocks.NewMockIChatService(ctrl)
	chatClient := startServer(t, chatService)
	ctx := context.Background()

	t.Run("closed hub is unavailable", func(t *testing.T) {
		req := require.New(t)
		chatService.EXPECT().SendMessage(gomock.Any(), chat.SendMessageCommand{Sender: "a", Content: "b"}).
			Return(chat.Message{}, errors.ErrHubClosed)

		_, err := chatClient.Send(ctx, "a", "b")

		req.Equal(codes.Unavailable, status.Code(err))
	})

	t.Run("deadline is propagated", func(t *testing.T) {
		req := require.New(t)
		chatService.EXPECT().GetMessageHistory(gomock.Any(), chat.GetHistoryCommand{Limit: 5}).
			Return(nil, context.DeadlineExceeded)

		_, err := chatClient.History(ctx, 5)

		req.Equal(codes.DeadlineExceeded, status.Code(err))
	})

	t.Run("out of range limits are clamped to int32", func(t *testing.T) {
		req := require.New(t)
		chatService.EXPECT().GetMessageHistory(gomock.Any(), chat.GetHistoryCommand{Limit: math.MinInt32}).
			Return([]chat.Message{}, nil)
		chatService.EXPECT().GetMessageHistory(gomock.Any(), chat.GetHistoryCommand{Limit: math.MaxInt32}).
			Return([]chat.Message{}, nil)

		low, err := chatClient.History(ctx, -3_000_000_000)
		req.NoError(err)
		high, err := chatClient.History(ctx, 3_000_000_000)
		req.NoError(err)

		req.Empty(low)
		req.Empty(high)
	})

	t.Run("panics are recovered", func(t *testing.T) {
		req := require.New(t)
		chatService.EXPECT().DeleteMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, chat.DeleteMessageCommand) (bool, string, error) {
				panic("boom")
			})

		_, _, err := chatClient.Delete(ctx, "1")

		req.Equal(codes.Internal, status.Code(err))
	})
}

func TestChatServer_Subscribe_Is_Registered_On_Return(t *testing.T) {
	req := require.New(t)
	hub := newHub(t)
	chatClient := startServer(t, services.NewChatService(slog.New(slog.DiscardHandler), hub))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// When Subscribe returns
	stream, err := chatClient.Subscribe(ctx)
	req.NoError(err)

	// Then the hub already counts the subscriber, no polling needed
	req.Equal(1, hub.Stats().Subscribers)

	_, err = chatClient.Send(ctx, "alice", "first")
	req.NoError(err)
	msg, err := stream.Recv()
	req.NoError(err)
	req.Equal("first", msg.Content)
}

func TestChatServer_Subscribe_On_Closed_Hub(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chatService := mocks.NewMockIChatService(ctrl)
	chatClient := startServer(t, chatService)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	chatService.EXPECT().OpenStream().Return(nil, errors.ErrHubClosed)

	// The refusal surfaces either on Subscribe or on the first Recv
	stream, err := chatClient.Subscribe(ctx)
	if err == nil {
		_, err = stream.Recv()
	}
	req.Equal(codes.Unavailable, status.Code(err))
}
