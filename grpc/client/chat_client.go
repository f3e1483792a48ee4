package client

import (
	"chat-relay/domain/chat"
	pb "chat-relay/grpc/chatpb"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type ChatClient struct {
	conn   *grpc.ClientConn
	client pb.ChatServiceClient
}

// NewChatClient dials address over plaintext. Extra options are appended.
func NewChatClient(address string, opts ...grpc.DialOption) (*ChatClient, error) {
	options := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)
	conn, err := grpc.NewClient(address, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", address, err)
	}
	return &ChatClient{conn: conn, client: pb.NewChatServiceClient(conn)}, nil
}

func (c *ChatClient) Send(ctx context.Context, sender, content string) (chat.Message, error) {
	response, err := c.client.SendMessage(ctx, &pb.SendMessageRequest{
		Message: &pb.ChatMessage{Sender: sender, Content: content},
	})
	if err != nil {
		return chat.Message{}, err
	}
	return fromChatMessage(response.GetMessage()), nil
}

// MessageStream is a live subscription on the relay.
type MessageStream struct {
	stream grpc.ServerStreamingClient[pb.ChatMessage]
}

// Subscribe returns once the relay has registered the subscription.
// Every message accepted after that point is delivered by Recv.
func (c *ChatClient) Subscribe(ctx context.Context) (*MessageStream, error) {
	stream, err := c.client.StreamMessages(ctx, &pb.StreamMessagesRequest{})
	if err != nil {
		return nil, err
	}
	if _, err := stream.Header(); err != nil {
		return nil, err
	}
	return &MessageStream{stream: stream}, nil
}

// Recv returns io.EOF once the relay ends the stream.
func (s *MessageStream) Recv() (chat.Message, error) {
	msg, err := s.stream.Recv()
	if err != nil {
		return chat.Message{}, err
	}
	return fromChatMessage(msg), nil
}

// Stream calls fn for every message pushed by the server until ctx is done,
// the server ends the stream or fn fails.
func (c *ChatClient) Stream(ctx context.Context, fn func(chat.Message) error) error {
	stream, err := c.Subscribe(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	for {
		msg, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled || ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := fn(msg); err != nil {
			return err
		}
	}
}

func (c *ChatClient) History(ctx context.Context, limit int) ([]chat.Message, error) {
	response, err := c.client.GetMessageHistory(ctx, &pb.GetMessageHistoryRequest{Limit: int32(max(min(limit, math.MaxInt32), math.MinInt32))})
	if err != nil {
		return nil, err
	}
	return lo.Map(response.GetMessages(), func(m *pb.ChatMessage, _ int) chat.Message {
		return fromChatMessage(m)
	}), nil
}

func (c *ChatClient) Delete(ctx context.Context, messageID string) (bool, string, error) {
	response, err := c.client.DeleteMessage(ctx, &pb.DeleteMessageRequest{MessageId: messageID})
	if err != nil {
		return false, "", err
	}
	return response.GetSuccess(), response.GetMessage(), nil
}

func (c *ChatClient) Close() error {
	return c.conn.Close()
}

// fromChatMessage keeps a zero id when the server sent none.
func fromChatMessage(m *pb.ChatMessage) chat.Message {
	id, _ := chat.ParseMessageID(m.GetId())
	return chat.Message{
		ID:        id,
		Sender:    m.GetSender(),
		Content:   m.GetContent(),
		CreatedAt: time.Unix(m.GetTimestamp(), 0).UTC(),
	}
}
