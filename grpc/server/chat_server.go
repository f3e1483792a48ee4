package server

import (
	"chat-relay/domain/chat"
	"chat-relay/errors"
	pb "chat-relay/grpc/chatpb"
	"chat-relay/services"
	"context"
	"log/slog"

	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// SubscriberIDHeader carries the id of the subscription backing a stream.
const SubscriberIDHeader = "x-subscriber-id"

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	chatService services.IChatService
	log         *slog.Logger
}

func NewChatServer(log *slog.Logger, chatService services.IChatService) *ChatServer {
	return &ChatServer{chatService: chatService, log: log}
}

// SendMessage accepts a message and returns it as stamped by the hub,
// which lets the caller learn the id needed to delete it later.
func (s *ChatServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	command := chat.SendMessageCommand{
		Sender:  req.GetMessage().GetSender(),
		Content: req.GetMessage().GetContent(),
	}
	msg, err := s.chatService.SendMessage(ctx, command)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SendMessageResponse{Message: toChatMessage(msg)}, nil
}

// StreamMessages blocks until the client disconnects, the server shuts down
// or the stream can no longer be written.
// Headers are flushed once the subscription is registered, so a client waiting
// on them knows every later message will reach it.
func (s *ChatServer) StreamMessages(_ *pb.StreamMessagesRequest, stream grpc.ServerStreamingServer[pb.ChatMessage]) error {
	sub, err := s.chatService.OpenStream()
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	defer s.chatService.CloseStream(sub)

	if err := stream.SendHeader(metadata.Pairs(SubscriberIDHeader, sub.ID())); err != nil {
		return err
	}
	err = s.chatService.Forward(stream.Context(), sub, func(msg chat.Message) error {
		return stream.Send(toChatMessage(msg))
	})
	return errors.MapToGRPCError(err)
}

func (s *ChatServer) GetMessageHistory(ctx context.Context, req *pb.GetMessageHistoryRequest) (*pb.GetMessageHistoryResponse, error) {
	messages, err := s.chatService.GetMessageHistory(ctx, chat.GetHistoryCommand{Limit: int(req.GetLimit())})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GetMessageHistoryResponse{
		Messages: lo.Map(messages, func(m chat.Message, _ int) *pb.ChatMessage {
			return toChatMessage(m)
		}),
	}, nil
}

func (s *ChatServer) DeleteMessage(ctx context.Context, req *pb.DeleteMessageRequest) (*pb.DeleteMessageResponse, error) {
	deleted, detail, err := s.chatService.DeleteMessage(ctx, chat.DeleteMessageCommand{MessageID: req.GetMessageId()})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.DeleteMessageResponse{Success: deleted, Message: detail}, nil
}

func toChatMessage(m chat.Message) *pb.ChatMessage {
	return &pb.ChatMessage{
		Sender:    m.Sender,
		Content:   m.Content,
		Timestamp: m.Timestamp(),
		Id:        m.ID.String(),
	}
}
