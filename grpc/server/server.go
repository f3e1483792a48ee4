package server

import (
	pb "chat-relay/grpc/chatpb"
	"chat-relay/services"
	"log/slog"
	"time"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

// NewGRPCServer wires the chat service with logging and recovery interceptors.
// Keepalive pings double as a heartbeat on long lived streams.
func NewGRPCServer(log *slog.Logger, chatService services.IChatService, heartbeat time.Duration) *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(log),
			RecoveryUnaryInterceptor(log),
		),
		grpc.ChainStreamInterceptor(StreamInterceptor(log)),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    max(heartbeat, 10*time.Second),
			Timeout: 20 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             5 * time.Second,
			PermitWithoutStream: true,
		}),
	)
	pb.RegisterChatServiceServer(server, NewChatServer(log, chatService))
	return server
}
