package e2e

import (
	"chat-relay/grpc/client"
	"chat-relay/grpc/server"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/services"
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type BaseGrpcSuite struct {
	suite.Suite
	Config Config
	stop   func()
}

// SetupSuite loads the environment configuration and starts a local relay when no address is given
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.ServerAddr == "" {
		s.Config.ServerAddr, s.stop = s.startRelay()
	}
}

func (s *BaseGrpcSuite) TearDownSuite() {
	if s.stop != nil {
		s.stop()
	}
}

func (s *BaseGrpcSuite) startRelay() (string, func()) {
	log := slog.New(slog.DiscardHandler)
	hub := runtime.NewHub(log, repositories.NewMemoryHistory(log, 100), runtime.NewRegistry(), nil, 64, 4096)
	grpcServer := server.NewGRPCServer(log, services.NewChatService(log, hub), time.Second)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	go func() { _ = grpcServer.Serve(listener) }()

	return listener.Addr().String(), func() {
		_ = hub.Close()
		grpcServer.GracefulStop()
	}
}

// ChatClient initializes a client with logging, colors and JSON debugging
func (s *BaseGrpcSuite) ChatClient(t *testing.T, name string) *client.ChatClient {
	// 1. Print a colorized header for the connection step in logs
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	// 2. Setup JSON marshaler for debugging protobuf messages
	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	// 3. Create the client with a Unary Interceptor for logging
	c, err := client.NewChatClient(s.Config.ServerAddr,
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			// Log full JSON request/response bodies if E2E_DEBUG_JSON is enabled
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+s.Config.ServerAddr)
	return c
}

// WithRelay provides a chat client within a contextual test step
func (s *BaseGrpcSuite) WithRelay(name string, fn func(ctx context.Context, c *client.ChatClient)) {
	c := s.ChatClient(s.T(), name)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fn(ctx, c)
}
