package main

import (
	"chat-relay/contract"
	"chat-relay/domain/event"
	"chat-relay/gateway"
	"chat-relay/grpc/server"
	"chat-relay/internal"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Relay terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle and centralizes error reporting,
// so that deferred cleanups always execute before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx := context.Background()

	// 2. History store
	history, err := openHistory(ctx, config, logger)
	if err != nil {
		return exitRuntime, err
	}

	// 3. Hub & supervision
	telemetryChan := make(chan event.Event, config.TelemetryBufferSize)
	registry := runtime.NewRegistry()
	hub := runtime.NewHub(logger, history, registry, telemetryChan,
		config.SubscriberBufferSize, config.MaxContentLength)
	defer func() {
		// Idempotent, already called on the graceful path
		_ = hub.Close()
	}()

	counter := event.NewCounter()
	handlers := []event.Handler{
		event.NewBacklogHandler(logger, config.LowCapacityThreshold),
		event.NewMessageDroppedHandler(logger, counter),
		event.NewProcessStatsHandler(logger),
		event.NewWorkerRestartedAfterPanicHandler(logger, counter),
	}
	sup := workers.NewSupervisor(logger, telemetryChan, config.RestartInterval)
	sup.Add(
		workers.NewTelemetryWorker(logger, telemetryChan, handlers),
		workers.NewBacklogMonitorWorker(logger, hub, telemetryChan, config.MetricInterval),
		workers.NewProcessStatsWorker(logger, hub, telemetryChan, config.MetricInterval),
	)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	supervisorDone := make(chan struct{})
	go func() {
		defer close(supervisorDone)
		logger.Info("Starting supervisor...")
		sup.Run(ctx)
	}()

	// Error (gRPC & HTTP)
	errChan := make(chan error, 2)

	// 5. gRPC Server Setup
	chatService := services.NewChatService(logger, hub)
	grpcAddress := config.GrpcAddress()
	listener, err := net.Listen("tcp", grpcAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", grpcAddress, err)
	}
	s := server.NewGRPCServer(logger, chatService, config.HeartbeatInterval)
	go func() {
		logger.Info("Starting gRPC server", "address", grpcAddress, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 6. HTTP gateway
	g := gateway.New(logger, chatService, config.HeartbeatInterval)
	go func() {
		logger.Info("Starting HTTP gateway", "address", config.HttpAddress())
		if err := g.Start(config.HttpAddress()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP gateway error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		sup.Stop()
		s.Stop()
		return exitRuntime, err
	}

	// 8. Graceful Shutdown
	// Closing the hub first ends every live stream, otherwise GracefulStop would wait on them.
	logger.Info("Shutting down gracefully...")
	if err := hub.Close(); err != nil {
		logger.Warn("History store closed with error", "error", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := g.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP gateway shutdown incomplete", "error", err)
	}
	stopGRPC(shutdownCtx, s)
	sup.Stop()
	<-supervisorDone
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

// openHistory picks the configured backend.
// With the badger backend and DEBUG logs, the content is browsable through the debug inspector.
func openHistory(ctx context.Context, config internal.Config, logger *slog.Logger) (contract.IHistoryStore, error) {
	if config.HistoryBackend != internal.BackendBadger {
		logger.Info("Using in-memory history", "limit", config.HistoryLimit)
		return repositories.NewMemoryHistory(logger, config.HistoryLimit), nil
	}

	history, err := repositories.OpenBadgerHistory(logger, config.HistoryLimit)
	if err != nil {
		return nil, err
	}
	logger.Info("Using badger history", "limit", config.HistoryLimit)
	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(history.DB(), config.DebugPort, endpoint, repositories.InspectMapper)
	}
	return history, nil
}

// stopGRPC falls back to a hard stop when in-flight calls outlive the shutdown timeout.
func stopGRPC(ctx context.Context, s *grpc.Server) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.Stop()
	}
}
