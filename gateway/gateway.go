// Package gateway exposes the chat service to browsers over plain HTTP and server-sent events.
package gateway

import (
	"chat-relay/services"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	defaultSender       = "Anonymous"
	defaultHistoryLimit = 50
)

type Gateway struct {
	echo        *echo.Echo
	log         *slog.Logger
	chatService services.IChatService
	heartbeat   time.Duration
}

func New(log *slog.Logger, chatService services.IChatService, heartbeat time.Duration) *Gateway {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Recover())

	g := &Gateway{echo: e, log: log, chatService: chatService, heartbeat: heartbeat}
	e.Use(g.requestLogger)
	e.POST("/send_message", g.SendMessage)
	e.GET("/stream", g.Stream)
	e.GET("/history", g.History)
	e.DELETE("/messages/:id", g.DeleteMessage)
	e.GET("/health", g.Health)
	return g
}

func (g *Gateway) Handler() http.Handler {
	return g.echo
}

// Start blocks until the server stops. http.ErrServerClosed is returned after Shutdown.
func (g *Gateway) Start(address string) error {
	return g.echo.Start(address)
}

func (g *Gateway) Shutdown(ctx context.Context) error {
	return g.echo.Shutdown(ctx)
}

func (g *Gateway) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		g.log.Debug("HTTP request",
			"method", c.Request().Method,
			"path", c.Path(),
			"status", c.Response().Status,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"duration", time.Since(start))
		return err
	}
}
