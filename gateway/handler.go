package gateway

import (
	"chat-relay/domain/chat"
	"chat-relay/errors"
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

type sendMessageRequest struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type messageResponse struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

func toMessageResponse(m chat.Message) messageResponse {
	return messageResponse{
		ID:        m.ID.String(),
		Sender:    m.Sender,
		Content:   m.Content,
		Timestamp: m.Timestamp(),
	}
}

func (g *Gateway) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "error", Message: "Invalid request"})
	}
	if req.Content == "" {
		return c.JSON(http.StatusBadRequest, statusResponse{Status: "error", Message: "Message content cannot be empty"})
	}
	if req.Sender == "" {
		req.Sender = defaultSender
	}
	msg, err := g.chatService.SendMessage(c.Request().Context(), chat.SendMessageCommand{
		Sender:  req.Sender,
		Content: req.Content,
	})
	if err != nil {
		return c.JSON(httpStatus(err), statusResponse{Status: "error", Message: err.Error()})
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "success", Message: "Message sent!", ID: msg.ID.String()})
}

// Stream relays live messages as server-sent events.
// A comment line is written whenever no message arrived within the heartbeat interval.
func (g *Gateway) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	sub, err := g.chatService.OpenStream()
	if err != nil {
		return c.JSON(httpStatus(err), statusResponse{Status: "error", Message: err.Error()})
	}
	defer g.chatService.CloseStream(sub)

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	for {
		waitCtx, cancel := context.WithTimeout(ctx, g.heartbeat)
		msg, err := sub.Next(waitCtx)
		cancel()
		switch {
		case err == nil:
			payload, err := json.Marshal(toMessageResponse(msg))
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return nil
			}
		case ctx.Err() != nil:
			g.log.Debug("SSE client disconnected", "subscriber_id", sub.ID())
			return nil
		case goerrors.Is(err, context.DeadlineExceeded):
			if _, err := fmt.Fprint(w, ":heartbeat\n\n"); err != nil {
				return nil
			}
		case goerrors.Is(err, errors.ErrSubscriberClosed):
			return nil
		default:
			return err
		}
		w.Flush()
	}
}

func (g *Gateway) History(c echo.Context) error {
	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, statusResponse{Status: "error", Message: fmt.Sprintf("invalid limit %q", raw)})
		}
		limit = parsed
	}
	messages, err := g.chatService.GetMessageHistory(c.Request().Context(), chat.GetHistoryCommand{Limit: limit})
	if err != nil {
		return c.JSON(httpStatus(err), statusResponse{Status: "error", Message: err.Error()})
	}
	return c.JSON(http.StatusOK, lo.Map(messages, func(m chat.Message, _ int) messageResponse {
		return toMessageResponse(m)
	}))
}

func (g *Gateway) DeleteMessage(c echo.Context) error {
	deleted, detail, err := g.chatService.DeleteMessage(c.Request().Context(), chat.DeleteMessageCommand{MessageID: c.Param("id")})
	if err != nil {
		return c.JSON(httpStatus(err), deleteResponse{Success: false, Message: err.Error()})
	}
	return c.JSON(http.StatusOK, deleteResponse{Success: deleted, Message: detail})
}

func (g *Gateway) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func httpStatus(err error) int {
	switch {
	case goerrors.Is(err, errors.ErrInvalidInput):
		return http.StatusBadRequest
	case goerrors.Is(err, errors.ErrNotFound):
		return http.StatusNotFound
	case goerrors.Is(err, errors.ErrResourceExhausted):
		return http.StatusTooManyRequests
	case goerrors.Is(err, errors.ErrHubClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
