//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"chat-relay/contract"
	"chat-relay/domain/chat"
	"chat-relay/errors"
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

type IChatService interface {
	SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (chat.Message, error)
	StreamMessages(ctx context.Context, send func(chat.Message) error) error
	Forward(ctx context.Context, sub contract.Subscription, send func(chat.Message) error) error
	OpenStream() (contract.Subscription, error)
	CloseStream(sub contract.Subscription)
	GetMessageHistory(ctx context.Context, cmd chat.GetHistoryCommand) ([]chat.Message, error)
	DeleteMessage(ctx context.Context, cmd chat.DeleteMessageCommand) (bool, string, error)
}

// ChatService is the boundary between transports and the hub.
// Loosely typed requests are validated here and converted into commands for the hub.
type ChatService struct {
	log       *slog.Logger
	hub       contract.IHub
	validator *validator.Validate
}

func NewChatService(log *slog.Logger, hub contract.IHub) *ChatService {
	return &ChatService{log: log, hub: hub, validator: validator.New()}
}

func (s *ChatService) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (chat.Message, error) {
	if err := s.validate(ctx, cmd); err != nil {
		return chat.Message{}, err
	}
	return s.hub.Submit(ctx, cmd.Sender, cmd.Content)
}

// StreamMessages forwards every message accepted after registration to send, in order.
// It returns nil when ctx is done or the hub shuts down, and the send error otherwise.
// The subscription is always released on return.
func (s *ChatService) StreamMessages(ctx context.Context, send func(chat.Message) error) error {
	sub, err := s.OpenStream()
	if err != nil {
		return err
	}
	defer s.CloseStream(sub)
	return s.Forward(ctx, sub, send)
}

// Forward drains an already opened subscription into send. It does not release sub.
func (s *ChatService) Forward(ctx context.Context, sub contract.Subscription, send func(chat.Message) error) error {
	for {
		msg, err := sub.Next(ctx)
		switch {
		case err == nil:
		case ctx.Err() != nil:
			s.log.Debug("Stream client disconnected", "subscriber_id", sub.ID())
			return nil
		case goerrors.Is(err, errors.ErrSubscriberClosed):
			s.log.Debug("Stream closed by hub", "subscriber_id", sub.ID())
			return nil
		default:
			return err
		}
		if err := send(msg); err != nil {
			s.log.Warn("Failed to push message to stream",
				"subscriber_id", sub.ID(),
				"message_id", msg.ID.String(),
				"error", err)
			return fmt.Errorf("deliver message %s: %w", msg.ID, err)
		}
	}
}

func (s *ChatService) OpenStream() (contract.Subscription, error) {
	return s.hub.Subscribe()
}

func (s *ChatService) CloseStream(sub contract.Subscription) {
	s.hub.Unsubscribe(sub)
}

func (s *ChatService) GetMessageHistory(_ context.Context, cmd chat.GetHistoryCommand) ([]chat.Message, error) {
	return s.hub.GetHistory(cmd.Limit)
}

func (s *ChatService) DeleteMessage(ctx context.Context, cmd chat.DeleteMessageCommand) (bool, string, error) {
	if err := s.validate(ctx, cmd); err != nil {
		return false, "", err
	}
	id, err := chat.ParseMessageID(cmd.MessageID)
	if err != nil {
		return false, "", err
	}
	return s.hub.Delete(id)
}

func (s *ChatService) validate(ctx context.Context, cmd any) error {
	err := s.validator.StructCtx(ctx, cmd)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !goerrors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}
	fields := lo.Map(validationErrors, func(fe validator.FieldError, _ int) string {
		return fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag())
	})
	return fmt.Errorf("%w: %s", errors.ErrInvalidInput, strings.Join(fields, ", "))
}
