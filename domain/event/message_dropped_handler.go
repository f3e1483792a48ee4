package event

import (
	"chat-relay/errors"
	"log/slog"
)

// MessageDroppedHandler counts messages discarded by full subscriber queues.
type MessageDroppedHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewMessageDroppedHandler(log *slog.Logger, counter *Counter) *MessageDroppedHandler {
	return &MessageDroppedHandler{log: log, counter: counter}
}

func (h *MessageDroppedHandler) Handle(event Event) {
	switch event.Type {
	case MessageDroppedType:
		payload, ok := event.Payload.(MessageDropped)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.counter.Increment(MessageDroppedType)
		h.log.Debug("Message dropped for slow subscriber",
			"subscriber_id", payload.SubscriberID,
			"message_id", payload.MessageID.String(),
			"total", h.counter.Get(MessageDroppedType))
	}
}
