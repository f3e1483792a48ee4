package event

import (
	"chat-relay/errors"
	"fmt"
	"log/slog"
)

// BacklogHandler handles events reporting the queue usage of a subscriber.
// A subscriber close to its capacity is about to lose its oldest messages.
type BacklogHandler struct {
	log                  *slog.Logger
	lowCapacityThreshold int
}

func NewBacklogHandler(log *slog.Logger, lowCapacityThreshold int) *BacklogHandler {
	return &BacklogHandler{log: log, lowCapacityThreshold: lowCapacityThreshold}
}

func (h BacklogHandler) Handle(event Event) {
	switch event.Type {
	case SubscriberBacklogType:
		payload, ok := event.Payload.(SubscriberBacklog)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.log.Debug(fmt.Sprintf("Subscriber %s usage: %d / %d", payload.SubscriberID, payload.Length, payload.Capacity))
		if payload.Capacity <= 0 {
			return
		}
		capacityLeft := payload.Capacity - payload.Length
		if capacityLeft <= h.lowCapacityThreshold {
			h.log.Warn("Subscriber queue almost full",
				"subscriber_id", payload.SubscriberID,
				"seq", payload.Seq,
				"capacity_left", capacityLeft,
				"dropped", payload.Dropped)
		}
	}
}
