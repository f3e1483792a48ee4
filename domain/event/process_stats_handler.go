package event

import (
	"chat-relay/errors"
	"fmt"
	"log/slog"
)

type ProcessStatsHandler struct {
	log *slog.Logger
}

func NewProcessStatsHandler(log *slog.Logger) *ProcessStatsHandler {
	return &ProcessStatsHandler{log: log}
}

func (h ProcessStatsHandler) Handle(event Event) {
	switch event.Type {
	case ProcessStatsType:
		payload, ok := event.Payload.(ProcessStats)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.log.Info(fmt.Sprintf("[RELAY] PID %d | CPU %.2f%% | RAM %d bytes | GOROUTINES %d",
			payload.PID, payload.Cpu, payload.Ram, payload.Goroutines),
			"subscribers", payload.Subscribers,
			"retained", payload.Retained,
			"accepted", payload.Accepted,
			"dropped", payload.Dropped)
	}
}
