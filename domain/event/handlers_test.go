package event

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func bufferedLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestBacklogHandler_Warns_When_Queue_Almost_Full(t *testing.T) {
	req := require.New(t)
	log, buf := bufferedLogger()
	handler := NewBacklogHandler(log, 8)

	// When a subscriber only has 4 free slots left
	handler.Handle(New(SubscriberBacklogType, SubscriberBacklog{SubscriberID: "slow", Capacity: 64, Length: 60}))

	// Then a warning names it
	req.Contains(buf.String(), "level=WARN")
	req.Contains(buf.String(), "subscriber_id=slow")
}

func TestBacklogHandler_Quiet_When_Queue_Has_Room(t *testing.T) {
	req := require.New(t)
	log, buf := bufferedLogger()
	handler := NewBacklogHandler(log, 8)

	handler.Handle(New(SubscriberBacklogType, SubscriberBacklog{SubscriberID: "fast", Capacity: 64, Length: 1}))
	// Other event types are ignored
	handler.Handle(New(ProcessStatsType, ProcessStats{}))

	req.NotContains(buf.String(), "level=WARN")
}

func TestHandlers_Reject_Invalid_Payload(t *testing.T) {
	req := require.New(t)
	log, buf := bufferedLogger()
	counter := NewCounter()
	handlers := []Handler{
		NewBacklogHandler(log, 8),
		NewMessageDroppedHandler(log, counter),
		NewProcessStatsHandler(log),
		NewWorkerRestartedAfterPanicHandler(log, counter),
	}
	for _, eventType := range []Type{SubscriberBacklogType, MessageDroppedType, ProcessStatsType, RestartedAfterPanicType} {
		for _, h := range handlers {
			h.Handle(Event{Type: eventType, Payload: "garbage"})
		}
	}

	req.Contains(buf.String(), "invalid event payload")
	req.Zero(counter.Get(MessageDroppedType))
	req.Zero(counter.Get(RestartedAfterPanicType))
}

func TestCounting_Handlers(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	counter := NewCounter()
	dropped := NewMessageDroppedHandler(log, counter)
	restarted := NewWorkerRestartedAfterPanicHandler(log, counter)

	for range 3 {
		dropped.Handle(New(MessageDroppedType, MessageDropped{SubscriberID: "a", MessageID: 1}))
	}
	restarted.Handle(New(RestartedAfterPanicType, WorkerRestartedAfterPanic{WorkerName: "TelemetryWorker"}))

	req.Equal(uint64(3), counter.Get(MessageDroppedType))
	req.Equal(uint64(1), counter.Get(RestartedAfterPanicType))
}
