package event

import "chat-relay/domain/chat"

const (
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
	SubscriberBacklogType   Type = "SUBSCRIBER_BACKLOG"
	MessageDroppedType      Type = "MESSAGE_DROPPED"
	ProcessStatsType        Type = "PROCESS_STATS"
)

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

type SubscriberBacklog struct {
	SubscriberID string
	Seq          uint64
	Capacity     int
	Length       int
	Dropped      uint64
}

// MessageDropped is emitted when a full subscriber queue discards its oldest message.
type MessageDropped struct {
	SubscriberID string
	MessageID    chat.MessageID
}

type ProcessStats struct {
	PID         int32
	Cpu         float64
	Ram         uint64
	Goroutines  int
	Subscribers int
	Retained    int
	Accepted    uint64
	Dropped     uint64
}
