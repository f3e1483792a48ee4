//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain/chat"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IHistoryStore retains the most recent accepted messages in acceptance order.
type IHistoryStore interface {
	// Append stores the message and returns how many of the oldest entries were evicted.
	Append(message chat.Message) (int, error)
	DeleteByID(id chat.MessageID) (bool, error)
	// Recent returns up to limit of the newest messages, oldest first.
	Recent(limit int) ([]chat.Message, error)
	Len() int
	Close() error
}

// Subscription is the receiving end of a live stream registered on the hub.
type Subscription interface {
	ID() string
	Next(ctx context.Context) (chat.Message, error)
	Len() int
	Cap() int
	Dropped() uint64
}

type IHub interface {
	Submit(ctx context.Context, sender, content string) (chat.Message, error)
	Subscribe() (Subscription, error)
	Unsubscribe(sub Subscription)
	GetHistory(limit int) ([]chat.Message, error)
	Delete(id chat.MessageID) (bool, string, error)
}

// IStatsProvider exposes diagnostics sampled by the monitoring workers.
type IStatsProvider interface {
	Stats() chat.HubStats
	Subscribers() []chat.SubscriberStats
}
